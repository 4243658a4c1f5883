package archive

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedFormat is returned when a format selector does not name
// one of the supported archive formats.
var ErrUnsupportedFormat = errors.New("unsupported archive format")

// Format identifies the archive container and compression filter.
type Format uint8

const (
	FormatTarGz Format = iota
	FormatTarBz2
	FormatTarXz
	FormatTarZstd
	FormatZip
)

// FormatNames lists the accepted format selectors in declaration order.
var FormatNames = []string{"tar-gz", "tar-bz2", "tar-xz", "tar-zstd", "zip"}

// ParseFormat maps a selector string to a Format. Selectors are
// case-insensitive; the dotted spellings ("tar.gz") are accepted as
// aliases of the dashed ones.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "tar-gz", "tar.gz", "tgz":
		return FormatTarGz, nil
	case "tar-bz2", "tar.bz2", "tbz2":
		return FormatTarBz2, nil
	case "tar-xz", "tar.xz", "txz":
		return FormatTarXz, nil
	case "tar-zstd", "tar.zst", "tar-zst", "tzst":
		return FormatTarZstd, nil
	case "zip":
		return FormatZip, nil
	default:
		return 0, fmt.Errorf("%w: %q (expected one of %s)",
			ErrUnsupportedFormat, s, strings.Join(FormatNames, ", "))
	}
}

// String returns the canonical selector for the format.
func (f Format) String() string {
	if int(f) < len(FormatNames) {
		return FormatNames[f]
	}
	return "unknown"
}

// Ext returns the conventional file extension for archives in this
// format, including the leading dot.
func (f Format) Ext() string {
	switch f {
	case FormatTarGz:
		return ".tar.gz"
	case FormatTarBz2:
		return ".tar.bz2"
	case FormatTarXz:
		return ".tar.xz"
	case FormatTarZstd:
		return ".tar.zst"
	case FormatZip:
		return ".zip"
	default:
		return ""
	}
}
