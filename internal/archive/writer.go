// Package archive implements the format-specific writers behind the
// press pipeline: a tar container with a pluggable compressor stack
// (gzip, bzip2, xz, zstd) and a zip container. Each writer consumes a
// stream of entries and streams file contents into the output without
// buffering whole files in memory.
package archive

import (
	"errors"
	"fmt"
	"io"
)

// ErrSymlinkUnsupported is returned by writers for container formats
// that cannot represent symbolic links. Callers are expected to skip
// the entry and record a warning.
var ErrSymlinkUnsupported = errors.New("format cannot represent symbolic links")

// DefaultLevel selects each codec's library-default compression level.
const DefaultLevel = 0

// Writer appends entries to an archive and finalizes it on Close.
//
// WriteEntry streams the entry's content from r into the archive. For
// directory and symlink entries r is ignored and may be nil. Close
// flushes pending compressed blocks and writes the format trailer; it
// must be called exactly once, and no entries may be written after it.
type Writer interface {
	WriteEntry(e Entry, r io.Reader) error
	Close() error
}

// NewWriter returns a Writer that produces an archive of the given
// format on w. The level overrides the codec's compression level where
// the codec supports one; DefaultLevel keeps the library default.
func NewWriter(w io.Writer, format Format, level int) (Writer, error) {
	switch format {
	case FormatTarGz, FormatTarBz2, FormatTarXz, FormatTarZstd:
		return newTarWriter(w, format, level)
	case FormatZip:
		return newZipWriter(w, level), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, format)
	}
}
