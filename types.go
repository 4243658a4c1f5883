package press

import "github.com/press-cli/press/internal/archive"

// --- Re-exports from internal/archive ---

type (
	// Entry represents one filesystem object to be archived.
	Entry = archive.Entry

	// Kind identifies the filesystem object type of an entry.
	Kind = archive.Kind

	// Format identifies the archive container and compression filter.
	Format = archive.Format
)

// Entry kinds.
const (
	KindFile    = archive.KindFile
	KindDir     = archive.KindDir
	KindSymlink = archive.KindSymlink
)

// Supported archive formats.
const (
	FormatTarGz   = archive.FormatTarGz
	FormatTarBz2  = archive.FormatTarBz2
	FormatTarXz   = archive.FormatTarXz
	FormatTarZstd = archive.FormatTarZstd
	FormatZip     = archive.FormatZip
)

// FormatNames lists the accepted format selectors in declaration order.
var FormatNames = archive.FormatNames

// ParseFormat maps a selector string to a Format. Selectors are
// case-insensitive; dotted spellings ("tar.gz") are accepted as
// aliases of the dashed ones.
func ParseFormat(s string) (Format, error) {
	return archive.ParseFormat(s)
}
