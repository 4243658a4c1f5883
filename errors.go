package press

import (
	"errors"

	"github.com/press-cli/press/internal/archive"
)

// Errors re-exported from internal/archive.
var (
	// ErrUnsupportedFormat is returned when a format selector does not
	// name one of the supported archive formats.
	ErrUnsupportedFormat = archive.ErrUnsupportedFormat

	// ErrSymlinkUnsupported is recorded as a warning when the target
	// format cannot represent a symbolic link.
	ErrSymlinkUnsupported = archive.ErrSymlinkUnsupported
)

// ErrSourceUnsupported is returned when the source root is neither a
// regular file nor a directory.
var ErrSourceUnsupported = errors.New("source is neither a regular file nor a directory")

// Warning records a non-fatal per-entry failure during a job. The
// entry named by Path was skipped and the job continued.
type Warning struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (w Warning) Error() string {
	return w.Path + ": " + w.Err.Error()
}

// Unwrap returns the underlying error.
func (w Warning) Unwrap() error {
	return w.Err
}
