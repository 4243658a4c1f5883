package archive

import (
	"io/fs"
	"time"
)

// Kind identifies the filesystem object type of an entry.
type Kind uint8

const (
	KindFile Kind = iota
	KindDir
	KindSymlink
)

// String returns the human-readable name of the entry kind.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	default:
		return "unknown"
	}
}

// Entry represents one filesystem object to be archived.
type Entry struct {
	// Path is the slash-separated path relative to the source root
	// (e.g., "src/main.go"). Directory entries carry no trailing slash.
	Path string

	// Kind is the filesystem object type.
	Kind Kind

	// Size is the content size in bytes. Zero for directories and symlinks.
	Size uint64

	// Mode is the entry's permission bits.
	Mode fs.FileMode

	// ModTime is the entry's modification time.
	ModTime time.Time

	// UID is the owner's user ID on systems that report one.
	UID int

	// GID is the owner's group ID on systems that report one.
	GID int

	// LinkTarget is the symlink target. Empty unless Kind is KindSymlink.
	LinkTarget string
}
