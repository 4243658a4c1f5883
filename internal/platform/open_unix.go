//go:build unix

package platform

import (
	"errors"
	"os"
	"syscall"
)

// ErrSymlink is returned when attempting to open a symbolic link as a file.
var ErrSymlink = errors.New("path is a symbolic link")

// OpenFileNoFollow opens a file under root without following symlinks.
// Returns ErrSymlink if the path is a symbolic link.
func OpenFileNoFollow(root *os.Root, name string) (*os.File, error) {
	f, err := root.OpenFile(name, os.O_RDONLY|syscall.O_NOFOLLOW, 0)
	if err != nil {
		if errors.Is(err, syscall.ELOOP) {
			return nil, ErrSymlink
		}
		return nil, err
	}
	return f, nil
}
