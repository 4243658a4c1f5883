//go:build unix

package platform

import (
	"io/fs"
	"syscall"
)

// FileOwner extracts the owner UID and GID from file info on Unix
// systems. Returns zeros when the platform info is unavailable.
func FileOwner(info fs.FileInfo) (uid, gid int) {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return int(stat.Uid), int(stat.Gid)
	}
	return 0, 0
}
