//go:build !unix

package platform

import "io/fs"

// FileOwner extracts the owner UID and GID from file info. Ownership
// is not reported on this platform.
func FileOwner(_ fs.FileInfo) (uid, gid int) {
	return 0, 0
}
