package press

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/press-cli/press/internal/platform"
)

// Scan holds the result of the pre-scan pass over a source tree.
type Scan struct {
	// Root is the source path the scan started from.
	Root string

	// Entries lists every archivable object in walk order: depth-first,
	// lexically sorted within each directory.
	Entries []Entry

	// TotalBytes is the sum of all file content sizes.
	TotalBytes uint64

	// Files, Dirs, and Symlinks count entries by kind.
	Files    int
	Dirs     int
	Symlinks int

	// Warnings records objects skipped because they could not be read.
	Warnings []Warning

	// fileRoot is set when Root is a regular file rather than a directory.
	fileRoot bool
}

// ScanDir walks the source path and computes the entry list and totals
// that drive archive writing and progress percentages. The root may be
// a directory or a single regular file.
//
// Unreadable files and directories below the root are skipped and
// recorded in Warnings unless CreateWithFailFast is set; an unreadable
// root is always an error. Symbolic links are recorded but never
// followed, so the walk cannot cycle.
func ScanDir(ctx context.Context, root string, opts ...CreateOption) (*Scan, error) {
	cfg := newCreateConfig(opts)
	j := &job{cfg: cfg}
	return j.scan(ctx, root)
}

func (j *job) scan(ctx context.Context, root string) (*Scan, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat source: %w", err)
	}

	s := &Scan{Root: root}
	j.report(ProgressEvent{Stage: StageScanning})

	if !info.IsDir() {
		if !info.Mode().IsRegular() {
			return nil, fmt.Errorf("%s: %w", root, ErrSourceUnsupported)
		}
		uid, gid := platform.FileOwner(info)
		s.fileRoot = true
		s.add(Entry{
			Path:    filepath.Base(root),
			Kind:    KindFile,
			Size:    uint64(info.Size()),
			Mode:    info.Mode(),
			ModTime: info.ModTime(),
			UID:     uid,
			GID:     gid,
		})
		return s, nil
	}

	err = fs.WalkDir(os.DirFS(root), ".", func(p string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			// The root itself being unreadable is fatal; anything below
			// it follows the partial-failure policy.
			if p == "." {
				return walkErr
			}
			return j.warn(&s.Warnings, p, walkErr)
		}
		if p == "." {
			return nil
		}

		entry, ok, err := j.scanEntry(root, p, d)
		if err != nil {
			return j.warn(&s.Warnings, p, err)
		}
		if !ok {
			return nil
		}
		s.add(entry)
		j.report(ProgressEvent{
			Stage:       StageScanning,
			Path:        p,
			BytesDone:   s.TotalBytes,
			EntriesDone: len(s.Entries),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	j.log().Debug("scan complete",
		"entries", len(s.Entries), "bytes", s.TotalBytes, "warnings", len(s.Warnings))
	return s, nil
}

// scanEntry builds the Entry for one walked object. ok=false means the
// object is not archivable (sockets, fifos, devices) and is skipped
// without a warning.
func (j *job) scanEntry(root, p string, d fs.DirEntry) (Entry, bool, error) {
	t := d.Type()
	switch {
	case t.IsDir():
		info, err := d.Info()
		if err != nil {
			return Entry{}, false, err
		}
		uid, gid := platform.FileOwner(info)
		return Entry{
			Path:    p,
			Kind:    KindDir,
			Mode:    info.Mode(),
			ModTime: info.ModTime(),
			UID:     uid,
			GID:     gid,
		}, true, nil

	case t&fs.ModeSymlink != 0:
		info, err := d.Info()
		if err != nil {
			return Entry{}, false, err
		}
		target, err := os.Readlink(filepath.Join(root, filepath.FromSlash(p)))
		if err != nil {
			return Entry{}, false, err
		}
		uid, gid := platform.FileOwner(info)
		return Entry{
			Path:       p,
			Kind:       KindSymlink,
			Mode:       info.Mode(),
			ModTime:    info.ModTime(),
			UID:        uid,
			GID:        gid,
			LinkTarget: target,
		}, true, nil

	case t.IsRegular():
		info, err := d.Info()
		if err != nil {
			return Entry{}, false, err
		}
		uid, gid := platform.FileOwner(info)
		return Entry{
			Path:    p,
			Kind:    KindFile,
			Size:    uint64(info.Size()),
			Mode:    info.Mode(),
			ModTime: info.ModTime(),
			UID:     uid,
			GID:     gid,
		}, true, nil

	default:
		j.log().Debug("skipped irregular file", "path", p, "mode", t.String())
		return Entry{}, false, nil
	}
}

func (s *Scan) add(e Entry) {
	s.Entries = append(s.Entries, e)
	s.TotalBytes += e.Size
	switch e.Kind {
	case KindFile:
		s.Files++
	case KindDir:
		s.Dirs++
	case KindSymlink:
		s.Symlinks++
	}
}
