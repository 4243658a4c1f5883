package press

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/opencontainers/go-digest"

	"github.com/press-cli/press/internal/archive"
	"github.com/press-cli/press/internal/platform"
)

// Stats summarizes a completed archive job.
type Stats struct {
	// Files, Dirs, and Symlinks count the entries written, by kind.
	Files    int
	Dirs     int
	Symlinks int

	// OriginalBytes is the total uncompressed content size written.
	OriginalBytes uint64

	// CompressedBytes is the size of the finished archive file.
	CompressedBytes uint64

	// Warnings records entries skipped during scanning or writing.
	Warnings []Warning

	// Digest is the digest of the finished archive file.
	Digest digest.Digest
}

// Entries returns the total number of entries written.
func (s *Stats) Entries() int {
	return s.Files + s.Dirs + s.Symlinks
}

// Create builds an archive of the given format at dst from the file or
// directory tree rooted at src.
//
// The job runs in two passes: a scan computing totals (see [ScanDir]),
// then a sequential write streaming each entry through the format's
// compressor. Output goes to a temporary file next to dst and is
// renamed into place only after a successful finalize; on error or
// cancellation the temporary file is removed and dst is left untouched.
//
// The context cancels the job between entries; an entry already being
// written is completed or the job fails, never half-recorded silently.
func Create(ctx context.Context, src, dst string, format Format, opts ...CreateOption) (*Stats, error) {
	cfg := newCreateConfig(opts)
	j := &job{cfg: cfg}
	j.log().Info("creating archive", "src", src, "dst", dst, "format", format.String())

	scan, err := j.scan(ctx, src)
	if err != nil {
		return nil, err
	}

	stats, err := j.write(ctx, scan, dst, format)
	if err != nil {
		return nil, err
	}

	j.log().Info("archive complete",
		"dst", dst,
		"entries", stats.Entries(),
		"original_bytes", stats.OriginalBytes,
		"compressed_bytes", stats.CompressedBytes,
		"warnings", len(stats.Warnings),
		"digest", stats.Digest.String())
	return stats, nil
}

// job holds state for one archive creation run.
type job struct {
	cfg createConfig
}

// log returns the logger, falling back to a discard logger if nil.
func (j *job) log() *slog.Logger {
	if j.cfg.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return j.cfg.logger
}

// report sends a progress event if an observer is configured.
func (j *job) report(ev ProgressEvent) {
	if j.cfg.progress != nil {
		j.cfg.progress(ev)
	}
}

// warn records a non-fatal per-entry failure, or returns it as fatal
// in fail-fast mode.
func (j *job) warn(ws *[]Warning, path string, err error) error {
	if j.cfg.failFast {
		return fmt.Errorf("%s: %w", path, err)
	}
	j.log().Warn("skipping entry", "path", path, "error", err)
	*ws = append(*ws, Warning{Path: path, Err: err})
	return nil
}

// write streams the scanned entries into the destination archive.
func (j *job) write(ctx context.Context, scan *Scan, dst string, format Format) (stats *Stats, err error) {
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".press-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriterSize(tmp, 64*1024)
	digester := digest.Canonical.Digester()
	counting := &archive.CountingWriter{W: io.MultiWriter(bw, digester.Hash())}

	aw, err := archive.NewWriter(counting, format, j.cfg.level)
	if err != nil {
		return nil, err
	}

	var root *os.Root
	if !scan.fileRoot {
		root, err = os.OpenRoot(scan.Root)
		if err != nil {
			return nil, fmt.Errorf("open source: %w", err)
		}
		defer root.Close()
	}

	stats = &Stats{Warnings: append([]Warning(nil), scan.Warnings...)}
	for _, e := range scan.Entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := j.writeEntry(aw, root, scan, e, stats); err != nil {
			return nil, err
		}
		j.report(ProgressEvent{
			Stage:        StageArchiving,
			Path:         e.Path,
			BytesDone:    stats.OriginalBytes,
			BytesTotal:   scan.TotalBytes,
			EntriesDone:  stats.Entries(),
			EntriesTotal: len(scan.Entries),
		})
	}

	if err := aw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return nil, fmt.Errorf("flush output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("close output: %w", err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return nil, fmt.Errorf("move output into place: %w", err)
	}
	committed = true

	stats.CompressedBytes = counting.N
	stats.Digest = digester.Digest()
	return stats, nil
}

// writeEntry appends one scanned entry to the archive, applying the
// partial-failure policy to open errors and unsupported symlinks.
// Errors after an entry's header has been written are always fatal.
func (j *job) writeEntry(aw archive.Writer, root *os.Root, scan *Scan, e Entry, stats *Stats) error {
	switch e.Kind {
	case KindDir:
		if err := aw.WriteEntry(e, nil); err != nil {
			return fmt.Errorf("archive %s: %w", e.Path, err)
		}
		stats.Dirs++

	case KindSymlink:
		if err := aw.WriteEntry(e, nil); err != nil {
			if errors.Is(err, archive.ErrSymlinkUnsupported) {
				return j.warn(&stats.Warnings, e.Path, err)
			}
			return fmt.Errorf("archive %s: %w", e.Path, err)
		}
		stats.Symlinks++

	case KindFile:
		f, err := j.openEntry(root, scan, e)
		if err != nil {
			return j.warn(&stats.Warnings, e.Path, err)
		}
		err = aw.WriteEntry(e, f)
		f.Close()
		if err != nil {
			return fmt.Errorf("archive %s: %w", e.Path, err)
		}
		stats.Files++
		stats.OriginalBytes += e.Size
	}
	return nil
}

// openEntry opens an entry's content for reading without following
// symlinks. A nil root means the scan root is itself the single file.
func (j *job) openEntry(root *os.Root, scan *Scan, e Entry) (*os.File, error) {
	if root == nil {
		return os.Open(scan.Root)
	}
	return platform.OpenFileNoFollow(root, filepath.FromSlash(e.Path))
}
