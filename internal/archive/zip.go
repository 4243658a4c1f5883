package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/flate"
)

// zipWriter streams entries into a zip container. Deflate runs through
// the klauspost flate implementation instead of the standard library's.
type zipWriter struct {
	zw  *zip.Writer
	buf []byte
}

func newZipWriter(w io.Writer, level int) *zipWriter {
	if level == DefaultLevel {
		level = flate.DefaultCompression
	}
	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, level)
	})
	return &zipWriter{zw: zw, buf: make([]byte, 32*1024)}
}

func (z *zipWriter) WriteEntry(e Entry, r io.Reader) error {
	switch e.Kind {
	case KindSymlink:
		return fmt.Errorf("%s: %w", e.Path, ErrSymlinkUnsupported)
	case KindDir:
		hdr := &zip.FileHeader{
			Name:     e.Path + "/",
			Method:   zip.Store,
			Modified: e.ModTime,
		}
		hdr.SetMode(e.Mode)
		if _, err := z.zw.CreateHeader(hdr); err != nil {
			return fmt.Errorf("write directory %s: %w", e.Path, err)
		}
		return nil
	case KindFile:
		hdr := &zip.FileHeader{
			Name:     e.Path,
			Method:   zip.Deflate,
			Modified: e.ModTime,
		}
		hdr.SetMode(e.Mode)
		if skipDeflate(e.Path, e.Size) {
			hdr.Method = zip.Store
		}
		w, err := z.zw.CreateHeader(hdr)
		if err != nil {
			return fmt.Errorf("write header for %s: %w", e.Path, err)
		}
		n, err := io.CopyBuffer(w, r, z.buf)
		if err != nil {
			return fmt.Errorf("write %s: %w", e.Path, err)
		}
		if n != int64(e.Size) {
			return fmt.Errorf("write %s: file changed during archiving (expected %d bytes, copied %d)", e.Path, e.Size, n)
		}
		return nil
	default:
		return fmt.Errorf("unsupported entry kind: %s", e.Kind)
	}
}

func (z *zipWriter) Close() error {
	if err := z.zw.Close(); err != nil {
		return fmt.Errorf("close zip writer: %w", err)
	}
	return nil
}

// skipDeflate reports whether a file should be stored rather than
// deflated: tiny files and well-known already-compressed extensions
// gain nothing from another deflate pass.
func skipDeflate(path string, size uint64) bool {
	if size < 64 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := storedExts[ext]
	return ok
}

var storedExts = map[string]struct{}{
	".7z":    {},
	".aac":   {},
	".avif":  {},
	".br":    {},
	".bz2":   {},
	".flac":  {},
	".gif":   {},
	".gz":    {},
	".heic":  {},
	".jpeg":  {},
	".jpg":   {},
	".m4v":   {},
	".mkv":   {},
	".mov":   {},
	".mp3":   {},
	".mp4":   {},
	".ogg":   {},
	".opus":  {},
	".png":   {},
	".rar":   {},
	".tgz":   {},
	".webm":  {},
	".webp":  {},
	".woff":  {},
	".woff2": {},
	".xz":    {},
	".zip":   {},
	".zst":   {},
}
