package archive

import (
	"archive/tar"
	"fmt"
	"io"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// tarWriter streams entries into a tar container wrapped in one of the
// supported compression filters.
type tarWriter struct {
	tw   *tar.Writer
	comp io.Closer
	buf  []byte
}

func newTarWriter(w io.Writer, format Format, level int) (*tarWriter, error) {
	comp, err := newCompressor(w, format, level)
	if err != nil {
		return nil, err
	}
	return &tarWriter{
		tw:   tar.NewWriter(comp),
		comp: comp,
		buf:  make([]byte, 32*1024),
	}, nil
}

// newCompressor builds the compression filter for a tar variant.
// A DefaultLevel level keeps each codec's library default; xz exposes
// no level knob, so the level is ignored there.
func newCompressor(w io.Writer, format Format, level int) (io.WriteCloser, error) {
	switch format {
	case FormatTarGz:
		if level == DefaultLevel {
			level = gzip.DefaultCompression
		}
		gw, err := gzip.NewWriterLevel(w, level)
		if err != nil {
			return nil, fmt.Errorf("create gzip writer: %w", err)
		}
		return gw, nil
	case FormatTarBz2:
		if level == DefaultLevel {
			level = bzip2.DefaultCompression
		}
		bw, err := bzip2.NewWriter(w, &bzip2.WriterConfig{Level: level})
		if err != nil {
			return nil, fmt.Errorf("create bzip2 writer: %w", err)
		}
		return bw, nil
	case FormatTarXz:
		xw, err := xz.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("create xz writer: %w", err)
		}
		return xw, nil
	case FormatTarZstd:
		opts := []zstd.EOption{zstd.WithEncoderConcurrency(1)}
		if level != DefaultLevel {
			opts = append(opts, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
		}
		zw, err := zstd.NewWriter(w, opts...)
		if err != nil {
			return nil, fmt.Errorf("create zstd writer: %w", err)
		}
		return zw, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, format)
	}
}

func (t *tarWriter) WriteEntry(e Entry, r io.Reader) error {
	hdr := &tar.Header{
		Name:    e.Path,
		Mode:    int64(e.Mode.Perm()),
		ModTime: e.ModTime,
		Uid:     e.UID,
		Gid:     e.GID,
	}

	switch e.Kind {
	case KindDir:
		hdr.Typeflag = tar.TypeDir
		hdr.Name += "/"
	case KindSymlink:
		hdr.Typeflag = tar.TypeSymlink
		hdr.Linkname = e.LinkTarget
	case KindFile:
		hdr.Typeflag = tar.TypeReg
		hdr.Size = int64(e.Size)
	default:
		return fmt.Errorf("unsupported entry kind: %s", e.Kind)
	}

	if err := t.tw.WriteHeader(hdr); err != nil {
		return fmt.Errorf("write header for %s: %w", e.Path, err)
	}
	if e.Kind != KindFile {
		return nil
	}

	// The header committed to e.Size bytes; a mismatch means the file
	// changed between scan and write.
	n, err := io.CopyBuffer(t.tw, r, t.buf)
	if err != nil {
		return fmt.Errorf("write %s: %w", e.Path, err)
	}
	if n != int64(e.Size) {
		return fmt.Errorf("write %s: file changed during archiving (expected %d bytes, copied %d)", e.Path, e.Size, n)
	}
	return nil
}

func (t *tarWriter) Close() error {
	if err := t.tw.Close(); err != nil {
		return fmt.Errorf("close tar writer: %w", err)
	}
	if err := t.comp.Close(); err != nil {
		return fmt.Errorf("close compressor: %w", err)
	}
	return nil
}
