package archive

import (
	"errors"
	"io"
)

// ErrOverflow indicates a byte counter exceeded its maximum value.
var ErrOverflow = errors.New("counter overflow")

// CountingWriter wraps a writer and counts bytes written through it.
// The pipeline uses it to report the compressed size of the output.
type CountingWriter struct {
	W io.Writer
	N uint64
}

// Write implements io.Writer.
func (cw *CountingWriter) Write(p []byte) (int, error) {
	n, err := cw.W.Write(p)
	if n > 0 {
		if cw.N > ^uint64(0)-uint64(n) {
			return n, ErrOverflow
		}
		cw.N += uint64(n)
	}
	return n, err
}
