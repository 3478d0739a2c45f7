package pixelio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gogpu/rgbproc"
)

// Writer writes pixels and windows in the text stream format.
// Output is buffered; call Flush when done.
type Writer struct {
	w   *bufio.Writer
	buf []byte
	n   int
}

// NewWriter returns a Writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w), buf: make([]byte, 0, 128)}
}

// WritePixel writes p as one "R G B" line.
func (w *Writer) WritePixel(p rgbproc.Pixel) error {
	w.buf = p.AppendText(w.buf[:0])
	w.buf = append(w.buf, '\n')
	return w.write()
}

// WriteWindow writes the nine pixels of win in row-major order on one
// line, each as "R G B " (27 integers, trailing space).
func (w *Writer) WriteWindow(win rgbproc.Window) error {
	b := w.buf[:0]
	for r := range 3 {
		for c := range 3 {
			b = win[r][c].AppendText(b)
			b = append(b, ' ')
		}
	}
	w.buf = append(b, '\n')
	return w.write()
}

// WriteComment writes a "-- text" line. Readers skip it.
func (w *Writer) WriteComment(text string) error {
	w.buf = append(append(w.buf[:0], CommentPrefix+" "...), text...)
	w.buf = append(w.buf, '\n')
	if _, err := w.w.Write(w.buf); err != nil {
		return fmt.Errorf("pixelio: write: %w", err)
	}
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("pixelio: flush: %w", err)
	}
	return nil
}

// Count returns the number of pixel or window lines written.
func (w *Writer) Count() int {
	return w.n
}

func (w *Writer) write() error {
	if _, err := w.w.Write(w.buf); err != nil {
		return fmt.Errorf("pixelio: write: %w", err)
	}
	w.n++
	return nil
}
