// Package pixelio reads and writes the line-oriented pixel text stream used
// by rgbproc.
//
// Input is one pixel per line as three whitespace-separated non-negative
// decimal integers:
//
//	-- comment lines start with two dashes
//	255 0 0
//	0 255 0
//
// Output of pixel filters uses the same "R G B" line format. The window dump
// writes the nine window pixels of each position on one line.
package pixelio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"syscall"

	"github.com/gogpu/rgbproc"
)

// CommentPrefix marks a comment line in the input stream.
const CommentPrefix = "--"

// FormatError reports an input line that is neither a pixel nor a comment.
type FormatError struct {
	Line int    // 1-based line number
	Text string // the offending line, trimmed
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("pixelio: line %d: invalid pixel %q", e.Line, e.Text)
}

// Reader is an rgbproc.PixelSource over a text stream.
//
// NextPixel returns io.EOF at the end of input and a *FormatError for a
// malformed line. Comment lines and blank lines are skipped and not counted
// as pixels.
type Reader struct {
	r    io.Reader
	sc   *bufio.Scanner
	line int
}

// NewReader returns a Reader over r. If r also implements io.Seeker the
// Reader can be rewound.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, sc: bufio.NewScanner(r)}
}

// NextPixel returns the next pixel of the stream.
func (r *Reader) NextPixel() (rgbproc.Pixel, error) {
	for r.sc.Scan() {
		r.line++
		text := strings.TrimSpace(r.sc.Text())
		if text == "" || strings.HasPrefix(text, CommentPrefix) {
			continue
		}
		p, ok := parsePixel(text)
		if !ok {
			return rgbproc.Pixel{}, &FormatError{Line: r.line, Text: text}
		}
		return p, nil
	}
	if err := r.sc.Err(); err != nil {
		return rgbproc.Pixel{}, fmt.Errorf("pixelio: read line %d: %w", r.line+1, err)
	}
	return rgbproc.Pixel{}, io.EOF
}

// Rewind restarts the stream from the beginning. It returns
// rgbproc.ErrResetUnsupported if the underlying reader is not an io.Seeker.
func (r *Reader) Rewind() error {
	s, ok := r.r.(io.Seeker)
	if !ok {
		return rgbproc.ErrResetUnsupported
	}
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		if errors.Is(err, syscall.ESPIPE) {
			return rgbproc.ErrResetUnsupported
		}
		return fmt.Errorf("pixelio: rewind: %w", err)
	}
	r.sc = bufio.NewScanner(r.r)
	r.line = 0
	return nil
}

// Line returns the number of input lines consumed so far.
func (r *Reader) Line() int {
	return r.line
}

// parsePixel parses "R G B". Signs, extra fields and values that overflow
// int are rejected.
func parsePixel(s string) (rgbproc.Pixel, bool) {
	var p rgbproc.Pixel
	fields := strings.Fields(s)
	if len(fields) != rgbproc.Channels {
		return p, false
	}
	for i, f := range fields {
		if !isDigits(f) {
			return p, false
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return p, false
		}
		p[i] = v
	}
	return p, true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
