package textio

import (
	"bufio"
	"io"
	"strings"
)

// maxLineSize bounds a single corpus record; unigram count lines for large
// documents run to megabytes.
const maxLineSize = 64 * 1024 * 1024

// LineReader yields lines with the terminating newline (and any carriage
// return) removed.
type LineReader struct {
	scanner *bufio.Scanner
}

func NewLineReader(r io.Reader) *LineReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	return &LineReader{scanner: scanner}
}

func (lr *LineReader) Scan() bool {
	return lr.scanner.Scan()
}

func (lr *LineReader) Text() string {
	return strings.TrimSuffix(lr.scanner.Text(), "\r")
}

func (lr *LineReader) Err() error {
	return lr.scanner.Err()
}

// ReadLines opens path (decompressing if needed) and returns every line.
func ReadLines(path string) ([]string, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var lines []string
	lr := NewLineReader(r)
	for lr.Scan() {
		lines = append(lines, lr.Text())
	}
	return lines, lr.Err()
}

// WriteLines creates path (compressing if needed) and writes each line
// with a trailing newline.
func WriteLines(path string, lines []string) error {
	w, err := Create(path)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			w.Close()
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
