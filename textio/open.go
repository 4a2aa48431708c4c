// Package textio wraps file access for corpus processing: opening and
// creating files with transparent compression selected by extension, and
// newline-chomping line readers sized for long corpus records.
package textio

import (
	"compress/bzip2"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	ErrWriteUnsupported = errors.New("textio: compression format not supported for writing")
)

// Open opens path for reading, transparently decompressing .gz, .bz2 and
// .zst files. The returned closer tears down the decompressor and the
// underlying file together.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch filepath.Ext(path) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &layeredCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case ".bz2":
		return &layeredCloser{Reader: bzip2.NewReader(f), closers: []io.Closer{f}}, nil
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &layeredCloser{Reader: zr, closers: []io.Closer{zr.IOReadCloser(), f}}, nil
	default:
		return f, nil
	}
}

// Create creates path for writing, compressing by extension. Writing
// bzip2 is not supported; use gzip or zstd instead.
func Create(path string) (io.WriteCloser, error) {
	switch filepath.Ext(path) {
	case ".bz2":
		return nil, ErrWriteUnsupported
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	switch filepath.Ext(path) {
	case ".gz":
		zw := gzip.NewWriter(f)
		return &layeredWriteCloser{Writer: zw, closers: []io.Closer{zw, f}}, nil
	case ".zst":
		zw, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &layeredWriteCloser{Writer: zw, closers: []io.Closer{zw, f}}, nil
	default:
		return f, nil
	}
}

// layeredCloser closes a decompressor and its underlying file in order.
type layeredCloser struct {
	io.Reader
	closers []io.Closer
}

func (lc *layeredCloser) Close() error {
	var first error
	for _, c := range lc.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

type layeredWriteCloser struct {
	io.Writer
	closers []io.Closer
}

func (lw *layeredWriteCloser) Close() error {
	var first error
	for _, c := range lw.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
