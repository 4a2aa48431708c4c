package textio

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
)

func roundTrip(t *testing.T, path string, lines []string) []string {
	t.Helper()

	if err := WriteLines(path, lines); err != nil {
		t.Fatalf("WriteLines(%s) failed: %v", path, err)
	}
	got, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines(%s) failed: %v", path, err)
	}
	return got
}

func TestPlainRoundTrip(t *testing.T) {
	lines := []string{"first line", "second\tline", "", "last"}
	got := roundTrip(t, filepath.Join(t.TempDir(), "plain.txt"), lines)

	if len(got) != len(lines) {
		t.Fatalf("expected %d lines, got %d", len(lines), len(got))
	}
	for i := range lines {
		if got[i] != lines[i] {
			t.Errorf("line %d: got %q, want %q", i, got[i], lines[i])
		}
	}
}

func TestGzipRoundTrip(t *testing.T) {
	lines := []string{"compressed content", strings.Repeat("x", 100000)}
	got := roundTrip(t, filepath.Join(t.TempDir(), "data.txt.gz"), lines)

	if len(got) != 2 || got[0] != lines[0] || got[1] != lines[1] {
		t.Error("gzip round trip mismatch")
	}
}

func TestZstdRoundTrip(t *testing.T) {
	lines := []string{"zstandard content", "another line"}
	got := roundTrip(t, filepath.Join(t.TempDir(), "data.txt.zst"), lines)

	if len(got) != 2 || got[0] != lines[0] || got[1] != lines[1] {
		t.Error("zstd round trip mismatch")
	}
}

func TestBzip2WriteUnsupported(t *testing.T) {
	_, err := Create(filepath.Join(t.TempDir(), "data.txt.bz2"))
	if !errors.Is(err, ErrWriteUnsupported) {
		t.Errorf("expected ErrWriteUnsupported, got %v", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLineReaderChompsCarriageReturn(t *testing.T) {
	lr := NewLineReader(strings.NewReader("dos line\r\nunix line\n"))

	var got []string
	for lr.Scan() {
		got = append(got, lr.Text())
	}
	if err := lr.Err(); err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	if len(got) != 2 || got[0] != "dos line" || got[1] != "unix line" {
		t.Errorf("got %q", got)
	}
}

func TestGzipDetectedByExtensionOnly(t *testing.T) {
	// A plain file with a .txt extension passes through untouched even
	// if its content happens to look binary.
	path := filepath.Join(t.TempDir(), "binaryish.txt")
	if err := WriteLines(path, []string{"\x1f\x8b not actually gzip"}); err != nil {
		t.Fatalf("WriteLines failed: %v", err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	content, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !strings.Contains(string(content), "not actually gzip") {
		t.Error("plain file should not be decompressed")
	}
}
