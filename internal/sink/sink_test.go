package sink

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hyperifyio/transcribe/internal/extract"
	"github.com/hyperifyio/transcribe/internal/transcript"
)

type failingSink struct{}

func (failingSink) Write(string) error { return errors.New("denied") }

func twoEntries() []extract.Entry {
	return []extract.Entry{
		{Timestamp: "00:00:01", Content: "Hello"},
		{Timestamp: "00:00:05", Content: "world"},
	}
}

func TestCopy_RoundTrip(t *testing.T) {
	m := &Memory{}
	entries := twoEntries()
	if !Copy(m, entries, false, " ") {
		t.Fatalf("expected copy to succeed")
	}
	if len(m.Writes) != 1 {
		t.Fatalf("expected exactly one write, got %d", len(m.Writes))
	}
	if want := transcript.JoinContent(entries, " "); m.Writes[0] != want {
		t.Fatalf("copied text %q != joined content %q", m.Writes[0], want)
	}
}

func TestCopy_WithTimestamps(t *testing.T) {
	m := &Memory{}
	if !Copy(m, twoEntries(), true, "\n") {
		t.Fatalf("expected copy to succeed")
	}
	if want := "00:00:01: Hello\n00:00:05: world"; m.Writes[0] != want {
		t.Fatalf("expected %q, got %q", want, m.Writes[0])
	}
}

func TestCopy_ZeroEntries_DoesNotTouchSink(t *testing.T) {
	m := &Memory{}
	if Copy(m, nil, false, " ") {
		t.Fatalf("expected false for zero entries")
	}
	if len(m.Writes) != 0 {
		t.Fatalf("sink must not be touched for zero entries, got %v", m.Writes)
	}
}

func TestCopy_SinkFailureConvertsToFalse(t *testing.T) {
	if Copy(failingSink{}, twoEntries(), false, " ") {
		t.Fatalf("expected false when the sink fails")
	}
}

func TestDownload_ZeroEntries_NoSideEffect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.txt")
	if err := Download(File{Path: path}, nil, false, " "); err != nil {
		t.Fatalf("zero-entry download must be a no-op, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no file to be written, stat err: %v", err)
	}
}

func TestFile_WriteAndNoLeftoverTemp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transcript.txt")
	if err := Download(File{Path: path}, twoEntries(), false, " "); err != nil {
		t.Fatalf("download failed: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved transcript: %v", err)
	}
	if string(b) != "Hello world" {
		t.Fatalf("unexpected file content: %q", string(b))
	}
	names, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(names) != 1 {
		t.Fatalf("expected only the transcript file in %s, got %d entries", dir, len(names))
	}
}

func TestFile_FailureLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	// Target path is a directory, so the final rename must fail.
	target := filepath.Join(dir, "blocked")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	err := File{Path: target}.Write("text")
	if err == nil {
		t.Fatalf("expected rename onto a directory to fail")
	}
	names, err2 := os.ReadDir(dir)
	if err2 != nil {
		t.Fatalf("read dir: %v", err2)
	}
	if len(names) != 1 {
		t.Fatalf("temp file must be removed on failure, dir has %d entries", len(names))
	}
}

func TestPDF_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.pdf")
	if err := Download(PDF{Path: path}, twoEntries(), true, "\n"); err != nil {
		t.Fatalf("pdf download failed: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if !strings.HasPrefix(string(b), "%PDF") {
		t.Fatalf("output does not look like a PDF")
	}
}
