package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	apppkg "github.com/hyperifyio/transcribe/internal/app"
)

// Smoke test: ensure main.run saves a transcript with minimal config.
func TestRun_SaveAction_WritesOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "page.html")
	out := filepath.Join(dir, "transcript.txt")
	page := `<html><body><div data-purpose="transcript-panel">
	  <button><span class="transcript-timestamp">00:00:01</span><span class="transcript-text">Hello</span></button>
	  <button><span class="transcript-timestamp">00:00:05</span><span class="transcript-text">world</span></button>
	</div></body></html>`
	if err := os.WriteFile(in, []byte(page), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	cfg := apppkg.Config{
		InputPath:  in,
		OutputPath: out,
		Action:     apppkg.ActionSave,
		Separator:  " ",
	}
	if err := run(cfg); err != nil {
		t.Fatalf("run error: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil || string(b) != "Hello world" {
		t.Fatalf("expected saved transcript, err=%v content=%q", err, string(b))
	}
}

// Ensures the exit code policy condition is surfaced as an error from run().
func TestRun_MissingInput_Error(t *testing.T) {
	cfg := apppkg.Config{
		InputPath: filepath.Join(t.TempDir(), "missing.html"),
		Action:    apppkg.ActionText,
		Separator: " ",
	}
	err := run(cfg)
	if !errors.Is(err, apppkg.ErrNoDocument) {
		t.Fatalf("expected ErrNoDocument, got %v", err)
	}
}
