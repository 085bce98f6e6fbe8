package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/transcribe/internal/extract"
	"github.com/hyperifyio/transcribe/internal/fetch"
	"github.com/hyperifyio/transcribe/internal/sink"
	"github.com/hyperifyio/transcribe/internal/transcript"
)

// ErrNoDocument is returned when the input document cannot be read at all.
// Per the exit code policy, this condition should result in a non-zero
// process exit; an empty transcript inside a readable document should not.
var ErrNoDocument = errors.New("input document unavailable")

// pdfDefaultFilename names the PDF output when the caller does not.
const pdfDefaultFilename = "transcript.pdf"

type App struct {
	cfg Config
}

func New(cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return &App{cfg: cfg}, nil
}

// selectors overlays configured overrides onto the documented defaults.
func (a *App) selectors() extract.Selectors {
	sel := extract.DefaultSelectors()
	if a.cfg.ContainerSelector != "" {
		sel.Container = a.cfg.ContainerSelector
	}
	if a.cfg.TimestampClass != "" {
		sel.Timestamp = a.cfg.TimestampClass
	}
	if a.cfg.ContentClass != "" {
		sel.Content = a.cfg.ContentClass
	}
	return sel
}

// Run reads the document, extracts the transcript once, and dispatches the
// configured operation. Nothing is cached between runs; every invocation
// re-walks the document from scratch.
func (a *App) Run(ctx context.Context) error {
	input, err := a.readDocument(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoDocument, err)
	}
	root, err := extract.Parse(input)
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	entries := extract.Transcript(root, a.selectors())
	log.Debug().Int("entries", len(entries)).Msg("transcript extracted")

	switch a.cfg.Action {
	case ActionText:
		fmt.Fprintln(os.Stdout, transcript.Render(entries, a.cfg.IncludeTimestamps, a.cfg.Separator))
	case ActionCopy:
		if sink.Copy(sink.Clipboard{}, entries, a.cfg.IncludeTimestamps, a.cfg.Separator) {
			log.Info().Int("entries", len(entries)).Msg("transcript copied to clipboard")
		} else {
			log.Warn().Msg("transcript not copied")
		}
	case ActionSave:
		if err := sink.Download(sink.File{Path: a.cfg.OutputPath}, entries, a.cfg.IncludeTimestamps, a.cfg.Separator); err != nil {
			return fmt.Errorf("save transcript: %w", err)
		}
		log.Info().Int("entries", len(entries)).Str("path", a.outputPath(sink.DefaultFilename)).Msg("transcript saved")
	case ActionPDF:
		path := a.outputPath(pdfDefaultFilename)
		if err := sink.Download(sink.PDF{Path: path}, entries, a.cfg.IncludeTimestamps, a.cfg.Separator); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Int("entries", len(entries)).Str("path", path).Msg("transcript rendered to pdf")
	case ActionSummary:
		printSummary(os.Stdout, transcript.Summarize(entries))
	}
	return nil
}

func (a *App) outputPath(fallback string) string {
	if a.cfg.OutputPath != "" {
		return a.cfg.OutputPath
	}
	return fallback
}

func (a *App) readDocument(ctx context.Context) ([]byte, error) {
	switch {
	case a.cfg.InputURL != "":
		c := &fetch.Client{
			UserAgent:         a.cfg.UserAgent,
			MaxAttempts:       3,
			PerRequestTimeout: 15 * time.Second,
		}
		body, _, err := c.Get(ctx, a.cfg.InputURL)
		return body, err
	case a.cfg.InputPath != "" && a.cfg.InputPath != "-":
		return os.ReadFile(a.cfg.InputPath)
	default:
		return io.ReadAll(os.Stdin)
	}
}

func printSummary(w io.Writer, s transcript.Summary) {
	fmt.Fprintf(w, "entries:    %d\n", s.TotalEntries)
	fmt.Fprintf(w, "characters: %d\n", s.TotalCharacters)
	fmt.Fprintf(w, "words:      %d\n", s.TotalWords)
	fmt.Fprintf(w, "duration:   %s\n", s.Duration)
	if s.FirstTimestamp != "" {
		fmt.Fprintf(w, "first:      %s\n", s.FirstTimestamp)
	}
	if s.LastTimestamp != "" {
		fmt.Fprintf(w, "last:       %s\n", s.LastTimestamp)
	}
}
