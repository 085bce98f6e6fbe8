package app

import "errors"

// Action selects the single operation performed per invocation.
type Action string

const (
	// ActionText prints the joined transcript text to stdout.
	ActionText Action = "text"
	// ActionCopy writes the joined text to the system clipboard.
	ActionCopy Action = "copy"
	// ActionSave writes the joined text to a plain-text file.
	ActionSave Action = "save"
	// ActionPDF writes the joined text to a PDF file.
	ActionPDF Action = "pdf"
	// ActionSummary prints the transcript summary to stdout.
	ActionSummary Action = "summary"
)

// Config holds runtime configuration for the tool.
type Config struct {
	// Input document: InputURL wins over InputPath; an empty or "-" path
	// reads stdin.
	InputPath string
	InputURL  string

	// OutputPath names the file for save/pdf actions. Empty falls back to
	// transcript.txt / transcript.pdf.
	OutputPath string
	Action     Action

	// Rendering
	IncludeTimestamps bool
	Separator         string

	// Selector overrides; empty fields fall back to the documented defaults.
	ContainerSelector string
	TimestampClass    string
	ContentClass      string

	// UserAgent is sent on -url fetches.
	UserAgent string
	Verbose   bool
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	switch cfg.Action {
	case ActionText, ActionCopy, ActionSave, ActionPDF, ActionSummary:
	case "":
		return errors.New("config: action is required")
	default:
		return errors.New("config: unknown action " + string(cfg.Action))
	}
	return nil
}
