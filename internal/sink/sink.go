package sink

import (
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/transcribe/internal/extract"
	"github.com/hyperifyio/transcribe/internal/transcript"
)

// Sink receives rendered transcript text. Implementations perform exactly
// one side effect per Write and must not retain the text afterwards.
type Sink interface {
	Write(text string) error
}

// Memory collects writes in order. It exists for tests and dry runs.
type Memory struct {
	Writes []string
}

func (m *Memory) Write(text string) error {
	m.Writes = append(m.Writes, text)
	return nil
}

// Copy renders the entries and writes them to s, reporting success as a bare
// boolean. Zero entries return false without touching the sink. Any sink
// failure is caught at this boundary and converted to false; the cause is
// logged but not propagated.
func Copy(s Sink, entries []extract.Entry, includeTimestamps bool, sep string) bool {
	if len(entries) == 0 {
		log.Warn().Msg("no transcript entries to copy")
		return false
	}
	if err := s.Write(transcript.Render(entries, includeTimestamps, sep)); err != nil {
		log.Warn().Err(err).Msg("transcript copy failed")
		return false
	}
	return true
}

// Download renders the entries and writes them to s. Zero entries are a
// diagnostic-only no-op: the sink is never touched.
func Download(s Sink, entries []extract.Entry, includeTimestamps bool, sep string) error {
	if len(entries) == 0 {
		log.Warn().Msg("no transcript entries to download")
		return nil
	}
	return s.Write(transcript.Render(entries, includeTimestamps, sep))
}
