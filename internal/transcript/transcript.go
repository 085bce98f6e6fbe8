package transcript

import (
	"regexp"
	"strings"

	"github.com/hyperifyio/transcribe/internal/extract"
)

// DefaultSeparator joins content pieces when the caller does not supply one.
const DefaultSeparator = " "

// placeholderDuration stands in when there is no last entry to take the
// timestamp from.
const placeholderDuration = "00:00:00"

// Summary is a read-only aggregate over an entry sequence. Duration mirrors
// the last entry's timestamp verbatim rather than an elapsed delta;
// FirstTimestamp and LastTimestamp are empty when there are no entries.
type Summary struct {
	TotalEntries    int    `json:"totalEntries"`
	TotalCharacters int    `json:"totalCharacters"`
	TotalWords      int    `json:"totalWords"`
	Duration        string `json:"duration"`
	FirstTimestamp  string `json:"firstTimestamp,omitempty"`
	LastTimestamp   string `json:"lastTimestamp,omitempty"`
}

var whitespace = regexp.MustCompile(`\s+`)

// ContentOnly projects the entries onto their content field. It is always
// derived from an already-extracted sequence so length and order match the
// source entries exactly.
func ContentOnly(entries []extract.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Content)
	}
	return out
}

// JoinContent joins the content-only projection with sep. Zero entries yield
// the empty string.
func JoinContent(entries []extract.Entry, sep string) string {
	return strings.Join(ContentOnly(entries), sep)
}

// Render builds the outgoing text shared by every sink: the content join,
// with each piece prefixed by "<timestamp>: " when includeTimestamps is set.
func Render(entries []extract.Entry, includeTimestamps bool, sep string) string {
	if !includeTimestamps {
		return JoinContent(entries, sep)
	}
	pieces := make([]string, 0, len(entries))
	for _, e := range entries {
		pieces = append(pieces, e.Timestamp+": "+e.Content)
	}
	return strings.Join(pieces, sep)
}

// Summarize aggregates the entries. Characters are runes of the space-joined
// content. The word count splits that join on whitespace runs; splitting the
// empty string yields one empty token, so an empty transcript reports one
// word — callers depend on the historical count.
func Summarize(entries []extract.Entry) Summary {
	joined := JoinContent(entries, DefaultSeparator)
	s := Summary{
		TotalEntries:    len(entries),
		TotalCharacters: len([]rune(joined)),
		TotalWords:      len(whitespace.Split(joined, -1)),
		Duration:        placeholderDuration,
	}
	if len(entries) > 0 {
		s.FirstTimestamp = entries[0].Timestamp
		s.LastTimestamp = entries[len(entries)-1].Timestamp
		s.Duration = s.LastTimestamp
	}
	return s
}
