package extract

// Selectors names the three fixed markers the extractor depends on. They are
// injected configuration, never discovered from the page: a change in the
// host page's markup is a breaking change with no fallback.
type Selectors struct {
	// Container is a tag[attr="value"] selector for the single subtree root
	// within which entries are searched.
	Container string
	// Timestamp is the style-class name marking the timestamp field inside
	// each candidate.
	Timestamp string
	// Content is the style-class name marking the content field inside each
	// candidate.
	Content string
}

// DefaultSelectors returns the markers for the supported host page.
func DefaultSelectors() Selectors {
	return Selectors{
		Container: `div[data-purpose="transcript-panel"]`,
		Timestamp: "transcript-timestamp",
		Content:   "transcript-text",
	}
}
