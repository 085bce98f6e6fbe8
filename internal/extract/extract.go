package extract

import (
	"bytes"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
)

// Entry is one extracted (timestamp, content) pair from the source document.
// The timestamp is an ordered label like "00:01:23"; it is never parsed as a
// numeric duration. Duplicate timestamps or content are legal.
type Entry struct {
	Timestamp string
	Content   string
}

// Parse builds a document snapshot from raw HTML bytes.
func Parse(input []byte) (*html.Node, error) {
	return html.Parse(bytes.NewReader(input))
}

// Transcript locates the transcript container under root and returns one
// Entry per well-formed candidate, in document order. A missing container
// yields an empty sequence with a diagnostic, not an error. Candidates that
// carry only one of the two labeled fields are skipped silently.
//
// Field text is the trimmed text content of the first matching descendant;
// internal whitespace is left as the parser produced it.
func Transcript(root *html.Node, sel Selectors) []Entry {
	if root == nil {
		return nil
	}
	container := findContainer(root, sel.Container)
	if container == nil {
		log.Warn().Str("selector", sel.Container).Msg("transcript container not found")
		return []Entry{}
	}
	entries := []Entry{}
	walkCandidates(container, func(c *html.Node) {
		ts := findByClass(c, sel.Timestamp)
		content := findByClass(c, sel.Content)
		if ts == nil || content == nil {
			return
		}
		entries = append(entries, Entry{
			Timestamp: strings.TrimSpace(textContent(ts)),
			Content:   strings.TrimSpace(textContent(content)),
		})
	})
	return entries
}

// findContainer returns the first element matching the tag[attr="value"]
// selector, in document order.
func findContainer(root *html.Node, selector string) *html.Node {
	tag, key, val := parseSelector(selector)
	var res *html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if res != nil {
			return
		}
		if cur.Type == html.ElementNode && matches(cur, tag, key, val) {
			res = cur
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
			if res != nil {
				return
			}
		}
	}
	dfs(root)
	return res
}

// parseSelector splits "tag[attr=\"value\"]" into its parts. A bare tag and
// a value-less attribute test are accepted too.
func parseSelector(s string) (tag, key, val string) {
	s = strings.TrimSpace(s)
	i := strings.IndexByte(s, '[')
	if i < 0 || !strings.HasSuffix(s, "]") {
		return s, "", ""
	}
	tag = s[:i]
	inner := s[i+1 : len(s)-1]
	if j := strings.IndexByte(inner, '='); j >= 0 {
		key = inner[:j]
		val = strings.Trim(inner[j+1:], `"'`)
		return tag, key, val
	}
	return tag, inner, ""
}

func matches(n *html.Node, tag, key, val string) bool {
	if tag != "" && !strings.EqualFold(n.Data, tag) {
		return false
	}
	if key == "" {
		return true
	}
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, key) {
			return val == "" || attr.Val == val
		}
	}
	return false
}

// walkCandidates visits every interactive descendant of container in
// document order. The container itself is not a candidate.
func walkCandidates(container *html.Node, fn func(*html.Node)) {
	var dfs func(*html.Node)
	dfs = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && isInteractive(c) {
				fn(c)
			}
			dfs(c)
		}
	}
	dfs(container)
}

// isInteractive reports whether the element is a clickable entry boundary:
// a button or anchor, or any element carrying role="button", tabindex, or an
// onclick handler.
func isInteractive(n *html.Node) bool {
	switch strings.ToLower(n.Data) {
	case "button", "a":
		return true
	}
	for _, attr := range n.Attr {
		switch strings.ToLower(attr.Key) {
		case "role":
			if strings.EqualFold(attr.Val, "button") {
				return true
			}
		case "tabindex", "onclick":
			return true
		}
	}
	return false
}

// findByClass returns the first descendant whose class list contains name.
func findByClass(n *html.Node, name string) *html.Node {
	var res *html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if res != nil {
			return
		}
		if cur != n && cur.Type == html.ElementNode && hasClass(cur, name) {
			res = cur
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
			if res != nil {
				return
			}
		}
	}
	dfs(n)
	return res
}

func hasClass(n *html.Node, name string) bool {
	for _, attr := range n.Attr {
		if !strings.EqualFold(attr.Key, "class") {
			continue
		}
		for _, f := range strings.Fields(attr.Val) {
			if f == name {
				return true
			}
		}
	}
	return false
}

// textContent concatenates every text node under n, like the DOM property of
// the same name.
func textContent(n *html.Node) string {
	var b strings.Builder
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
		}
	}
	dfs(n)
	return b.String()
}
