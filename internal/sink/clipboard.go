package sink

import "github.com/atotto/clipboard"

// Clipboard writes to the system clipboard. The write blocks until the
// platform grants or denies clipboard access.
type Clipboard struct{}

func (Clipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}
