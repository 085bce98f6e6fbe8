package sink

import (
	"bufio"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// PDF renders the transcript text into a minimal one-font PDF at Path. This
// is intentionally simple and does not attempt real layout; a newline
// separator gives one transcript piece per line.
type PDF struct {
	Path string
}

func (p PDF) Write(text string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			pdf.Ln(5)
			continue
		}
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
	return pdf.OutputFileAndClose(p.Path)
}
