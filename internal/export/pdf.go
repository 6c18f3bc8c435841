// Package export renders a generated strategy as a paginated, branded PDF
// document. The exporter writes to the caller's writer; it never touches the
// filesystem itself.
package export

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	margin     = 20.0
	lineHeight = 6.0
	// breakAt is the vertical offset at which a new page starts.
	breakAt  = 270.0
	footerY  = 290.0
	bodySize = 11.0
)

// Document is a strategy ready for export.
type Document struct {
	Title  string
	Body   string
	Author string
	Date   time.Time
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Filename derives the download filename from the document title: strip
// non-alphanumerics, lowercase, truncate to 30 characters.
func Filename(title string) string {
	safe := strings.ToLower(nonAlphanumeric.ReplaceAllString(title, "_"))
	if len(safe) > 30 {
		safe = safe[:30]
	}
	return "wysider_strategy_" + safe + ".pdf"
}

// Render lays out the document and writes the PDF to w. Lines delimited by a
// repeated ** marker (or prefixed with #) render as bold headings; blank
// lines become vertical spacing.
func Render(doc Document, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AliasNbPages("")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, _ := pdf.GetPageSize()
	maxLineWidth := pageWidth - margin*2

	pdf.SetFooterFunc(func() {
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(150, 150, 150)
		footer := tr(fmt.Sprintf("Page %d of {nb} • Powered by WySider", pdf.PageNo()))
		pdf.Text(pageWidth/2-pdf.GetStringWidth(footer)/2, footerY, footer)
	})

	pdf.AddPage()
	y := margin

	// Branding header.
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(37, 99, 235)
	pdf.Text(margin, y, "WySider")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.Text(margin+45, y, "Visionary Strategy Architect")

	y += 10
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.5)
	pdf.Line(margin, y, pageWidth-margin, y)
	y += 15

	// Document title.
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	for _, line := range pdf.SplitText(tr(doc.Title), maxLineWidth) {
		pdf.Text(margin, y, line)
		y += 8
	}
	y += 5

	// Metadata line: author left, date right.
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Text(margin, y, tr("Architect: "+doc.Author))
	dateStr := doc.Date.Format("January 2, 2006")
	pdf.Text(pageWidth-margin-pdf.GetStringWidth(dateStr), y, dateStr)
	y += 15

	// Content body.
	for _, raw := range strings.Split(doc.Body, "\n") {
		heading := isHeading(raw)
		clean := cleanLine(raw)

		if y > breakAt {
			pdf.AddPage()
			y = margin
		}

		if heading {
			y += 4 // pre-heading spacing
			if y > breakAt {
				pdf.AddPage()
				y = margin
			}
			pdf.SetFont("Helvetica", "B", bodySize)
			pdf.SetTextColor(20, 20, 20)
		} else {
			pdf.SetFont("Helvetica", "", bodySize)
			pdf.SetTextColor(50, 50, 50)
		}

		if strings.TrimSpace(clean) == "" {
			y += lineHeight
			continue
		}

		for _, wrapped := range pdf.SplitText(tr(clean), maxLineWidth) {
			if y > breakAt {
				pdf.AddPage()
				y = margin
			}
			pdf.Text(margin, y, wrapped)
			y += lineHeight
		}
	}

	return pdf.Output(w)
}

func isHeading(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "**") ||
		strings.HasSuffix(trimmed, "**") ||
		strings.HasPrefix(trimmed, "#")
}

var headingMarker = regexp.MustCompile(`^#+\s*`)

func cleanLine(line string) string {
	return headingMarker.ReplaceAllString(strings.ReplaceAll(line, "**", ""), "")
}
