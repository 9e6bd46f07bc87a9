package document

import (
	"fmt"
	"html"
	"strings"
)

// Builder is the document-building collaborator the composer output is
// rendered through. Implementations own page setup, fonts and the final
// byte encoding; Render only decides what content goes where.
type Builder interface {
	AddTitle(text string)
	AddHeading(text string)
	AddParagraph(spans []Span)
	AddTable(headers []string, rows [][]string)
	AddBullet(line string)
	Bytes() ([]byte, error)
}

// Render walks the block sequence and drives the builder.
func Render(blocks []Block, b Builder) ([]byte, error) {
	for _, block := range blocks {
		switch v := block.(type) {
		case Title:
			b.AddTitle(v.Text)
		case Subtitle:
			b.AddHeading(v.Text)
		case PatientInfo:
			for _, line := range v.Lines {
				b.AddParagraph([]Span{{Text: line}})
			}
		case MealHeading:
			b.AddHeading(v.Text)
			b.AddParagraph([]Span{{Text: v.Instruction, Bold: true}})
		case Table:
			b.AddTable(v.Headers, v.Rows)
		case BulletList:
			for _, line := range v.Lines {
				b.AddBullet(line)
			}
		case Note:
			b.AddParagraph(v.Spans)
		case TotalsTable:
			b.AddTable(v.Headers, [][]string{v.Values})
		case AdviceList:
			for _, spans := range v.Items {
				b.AddParagraph(spans)
			}
		default:
			return nil, fmt.Errorf("unknown block type %T", block)
		}
	}
	return b.Bytes()
}

// HTMLBuilder emits a single self-contained Word-compatible HTML
// document. Word opens it directly when streamed with a .doc filename,
// which keeps binary OOXML writing out of this service.
type HTMLBuilder struct {
	body strings.Builder
}

// NewHTMLBuilder returns an empty builder.
func NewHTMLBuilder() *HTMLBuilder { return &HTMLBuilder{} }

// ContentType is the media type the export endpoint serves.
func (b *HTMLBuilder) ContentType() string { return "application/msword" }

func (b *HTMLBuilder) AddTitle(text string) {
	fmt.Fprintf(&b.body, "<h1 style=\"text-align:center\">%s</h1>\n", html.EscapeString(text))
}

func (b *HTMLBuilder) AddHeading(text string) {
	fmt.Fprintf(&b.body, "<h2>%s</h2>\n", html.EscapeString(text))
}

func (b *HTMLBuilder) AddParagraph(spans []Span) {
	b.body.WriteString("<p>")
	for _, s := range spans {
		if s.Bold {
			fmt.Fprintf(&b.body, "<b>%s</b>", html.EscapeString(s.Text))
		} else {
			b.body.WriteString(html.EscapeString(s.Text))
		}
	}
	b.body.WriteString("</p>\n")
}

func (b *HTMLBuilder) AddTable(headers []string, rows [][]string) {
	b.body.WriteString("<table border=\"1\" cellspacing=\"0\" cellpadding=\"4\" style=\"border-collapse:collapse\">\n<tr>")
	for _, h := range headers {
		fmt.Fprintf(&b.body, "<th style=\"background:#e7e6e6\">%s</th>", html.EscapeString(h))
	}
	b.body.WriteString("</tr>\n")
	for _, row := range rows {
		b.body.WriteString("<tr>")
		for _, cell := range row {
			fmt.Fprintf(&b.body, "<td>%s</td>", html.EscapeString(cell))
		}
		b.body.WriteString("</tr>\n")
	}
	b.body.WriteString("</table>\n")
}

func (b *HTMLBuilder) AddBullet(line string) {
	fmt.Fprintf(&b.body, "<ul><li>%s</li></ul>\n", html.EscapeString(line))
}

func (b *HTMLBuilder) Bytes() ([]byte, error) {
	var doc strings.Builder
	doc.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\">")
	doc.WriteString("<style>body{font-family:Calibri,sans-serif;font-size:11pt}</style>")
	doc.WriteString("</head><body>\n")
	doc.WriteString(b.body.String())
	doc.WriteString("</body></html>\n")
	return []byte(doc.String()), nil
}
