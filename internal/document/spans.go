package document

import "strings"

// Span is a run of text with a single style.
type Span struct {
	Text string
	Bold bool
}

// SplitBoldSpans tokenizes **-delimited bold markup into ordered spans.
// Delimiters alternate: text between a matched pair is bold, and an
// unterminated opener keeps the rest of the line bold (the behavior of
// splitting on ** and bolding odd segments). Empty runs are dropped.
func SplitBoldSpans(s string) []Span {
	var spans []Span
	bold := false
	for {
		i := strings.Index(s, "**")
		if i < 0 {
			break
		}
		if i > 0 {
			spans = append(spans, Span{Text: s[:i], Bold: bold})
		}
		s = s[i+2:]
		bold = !bold
	}
	if s != "" {
		spans = append(spans, Span{Text: s, Bold: bold})
	}
	return spans
}
