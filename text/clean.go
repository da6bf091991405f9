package text

import (
	"regexp"
	"strings"
)

var (
	horizontalWS  = regexp.MustCompile(`[ \t\f\v]+`)
	spaceAroundNL = regexp.MustCompile(` ?\n ?`)
	manyNewlines  = regexp.MustCompile(`\n{3,}`)
)

// Clean normalizes whitespace in extracted text:
//
//   - runs of horizontal whitespace collapse to a single space
//   - spaces adjacent to newlines are removed
//   - three or more consecutive newlines collapse to exactly two,
//     preserving paragraph boundaries
//   - leading and trailing whitespace is trimmed
//
// Clean is idempotent: Clean(Clean(s)) == Clean(s) for all s.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = horizontalWS.ReplaceAllString(s, " ")
	s = spaceAroundNL.ReplaceAllString(s, "\n")
	s = manyNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// JoinPages joins per-page text with a blank line between pages so
// paragraph and page boundaries survive for downstream chunking.
// Pages that produced no text are skipped rather than emitting empty
// separators.
func JoinPages(pages []string) string {
	var b strings.Builder
	for _, p := range pages {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(p)
	}
	return b.String()
}
