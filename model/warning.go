package model

import (
	"fmt"
	"strings"
)

// Warning reports a non-fatal issue encountered during extraction,
// such as a page that could not be read or a backend that was skipped.
// Extraction succeeded despite the warning, but results may be partial.
type Warning struct {
	// Page is the zero-based page index the warning applies to,
	// or -1 when the warning concerns the whole document.
	Page    int
	Message string
}

func (w Warning) String() string {
	if w.Page >= 0 {
		return fmt.Sprintf("page %d: %s", w.Page+1, w.Message)
	}
	return w.Message
}

// FormatWarnings renders warnings as a single semicolon-separated
// string for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

// PageWarning builds a warning scoped to a single page.
func PageWarning(page int, format string, args ...any) Warning {
	return Warning{Page: page, Message: fmt.Sprintf(format, args...)}
}

// DocWarning builds a document-level warning.
func DocWarning(format string, args ...any) Warning {
	return Warning{Page: -1, Message: fmt.Sprintf(format, args...)}
}
