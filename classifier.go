package docpipe

import (
	"strings"
	"unicode/utf8"
)

// isScanned reports whether the document looks like a scan: page
// images with no usable text layer. The check is a cheap text-density
// probe, not an image analysis. It deliberately answers false when
// OCR cannot run, since classifying a document as scanned would then
// route it to a dead end; the regular backend chain still gets a
// chance at whatever text exists.
func (p *Pipeline) isScanned(path string) bool {
	if p.ocr == nil || !p.ocr.Available() {
		return false
	}
	if p.probe == nil {
		return false
	}

	pages, err := p.probe.PageTexts(path)
	if err != nil {
		// Unreadable or encrypted documents are not "scanned"; the
		// backend chain will surface the real error.
		return false
	}

	total := 0
	for _, page := range pages {
		total += utf8.RuneCountInString(strings.TrimSpace(page))
	}
	return total < p.options.scannedThreshold
}
