package docpipe

import (
	"github.com/tsawler/docpipe/ocr"
)

// Options holds pipeline-level configuration.
type Options struct {
	// order is the default backend ordering for auto extraction.
	// Empty means registry registration order.
	order []string

	// scannedThreshold is the total stripped character count below
	// which a document is classified as scanned. The default of 50
	// is a tunable heuristic, not a correctness guarantee.
	scannedThreshold int

	// ocrConfig configures the OCR engine built by New.
	ocrConfig ocr.Config
}

// defaultOptions returns the default pipeline options.
func defaultOptions() Options {
	return Options{
		order:            nil, // registry order
		scannedThreshold: 50,
		ocrConfig:        ocr.DefaultConfig(),
	}
}

// clone creates a deep copy of Options.
func (o Options) clone() Options {
	newOpts := Options{
		scannedThreshold: o.scannedThreshold,
		ocrConfig:        o.ocrConfig,
	}
	if o.order != nil {
		newOpts.order = make([]string, len(o.order))
		copy(newOpts.order, o.order)
	}
	return newOpts
}
