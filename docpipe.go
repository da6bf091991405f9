// Package docpipe extracts text, tables, and metadata from PDF
// documents through a chain of backends with automatic fallback.
//
// Basic usage:
//
//	res := docpipe.Extract("document.pdf")
//	if !res.Success {
//	    log.Println("extraction failed:", res.ErrorMessage)
//	}
//	fmt.Println(res.Text)
//
// With a configured pipeline:
//
//	pipe := docpipe.New().WithScannedThreshold(100)
//	res := pipe.Extract(docpipe.Request{
//	    Path:          "report.pdf",
//	    ExtractTables: true,
//	})
//
// The pipeline tries each available backend in turn until one
// produces text. Documents with no usable text layer are routed to
// OCR when that build is enabled. The lower-level backend, ocr, and
// tables packages are available for direct use.
package docpipe

import (
	"github.com/tsawler/docpipe/model"
)

// Extract runs the document through a default pipeline with automatic
// method selection. Failures are reported in the result, never as a
// panic or error, so batch callers can process a directory without
// wrapping each call.
//
// Example:
//
//	res := docpipe.Extract("document.pdf")
func Extract(path string) *model.Result {
	return New().Extract(Request{Path: path})
}

// ExtractWithTables is like Extract but also asks for table
// detection, preferring backends that can see table geometry.
func ExtractWithTables(path string) *model.Result {
	return New().Extract(Request{Path: path, ExtractTables: true})
}
