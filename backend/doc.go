// Package backend provides the extraction backend adapters and the
// capability registry the pipeline selects them from.
//
// Each adapter is a thin translator around one PDF library: it exposes
// the uniform Extract contract and normalizes that library's failure
// modes into the package's error taxonomy. Library-specific error
// types never leak upward.
//
// Two adapters exist:
//
//   - fitz: MuPDF via gen2brain/go-fitz. Fast text extraction,
//     coordinate spans, page rasterization, and document metadata.
//     Requires cgo and the "fitz" build tag; without the tag a stub
//     reports the backend unavailable.
//   - native: pure Go via ledongthuc/pdf. Always available. Provides
//     text, coordinate spans, and geometric table detection.
package backend
