//go:build fitz

package backend

import (
	"fmt"
	"image"

	fitz "github.com/gen2brain/go-fitz"

	"github.com/tsawler/docpipe/model"
	"github.com/tsawler/docpipe/text"
)

// Fitz extracts content through MuPDF. It is the structured backend:
// it produces per-page text, coordinate spans (parsed from MuPDF's
// positioned HTML output), document metadata, and rasterized page
// images for the OCR subsystem.
//
// Building this adapter requires cgo and the "fitz" build tag:
//
//	go build -tags fitz
type Fitz struct{}

// NewFitz returns the MuPDF-backed backend.
func NewFitz() (*Fitz, error) {
	return &Fitz{}, nil
}

// Name implements Backend.
func (f *Fitz) Name() string { return string(model.MethodFitz) }

// Capabilities implements Backend.
func (f *Fitz) Capabilities() Capability {
	return CapText | CapSpans | CapRender
}

// Extract implements Backend.
func (f *Fitz) Extract(path string, wantTables, wantCoordinates bool) (*model.Result, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, Classify(err)
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	if pageCount == 0 {
		return nil, fmt.Errorf("%w: document has no pages", ErrUnreadable)
	}

	result := &model.Result{
		Success:   true,
		PageCount: pageCount,
		Metadata:  map[string]any{},
	}
	for k, v := range doc.Metadata() {
		if v != "" {
			result.Metadata[k] = v
		}
	}

	pageTexts := make([]string, 0, pageCount)
	for i := 0; i < pageCount; i++ {
		pageText, perr := doc.Text(i)
		if perr != nil {
			pageTexts = append(pageTexts, "")
			result.Warnings = append(result.Warnings, model.PageWarning(i, "text extraction failed: %v", perr))
		} else {
			pageTexts = append(pageTexts, pageText)
		}

		if wantCoordinates {
			markup, herr := doc.HTML(i, false)
			if herr != nil {
				result.Warnings = append(result.Warnings, model.PageWarning(i, "span extraction failed: %v", herr))
				continue
			}
			spans, serr := ParseSpans(i, markup)
			if serr != nil {
				result.Warnings = append(result.Warnings, model.PageWarning(i, "span parse failed: %v", serr))
				continue
			}
			result.Coordinates = append(result.Coordinates, spans...)
		}
	}

	result.Text = text.JoinPages(pageTexts)
	if result.Text == "" {
		result.Warnings = append(result.Warnings, model.DocWarning("no text layer found; document may be scanned"))
	}
	return result, nil
}

// PageTexts implements Backend. This is the cheap text pass the
// scanned-document classifier measures.
func (f *Fitz) PageTexts(path string) ([]string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, Classify(err)
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	texts := make([]string, 0, pageCount)
	for i := 0; i < pageCount; i++ {
		pageText, perr := doc.Text(i)
		if perr != nil {
			texts = append(texts, "")
			continue
		}
		texts = append(texts, pageText)
	}
	return texts, nil
}

// Render rasterizes every page at the given DPI and invokes fn for
// each, in page order. It satisfies the OCR subsystem's renderer
// contract.
func (f *Fitz) Render(path string, dpi float64, fn func(pageIndex int, img image.Image) error) error {
	doc, err := fitz.New(path)
	if err != nil {
		return Classify(err)
	}
	defer doc.Close()

	for i := 0; i < doc.NumPage(); i++ {
		img, rerr := doc.ImageDPI(i, dpi)
		if rerr != nil {
			return fmt.Errorf("render page %d: %w", i+1, rerr)
		}
		if err := fn(i, img); err != nil {
			return err
		}
	}
	return nil
}

// Metadata returns the document information dictionary as reported by
// MuPDF (title, author, creator, producer, and friends).
func (f *Fitz) Metadata(path string) (map[string]string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, Classify(err)
	}
	defer doc.Close()
	return doc.Metadata(), nil
}
