//go:build !fitz

package backend

import (
	"image"

	"github.com/tsawler/docpipe/model"
)

// Fitz is the stub used when the "fitz" build tag is not set. MuPDF
// requires cgo, so pure-Go builds get this placeholder instead; every
// operation reports ErrUnavailable and NewFitz fails, which keeps the
// backend out of the registry entirely.
//
// To enable the MuPDF backend, rebuild with:
//
//	go build -tags fitz
type Fitz struct{}

// NewFitz returns ErrUnavailable in builds without the fitz tag.
func NewFitz() (*Fitz, error) {
	return nil, ErrUnavailable
}

// Name implements Backend.
func (f *Fitz) Name() string { return string(model.MethodFitz) }

// Capabilities implements Backend.
func (f *Fitz) Capabilities() Capability { return 0 }

// Extract implements Backend.
func (f *Fitz) Extract(path string, wantTables, wantCoordinates bool) (*model.Result, error) {
	return nil, ErrUnavailable
}

// PageTexts implements Backend.
func (f *Fitz) PageTexts(path string) ([]string, error) {
	return nil, ErrUnavailable
}

// Render reports the rasterizer unavailable.
func (f *Fitz) Render(path string, dpi float64, fn func(pageIndex int, img image.Image) error) error {
	return ErrUnavailable
}

// Metadata reports the backend unavailable.
func (f *Fitz) Metadata(path string) (map[string]string, error) {
	return nil, ErrUnavailable
}
