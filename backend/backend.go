package backend

import (
	"github.com/tsawler/docpipe/model"
)

// Capability describes what a backend can produce.
type Capability uint8

const (
	// CapText indicates plain per-page text extraction.
	CapText Capability = 1 << iota
	// CapTables indicates table detection.
	CapTables
	// CapSpans indicates coordinate-tagged text spans.
	CapSpans
	// CapRender indicates page rasterization (used by OCR).
	CapRender
)

// Has reports whether c includes all capabilities in want.
func (c Capability) Has(want Capability) bool {
	return c&want == want
}

// Backend is the uniform capability surface the pipeline drives.
// Implementations must be safe for concurrent use; each call opens and
// closes the document itself, holding no state between calls.
type Backend interface {
	// Name returns the backend identifier used in requests and results.
	Name() string

	// Capabilities returns what this backend can produce.
	Capabilities() Capability

	// Extract runs a full extraction pass over the document.
	// On success the returned result has Success set, pages joined
	// with a blank-line separator, and tables/coordinates populated
	// only when requested. On failure the error wraps one of the
	// package sentinels.
	Extract(path string, wantTables, wantCoordinates bool) (*model.Result, error)

	// PageTexts is the cheapest available text pass: raw per-page
	// text with no layout work. The scanned-document classifier uses
	// it to measure text density.
	PageTexts(path string) ([]string, error)
}

// Registry maps backend identifiers to adapters. It is resolved once
// at startup: adapters whose backing library is unavailable are never
// registered, so callers can treat presence as availability.
type Registry struct {
	backends map[string]Backend
	order    []string
}

// NewRegistry builds a registry containing every backend whose
// library loaded. The fitz backend registers first when available
// since it is the preferred default; the native backend always
// registers.
func NewRegistry() *Registry {
	r := &Registry{backends: make(map[string]Backend)}
	if f, err := NewFitz(); err == nil {
		r.Register(f)
	}
	r.Register(NewNative())
	return r
}

// NewEmptyRegistry builds a registry with no backends registered.
// Callers provide their own set through Register.
func NewEmptyRegistry() *Registry {
	return &Registry{backends: make(map[string]Backend)}
}

// Register adds a backend, replacing any previous one with the same name.
func (r *Registry) Register(b Backend) {
	if _, exists := r.backends[b.Name()]; !exists {
		r.order = append(r.order, b.Name())
	}
	r.backends[b.Name()] = b
}

// Get returns the backend with the given name, or nil.
func (r *Registry) Get(name string) Backend {
	return r.backends[name]
}

// List returns registered backend names in registration order.
func (r *Registry) List() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
