package docpipe

import (
	"fmt"
	"time"

	"github.com/tsawler/docpipe/backend"
	"github.com/tsawler/docpipe/model"
	"github.com/tsawler/docpipe/ocr"
	"github.com/tsawler/docpipe/text"
)

// MethodAuto lets the pipeline choose the extraction method itself,
// classifying the document and walking the backend chain until one
// produces text.
const MethodAuto = "auto"

// ProgressFunc receives coarse progress updates during extraction.
// pct runs from 0 to 100; msg describes the current stage.
type ProgressFunc func(pct int, msg string)

// OCREngine is the OCR capability the pipeline depends on. The
// concrete implementation is ocr.Engine; tests substitute their own.
type OCREngine interface {
	// Available reports whether OCR can actually run.
	Available() bool
	// ExtractFromDocument renders and recognizes every page of the
	// document, returning the combined text and the page count.
	ExtractFromDocument(path string) (string, int, error)
}

// Request describes a single extraction job.
type Request struct {
	// Path is the document to extract.
	Path string

	// Method forces a specific backend ("fitz", "native", "ocr").
	// Empty or "auto" lets the pipeline decide.
	Method string

	// ExtractTables asks for table detection. Backends that can
	// detect tables are tried before those that cannot.
	ExtractTables bool

	// IncludeCoordinates asks for positioned text spans. Backends
	// that report span geometry are tried first.
	IncludeCoordinates bool

	// Progress, when non-nil, receives stage updates.
	Progress ProgressFunc
}

// Pipeline runs documents through a chain of extraction backends,
// falling back from one to the next until one succeeds. A Pipeline
// is safe for concurrent use once configured.
type Pipeline struct {
	registry *backend.Registry
	ocr      OCREngine
	probe    backend.Backend
	options  Options
}

// New creates a Pipeline with every backend the build makes
// available, and an OCR engine wired to the structured backend's
// renderer when one exists.
func New() *Pipeline {
	p := &Pipeline{
		registry: backend.NewRegistry(),
		options:  defaultOptions(),
	}
	p.probe = p.textProbe()

	var renderer ocr.Renderer
	if p.probe != nil && p.probe.Capabilities().Has(backend.CapRender) {
		if r, ok := p.probe.(ocr.Renderer); ok {
			renderer = r
		}
	}
	p.ocr = ocr.NewEngine(renderer, p.options.ocrConfig)
	return p
}

// textProbe returns the cheapest backend able to read page text,
// used for scanned-document classification.
func (p *Pipeline) textProbe() backend.Backend {
	for _, name := range p.registry.List() {
		if b := p.registry.Get(name); b != nil && b.Capabilities().Has(backend.CapText) {
			return b
		}
	}
	return nil
}

// clone creates a copy of the Pipeline for fluent configuration.
func (p *Pipeline) clone() *Pipeline {
	return &Pipeline{
		registry: p.registry,
		ocr:      p.ocr,
		probe:    p.probe,
		options:  p.options.clone(),
	}
}

// WithBackends returns a Pipeline using exactly the given backends,
// in the given order. The probe backend is re-derived from the new
// set. Intended for tests and advanced wiring.
func (p *Pipeline) WithBackends(backends ...backend.Backend) *Pipeline {
	newP := p.clone()
	newP.registry = backend.NewEmptyRegistry()
	for _, b := range backends {
		newP.registry.Register(b)
	}
	newP.options.order = nil
	newP.probe = newP.textProbe()
	return newP
}

// WithOCR returns a Pipeline using the given OCR engine.
func (p *Pipeline) WithOCR(engine OCREngine) *Pipeline {
	newP := p.clone()
	newP.ocr = engine
	return newP
}

// WithOrder returns a Pipeline that tries backends in the given
// order during auto extraction. Unknown names are skipped.
func (p *Pipeline) WithOrder(names ...string) *Pipeline {
	newP := p.clone()
	newP.options.order = append([]string(nil), names...)
	return newP
}

// WithScannedThreshold returns a Pipeline that classifies a document
// as scanned when its total stripped text is shorter than chars.
func (p *Pipeline) WithScannedThreshold(chars int) *Pipeline {
	newP := p.clone()
	newP.options.scannedThreshold = chars
	return newP
}

// Extract runs the document at req.Path through the pipeline and
// returns a Result. Extract never returns an error: failures are
// reported through Result.Success and Result.ErrorMessage so a batch
// caller can keep going.
func (p *Pipeline) Extract(req Request) *model.Result {
	start := time.Now()
	report := func(pct int, msg string) {
		if req.Progress != nil {
			req.Progress(pct, msg)
		}
	}
	finish := func(res *model.Result) *model.Result {
		res.ProcessingTime = time.Since(start).Seconds()
		report(100, "extraction complete")
		return res
	}

	report(0, "starting extraction")

	method := req.Method
	if method == "" {
		method = MethodAuto
	}

	if method == string(model.MethodOCR) {
		report(10, "running OCR")
		return finish(p.runOCR(req.Path))
	}
	if method == MethodAuto && p.isScanned(req.Path) {
		report(10, "scanned document detected, running OCR")
		return finish(p.runOCR(req.Path))
	}

	chain := p.chain(req, method)
	if len(chain) == 0 {
		return finish(model.Failed("all extraction methods failed: no backend available"))
	}

	var warnings []model.Warning
	for i, b := range chain {
		report(10+80*i/len(chain), fmt.Sprintf("attempting %s extraction", b.Name()))

		last := i == len(chain)-1
		res, err := p.attempt(b, req, last)
		if err == nil && res != nil {
			res.Success = true
			res.Method = model.Method(b.Name())
			res.Text = text.Clean(res.Text)
			res.Warnings = append(warnings, res.Warnings...)
			return finish(res)
		}

		if last {
			failed := model.Failed(fmt.Sprintf("%s extraction failed: %v", b.Name(), err))
			failed.Warnings = warnings
			return finish(failed)
		}
		warnings = append(warnings, model.DocWarning("%s extraction failed: %v", b.Name(), err))
	}

	failed := model.Failed("all extraction methods failed")
	failed.Warnings = warnings
	return finish(failed)
}

// attempt runs one backend. Panics from any backend except the last
// in the chain are converted to errors so the fallback can continue;
// a panic in the last backend propagates to the caller.
func (p *Pipeline) attempt(b backend.Backend, req Request, last bool) (res *model.Result, err error) {
	if !last {
		defer func() {
			if r := recover(); r != nil {
				res = nil
				err = fmt.Errorf("%s backend panicked: %v", b.Name(), r)
			}
		}()
	}
	return b.Extract(req.Path, req.ExtractTables, req.IncludeCoordinates)
}

// chain resolves the ordered list of backends to try. A forced
// method yields a single-element chain. In auto mode the configured
// order applies, then backends able to satisfy the request's table
// or coordinate needs are moved to the front, preserving relative
// order within each group.
func (p *Pipeline) chain(req Request, method string) []backend.Backend {
	if method != MethodAuto {
		if b := p.registry.Get(method); b != nil {
			return []backend.Backend{b}
		}
		return nil
	}

	names := p.options.order
	if len(names) == 0 {
		names = p.registry.List()
	}
	var chain []backend.Backend
	for _, name := range names {
		if b := p.registry.Get(name); b != nil {
			chain = append(chain, b)
		}
	}

	switch {
	case req.ExtractTables:
		chain = preferCapability(chain, backend.CapTables)
	case req.IncludeCoordinates:
		chain = preferCapability(chain, backend.CapSpans)
	}
	return chain
}

// preferCapability stable-partitions the chain so backends with the
// capability come before those without it.
func preferCapability(chain []backend.Backend, want backend.Capability) []backend.Backend {
	ordered := make([]backend.Backend, 0, len(chain))
	for _, b := range chain {
		if b.Capabilities().Has(want) {
			ordered = append(ordered, b)
		}
	}
	for _, b := range chain {
		if !b.Capabilities().Has(want) {
			ordered = append(ordered, b)
		}
	}
	return ordered
}

// runOCR performs full-document OCR and wraps the output in a
// Result.
func (p *Pipeline) runOCR(path string) *model.Result {
	if p.ocr == nil || !p.ocr.Available() {
		return model.Failed("ocr extraction failed: " + ocr.ErrNotEnabled.Error())
	}
	recognized, pages, err := p.ocr.ExtractFromDocument(path)
	if err != nil {
		return model.Failed(fmt.Sprintf("ocr extraction failed: %v", err))
	}
	return &model.Result{
		Success:   true,
		Text:      text.Clean(recognized),
		Method:    model.MethodOCR,
		PageCount: pages,
		Metadata:  map[string]any{},
	}
}
