package ocr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"

	// Extra decoders so scanned page images in TIFF, BMP, or WebP
	// containers decode alongside the stdlib PNG/JPEG formats.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrNotEnabled is returned when OCR is requested but support was not
// compiled in. Rebuild with -tags ocr to enable it.
var ErrNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// ErrNoRenderer is returned by ExtractFromDocument when no page
// rasterizer is available (the fitz backend was not compiled in).
var ErrNoRenderer = errors.New("page rasterization unavailable; rebuild with -tags fitz")

// Renderer rasterizes document pages. The fitz backend satisfies this
// when compiled in; without it the engine cannot process whole
// documents, only raw images.
type Renderer interface {
	Render(path string, dpi float64, fn func(pageIndex int, img image.Image) error) error
}

// Config holds OCR engine settings.
type Config struct {
	// Language is the Tesseract language code ("eng", "eng+fra", ...).
	Language string

	// DPI is the rasterization resolution for document pages.
	// Higher values improve recognition at the cost of speed and
	// memory. The default of 150 is a corpus-tuned heuristic, not a
	// correctness guarantee.
	DPI float64

	// PageSegMode is Tesseract's page segmentation mode. Zero keeps
	// the engine default (automatic segmentation).
	PageSegMode int
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{Language: "eng", DPI: 150}
}

// Engine is the OCR subsystem. Availability is probed exactly once at
// construction and never changes afterward, so Available is safe for
// concurrent callers without locking.
type Engine struct {
	client    *Client
	renderer  Renderer
	config    Config
	available bool
}

// NewEngine constructs the engine, probing the OCR library once.
// renderer may be nil, in which case ExtractFromDocument reports
// ErrNoRenderer but ExtractFromImage still works on raw image bytes.
func NewEngine(renderer Renderer, config Config) *Engine {
	if config.Language == "" {
		config.Language = DefaultConfig().Language
	}
	if config.DPI <= 0 {
		config.DPI = DefaultConfig().DPI
	}

	e := &Engine{renderer: renderer, config: config}
	client, err := NewClient()
	if err != nil {
		return e
	}
	if config.Language != DefaultConfig().Language {
		if err := client.SetLanguage(config.Language); err != nil {
			client.Close()
			return e
		}
	}
	if config.PageSegMode != 0 {
		if err := client.SetPageSegMode(config.PageSegMode); err != nil {
			client.Close()
			return e
		}
	}
	e.client = client
	e.available = true
	return e
}

// Available reports whether the OCR library loaded. The flag is
// computed once at construction; it never re-probes and never fails.
func (e *Engine) Available() bool {
	return e.available
}

// Close releases OCR resources.
func (e *Engine) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

// ExtractFromImage decodes raw image bytes and runs recognition,
// returning trimmed text. It returns an error rather than fabricated
// text when the bytes do not decode or recognition fails, so callers
// can degrade one bad page without corrupting the document result.
func (e *Engine) ExtractFromImage(data []byte) (string, error) {
	if !e.available {
		return "", ErrNotEnabled
	}
	if _, _, err := image.Decode(bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}
	return e.client.RecognizeImage(data)
}

// ExtractFromDocument rasterizes every page of the document and runs
// recognition on each, joining page outputs with a blank line as the
// page-boundary marker. A page that fails recognition degrades to
// empty text; the page count returned covers all rasterized pages.
//
// When OCR support or the rasterizer is missing this returns an
// explicit error. It never returns placeholder text that could be
// mistaken for a genuine result.
func (e *Engine) ExtractFromDocument(path string) (string, int, error) {
	if !e.available {
		return "", 0, ErrNotEnabled
	}
	if e.renderer == nil {
		return "", 0, ErrNoRenderer
	}

	var pages []string
	err := e.renderer.Render(path, e.config.DPI, func(pageIndex int, img image.Image) error {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			pages = append(pages, "")
			return nil
		}
		pageText, rerr := e.client.RecognizeImage(buf.Bytes())
		if rerr != nil {
			// One bad page must not abort the whole document.
			pages = append(pages, "")
			return nil
		}
		pages = append(pages, pageText)
		return nil
	})
	if err != nil {
		return "", 0, fmt.Errorf("rasterizing document: %w", err)
	}

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
	return b.String(), len(pages), nil
}
