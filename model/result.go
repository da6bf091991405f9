package model

// Method identifies which extraction backend produced a result.
type Method string

const (
	// MethodFitz is the MuPDF-backed structured backend.
	MethodFitz Method = "fitz"
	// MethodNative is the pure-Go table-aware backend.
	MethodNative Method = "native"
	// MethodOCR is optical character recognition on rasterized pages.
	MethodOCR Method = "ocr"
)

// TextSpan is a coordinate-tagged run of text on a page.
// BBox is [x0, y0, x1, y1] in PDF points.
type TextSpan struct {
	Text      string
	BBox      [4]float64
	PageIndex int
	FontName  string
	FontSize  float64
}

// Table holds one detected table. Rows are in top-to-bottom order,
// cells left-to-right. Tables from different pages are never merged.
type Table struct {
	PageIndex int
	Rows      [][]string
}

// Result is the outcome of one extraction request.
//
// Invariants: Success implies ErrorMessage is empty; failure implies
// Text is empty; Method is set only on success; Tables and Coordinates
// are populated only when the request asked for them.
type Result struct {
	Success        bool
	Text           string
	Method         Method
	PageCount      int
	Tables         []Table
	Coordinates    []TextSpan
	Metadata       map[string]any
	ProcessingTime float64 // seconds
	ErrorMessage   string
	Warnings       []Warning
}

// Failed builds a failed Result with the given error message.
// The returned result satisfies the failure invariants: empty text,
// no method, no tables or coordinates.
func Failed(msg string) *Result {
	return &Result{
		Success:      false,
		ErrorMessage: msg,
		Metadata:     map[string]any{},
	}
}

// ToMap returns a plain-mapping view of the result suitable for JSON
// encoding or structured logging. Keys are stable snake_case strings.
func (r *Result) ToMap() map[string]any {
	m := map[string]any{
		"success":                 r.Success,
		"text":                    r.Text,
		"page_count":              r.PageCount,
		"processing_time_seconds": r.ProcessingTime,
		"error_message":           r.ErrorMessage,
		"metadata":                r.Metadata,
	}

	if r.Method != "" {
		m["method"] = string(r.Method)
	} else {
		m["method"] = nil
	}

	tables := make([][][]string, 0, len(r.Tables))
	for _, t := range r.Tables {
		tables = append(tables, t.Rows)
	}
	m["tables"] = tables

	coords := make([]map[string]any, 0, len(r.Coordinates))
	for _, s := range r.Coordinates {
		coords = append(coords, map[string]any{
			"text":      s.Text,
			"bbox":      []float64{s.BBox[0], s.BBox[1], s.BBox[2], s.BBox[3]},
			"page":      s.PageIndex,
			"font_name": s.FontName,
			"font_size": s.FontSize,
		})
	}
	m["coordinates"] = coords

	if len(r.Warnings) > 0 {
		m["warnings"] = FormatWarnings(r.Warnings)
	}

	return m
}

// DocumentInfo holds document properties read outside the main
// extraction path (title, author, and so on).
type DocumentInfo struct {
	Title     string
	Author    string
	Subject   string
	Creator   string
	Producer  string
	PageCount int
	Encrypted bool
}
