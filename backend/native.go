package backend

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/docpipe/model"
	"github.com/tsawler/docpipe/tables"
	"github.com/tsawler/docpipe/text"
)

// Native extracts text, coordinate spans, and tables using the pure-Go
// ledongthuc/pdf library. It has no system dependencies, so it is
// always registered and serves as the fallback of last resort as well
// as the table-aware backend: tables are detected geometrically from
// the coordinate spans the library reports.
type Native struct {
	detector *tables.Detector
}

// NewNative returns a native backend with the default table detector.
func NewNative() *Native {
	return &Native{detector: tables.NewDetector(tables.DefaultConfig())}
}

// Name implements Backend.
func (n *Native) Name() string { return string(model.MethodNative) }

// Capabilities implements Backend.
func (n *Native) Capabilities() Capability {
	return CapText | CapSpans | CapTables
}

// Extract implements Backend.
func (n *Native) Extract(path string, wantTables, wantCoordinates bool) (res *model.Result, err error) {
	// The underlying parser panics on some malformed cross-reference
	// tables; translate that into the unreadable taxonomy instead of
	// letting it escape the adapter boundary.
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = Classify(fmt.Errorf("pdf parse panic: %v", r))
		}
	}()

	if err := checkMagic(path); err != nil {
		return nil, err
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, Classify(err)
	}
	defer f.Close()

	pageCount := reader.NumPage()
	if pageCount == 0 {
		return nil, fmt.Errorf("%w: document has no pages", ErrUnreadable)
	}

	result := &model.Result{
		Success:   true,
		PageCount: pageCount,
		Metadata:  map[string]any{},
	}

	pageTexts := make([]string, 0, pageCount)
	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pageTexts = append(pageTexts, "")
			result.Warnings = append(result.Warnings, model.PageWarning(i-1, "page object missing"))
			continue
		}

		pageText, perr := extractPageText(page)
		if perr != nil {
			// Degrade the page to empty text rather than aborting
			// the document.
			pageTexts = append(pageTexts, "")
			result.Warnings = append(result.Warnings, model.PageWarning(i-1, "text extraction failed: %v", perr))
		} else {
			pageTexts = append(pageTexts, pageText)
		}

		if wantTables || wantCoordinates {
			spans := spansFromContent(i-1, page.Content().Text)
			if wantCoordinates {
				result.Coordinates = append(result.Coordinates, spans...)
			}
			if wantTables {
				for _, rows := range n.detector.Detect(spans) {
					result.Tables = append(result.Tables, model.Table{PageIndex: i - 1, Rows: rows})
				}
			}
		}
	}

	result.Text = text.JoinPages(pageTexts)
	if result.Text == "" {
		result.Warnings = append(result.Warnings, model.DocWarning("no text layer found; document may be scanned"))
	}
	return result, nil
}

// PageTexts implements Backend.
func (n *Native) PageTexts(path string) (texts []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			texts = nil
			err = Classify(fmt.Errorf("pdf parse panic: %v", r))
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, Classify(err)
	}
	defer f.Close()

	pageCount := reader.NumPage()
	texts = make([]string, 0, pageCount)
	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			texts = append(texts, "")
			continue
		}
		pageText, perr := page.GetPlainText(nil)
		if perr != nil {
			texts = append(texts, "")
			continue
		}
		texts = append(texts, pageText)
	}
	return texts, nil
}

// extractPageText pulls plain text for one page, recovering parser
// panics into a per-page error.
func extractPageText(page pdf.Page) (s string, err error) {
	defer func() {
		if r := recover(); r != nil {
			s = ""
			err = fmt.Errorf("page content panic: %v", r)
		}
	}()
	return page.GetPlainText(nil)
}

// spansFromContent converts the library's styled text runs into
// coordinate spans. Runs that carry no visible text are skipped.
func spansFromContent(pageIndex int, runs []pdf.Text) []model.TextSpan {
	spans := make([]model.TextSpan, 0, len(runs))
	for _, t := range runs {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		spans = append(spans, model.TextSpan{
			Text:      t.S,
			BBox:      [4]float64{t.X, t.Y, t.X + t.W, t.Y + t.FontSize},
			PageIndex: pageIndex,
			FontName:  t.Font,
			FontSize:  t.FontSize,
		})
	}
	return spans
}

// checkMagic verifies the file starts with the %PDF- header before
// handing it to the parser, so an empty or mislabeled file reports a
// clean ErrUnreadable instead of a deep parser error.
func checkMagic(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return Classify(err)
	}
	defer f.Close()

	magic := make([]byte, 5)
	if _, err := io.ReadFull(f, magic); err != nil {
		return fmt.Errorf("%w: file too short", ErrUnreadable)
	}
	if string(magic) != "%PDF-" {
		return fmt.Errorf("%w: missing %%PDF header", ErrUnreadable)
	}
	return nil
}
