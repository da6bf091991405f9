package backend

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/tsawler/docpipe/model"
)

// ParseSpans converts MuPDF's positioned HTML output for one page into
// coordinate spans. MuPDF emits one <p> per text block with top/left
// and line-height in the style attribute, and nested elements carrying
// font-family and font-size. Only text-bearing blocks produce spans;
// graphic-only blocks have no <p> and are naturally skipped.
//
// MuPDF does not report block widths in this output, so span widths
// are estimated from the glyph count at roughly half an em per glyph.
// Positions and font data are exact.
func ParseSpans(pageIndex int, markup string) ([]model.TextSpan, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parsing page markup: %w", err)
	}

	var spans []model.TextSpan
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "p" {
			if span, ok := spanFromBlock(pageIndex, n); ok {
				spans = append(spans, span)
			}
			return // blocks do not nest
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return spans, nil
}

// spanFromBlock builds one span from a positioned <p> block.
func spanFromBlock(pageIndex int, n *html.Node) (model.TextSpan, bool) {
	style := parseStyle(attrValue(n, "style"))
	left := style.number("left")
	top := style.number("top")
	lineHeight := style.number("line-height")

	content := getTextContent(n)
	content = strings.TrimSpace(content)
	if content == "" {
		return model.TextSpan{}, false
	}

	fontName, fontSize := findFont(n)
	height := lineHeight
	if height == 0 {
		height = fontSize * 1.2
	}
	// Estimated: MuPDF's HTML output omits block widths.
	width := fontSize * 0.5 * float64(utf8.RuneCountInString(content))

	return model.TextSpan{
		Text:      content,
		BBox:      [4]float64{left, top, left + width, top + height},
		PageIndex: pageIndex,
		FontName:  fontName,
		FontSize:  fontSize,
	}, true
}

// findFont walks a block's children looking for the first element
// styled with font-family/font-size.
func findFont(n *html.Node) (name string, size float64) {
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			style := parseStyle(attrValue(n, "style"))
			if f, ok := style["font-family"]; ok {
				name = f
				size = style.number("font-size")
				return true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(n)
	return name, size
}

// styleMap holds parsed CSS declarations from a style attribute.
type styleMap map[string]string

// number returns the numeric value of a declaration, stripping a
// trailing unit suffix such as "pt" or "px". Missing or unparsable
// values yield zero.
func (s styleMap) number(key string) float64 {
	v, ok := s[key]
	if !ok {
		return 0
	}
	v = strings.TrimRightFunc(v, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != '-'
	})
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

// parseStyle splits a style attribute into declarations.
func parseStyle(style string) styleMap {
	m := make(styleMap)
	for _, decl := range strings.Split(style, ";") {
		key, value, found := strings.Cut(decl, ":")
		if !found {
			continue
		}
		m[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return m
}

// attrValue returns the value of the named attribute, or "".
func attrValue(n *html.Node, name string) string {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ""
}

// getTextContent concatenates all text nodes under n.
func getTextContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(getTextContent(c))
	}
	return b.String()
}
