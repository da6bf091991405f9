// Package tables detects tables geometrically from coordinate-tagged
// text spans. It needs no graphical line information: multi-column
// alignment across consecutive rows is treated as evidence of tabular
// layout, similar to whitespace-based detection in desktop extractors.
package tables
