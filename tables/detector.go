package tables

import (
	"sort"
	"strings"

	"github.com/tsawler/docpipe/model"
)

// Config holds detector tuning parameters.
type Config struct {
	// MinRows is the minimum number of aligned rows for a valid table.
	MinRows int

	// MinCols is the minimum number of columns for a valid table.
	MinCols int

	// RowTolerance is the vertical distance (points) within which
	// spans are considered part of the same row.
	RowTolerance float64

	// ColTolerance is the horizontal distance (points) within which
	// span left edges are considered aligned to the same column.
	ColTolerance float64

	// MinColumnFill is the fraction of rows that must populate a
	// column for it to count toward MinCols.
	MinColumnFill float64
}

// DefaultConfig returns the default detector configuration.
func DefaultConfig() Config {
	return Config{
		MinRows:       2,
		MinCols:       2,
		RowTolerance:  3.0,
		ColTolerance:  8.0,
		MinColumnFill: 0.6,
	}
}

// Detector finds tables in the spans of a single page.
type Detector struct {
	config Config
}

// NewDetector creates a detector with the given configuration.
// Zero-valued fields fall back to the defaults.
func NewDetector(config Config) *Detector {
	def := DefaultConfig()
	if config.MinRows <= 0 {
		config.MinRows = def.MinRows
	}
	if config.MinCols <= 0 {
		config.MinCols = def.MinCols
	}
	if config.RowTolerance <= 0 {
		config.RowTolerance = def.RowTolerance
	}
	if config.ColTolerance <= 0 {
		config.ColTolerance = def.ColTolerance
	}
	if config.MinColumnFill <= 0 {
		config.MinColumnFill = def.MinColumnFill
	}
	return &Detector{config: config}
}

// row is a horizontal band of spans sharing a baseline.
type row struct {
	y     float64
	spans []model.TextSpan
}

// Detect returns the tables found on one page, top to bottom. Each
// table is a list of rows of cell strings. Spans must all belong to
// the same page; the caller tracks page indices.
func (d *Detector) Detect(spans []model.TextSpan) [][][]string {
	if len(spans) == 0 {
		return nil
	}

	rows := d.groupRows(spans)

	// Candidate regions are maximal runs of consecutive rows that
	// each hold at least MinCols spans.
	var tables [][][]string
	start := -1
	for i := 0; i <= len(rows); i++ {
		multi := i < len(rows) && len(rows[i].spans) >= d.config.MinCols
		if multi && start < 0 {
			start = i
		}
		if !multi && start >= 0 {
			if table := d.buildTable(rows[start:i]); table != nil {
				tables = append(tables, table)
			}
			start = -1
		}
	}
	return tables
}

// groupRows clusters spans into rows by their top edge, ordered top
// to bottom. PDF coordinates grow upward, so larger Y sorts first.
func (d *Detector) groupRows(spans []model.TextSpan) []row {
	sorted := make([]model.TextSpan, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BBox[1] > sorted[j].BBox[1]
	})

	var rows []row
	for _, s := range sorted {
		y := s.BBox[1]
		if len(rows) > 0 && rows[len(rows)-1].y-y <= d.config.RowTolerance {
			rows[len(rows)-1].spans = append(rows[len(rows)-1].spans, s)
			continue
		}
		rows = append(rows, row{y: y, spans: []model.TextSpan{s}})
	}

	// Left-to-right within each row.
	for i := range rows {
		sort.SliceStable(rows[i].spans, func(a, b int) bool {
			return rows[i].spans[a].BBox[0] < rows[i].spans[b].BBox[0]
		})
	}
	return rows
}

// buildTable validates a candidate region and assembles its cell grid.
// Returns nil when the region does not look tabular.
func (d *Detector) buildTable(rows []row) [][]string {
	if len(rows) < d.config.MinRows {
		return nil
	}

	cols := d.columnCenters(rows)
	if len(cols) < d.config.MinCols {
		return nil
	}

	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells := make([]string, len(cols))
		for _, s := range r.spans {
			c := d.columnFor(s.BBox[0], cols)
			if cells[c] != "" {
				cells[c] += " "
			}
			cells[c] += strings.TrimSpace(s.Text)
		}
		table = append(table, cells)
	}
	return table
}

// columnCenters clusters span left edges across the region and keeps
// clusters populated in enough rows to count as real columns.
func (d *Detector) columnCenters(rows []row) []float64 {
	var lefts []float64
	for _, r := range rows {
		for _, s := range r.spans {
			lefts = append(lefts, s.BBox[0])
		}
	}
	sort.Float64s(lefts)
	centers := clusterValues(lefts, d.config.ColTolerance)

	// Count how many rows populate each cluster.
	minRows := int(d.config.MinColumnFill * float64(len(rows)))
	if minRows < 1 {
		minRows = 1
	}
	kept := centers[:0]
	for _, c := range centers {
		populated := 0
		for _, r := range rows {
			for _, s := range r.spans {
				if abs(s.BBox[0]-c) <= d.config.ColTolerance {
					populated++
					break
				}
			}
		}
		if populated >= minRows {
			kept = append(kept, c)
		}
	}
	return kept
}

// columnFor returns the index of the nearest column center.
func (d *Detector) columnFor(x float64, cols []float64) int {
	best := 0
	for i, c := range cols {
		if abs(x-c) < abs(x-cols[best]) {
			best = i
		}
	}
	return best
}

// clusterValues merges sorted values closer than tolerance, averaging
// values into the running cluster center.
func clusterValues(values []float64, tolerance float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	clustered := []float64{values[0]}
	for _, v := range values[1:] {
		last := clustered[len(clustered)-1]
		if v-last > tolerance {
			clustered = append(clustered, v)
		} else {
			clustered[len(clustered)-1] = (last + v) / 2
		}
	}
	return clustered
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
