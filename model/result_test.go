package model

import (
	"testing"
)

func TestFailed(t *testing.T) {
	res := Failed("could not read document")

	if res.Success {
		t.Error("failed result reports success")
	}
	if res.ErrorMessage != "could not read document" {
		t.Errorf("ErrorMessage = %q", res.ErrorMessage)
	}
	if res.Text != "" {
		t.Errorf("failed result has text %q", res.Text)
	}
	if res.Method != "" {
		t.Errorf("failed result has method %q", res.Method)
	}
	if len(res.Tables) != 0 || len(res.Coordinates) != 0 {
		t.Error("failed result carries tables or coordinates")
	}
}

func TestToMapSuccess(t *testing.T) {
	res := &Result{
		Success:        true,
		Text:           "hello",
		Method:         MethodNative,
		PageCount:      2,
		ProcessingTime: 0.25,
		Metadata:       map[string]any{"title": "Report"},
		Tables: []Table{
			{PageIndex: 0, Rows: [][]string{{"a", "b"}, {"c", "d"}}},
		},
		Coordinates: []TextSpan{
			{Text: "hello", BBox: [4]float64{72, 700, 120, 712}, PageIndex: 0, FontName: "F1", FontSize: 12},
		},
	}

	m := res.ToMap()

	if m["success"] != true {
		t.Error("success key wrong")
	}
	if m["text"] != "hello" {
		t.Errorf("text = %v", m["text"])
	}
	if m["method"] != "native" {
		t.Errorf("method = %v, want native", m["method"])
	}
	if m["page_count"] != 2 {
		t.Errorf("page_count = %v", m["page_count"])
	}
	if m["processing_time_seconds"] != 0.25 {
		t.Errorf("processing_time_seconds = %v", m["processing_time_seconds"])
	}

	tables, ok := m["tables"].([][][]string)
	if !ok || len(tables) != 1 || len(tables[0]) != 2 {
		t.Errorf("tables = %v", m["tables"])
	}

	coords, ok := m["coordinates"].([]map[string]any)
	if !ok || len(coords) != 1 {
		t.Fatalf("coordinates = %v", m["coordinates"])
	}
	if coords[0]["text"] != "hello" || coords[0]["page"] != 0 {
		t.Errorf("coordinate entry = %v", coords[0])
	}
	bbox, ok := coords[0]["bbox"].([]float64)
	if !ok || len(bbox) != 4 || bbox[0] != 72 {
		t.Errorf("bbox = %v", coords[0]["bbox"])
	}

	if _, present := m["warnings"]; present {
		t.Error("warnings key present with no warnings")
	}
}

func TestToMapFailure(t *testing.T) {
	m := Failed("boom").ToMap()

	if m["success"] != false {
		t.Error("success key wrong")
	}
	if m["method"] != nil {
		t.Errorf("method = %v, want nil", m["method"])
	}
	if m["error_message"] != "boom" {
		t.Errorf("error_message = %v", m["error_message"])
	}
	if tables, ok := m["tables"].([][][]string); !ok || len(tables) != 0 {
		t.Errorf("tables = %v, want empty slice", m["tables"])
	}
}

func TestWarningString(t *testing.T) {
	tests := []struct {
		name string
		w    Warning
		want string
	}{
		{"page scoped", PageWarning(2, "text extraction failed"), "page 3: text extraction failed"},
		{"doc scoped", DocWarning("no text layer found"), "no text layer found"},
		{"formatted", PageWarning(0, "bad object %d", 7), "page 1: bad object 7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.w.String(); got != tt.want {
				t.Errorf("String = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatWarnings(t *testing.T) {
	if got := FormatWarnings(nil); got != "" {
		t.Errorf("FormatWarnings(nil) = %q, want empty", got)
	}

	got := FormatWarnings([]Warning{
		PageWarning(0, "first"),
		DocWarning("second"),
	})
	want := "page 1: first; second"
	if got != want {
		t.Errorf("FormatWarnings = %q, want %q", got, want)
	}
}
