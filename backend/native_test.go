package backend

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckMagic(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{"valid header", []byte("%PDF-1.7\n"), false},
		{"not a pdf", []byte("GIF89a....."), true},
		{"empty file", nil, true},
		{"truncated header", []byte("%PD"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, "doc.pdf", tt.data)
			err := checkMagic(path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnreadable) {
					t.Errorf("checkMagic = %v, want ErrUnreadable", err)
				}
				return
			}
			if err != nil {
				t.Errorf("checkMagic = %v, want nil", err)
			}
		})
	}
}

func TestCheckMagicMissingFile(t *testing.T) {
	err := checkMagic(filepath.Join(t.TempDir(), "absent.pdf"))
	if !errors.Is(err, ErrUnreadable) {
		t.Errorf("checkMagic on missing file = %v, want ErrUnreadable", err)
	}
}

func TestNativeExtractRejectsNonPDF(t *testing.T) {
	path := writeTemp(t, "fake.pdf", []byte("this is just text"))

	res, err := NewNative().Extract(path, false, false)
	if res != nil {
		t.Errorf("Extract returned a result for a non-PDF")
	}
	if !errors.Is(err, ErrUnreadable) {
		t.Errorf("Extract = %v, want ErrUnreadable", err)
	}
}

func TestNativeExtractTruncatedPDF(t *testing.T) {
	// A valid header with garbage behind it must classify cleanly,
	// never panic.
	path := writeTemp(t, "broken.pdf", []byte("%PDF-1.4\ngarbage garbage garbage"))

	res, err := NewNative().Extract(path, false, false)
	if res != nil {
		t.Errorf("Extract returned a result for a truncated PDF")
	}
	if !errors.Is(err, ErrUnreadable) && !errors.Is(err, ErrEncrypted) {
		t.Errorf("Extract = %v, want a classified sentinel", err)
	}
}

func TestNativeCapabilities(t *testing.T) {
	caps := NewNative().Capabilities()
	for _, want := range []Capability{CapText, CapSpans, CapTables} {
		if !caps.Has(want) {
			t.Errorf("native backend missing capability %b", want)
		}
	}
	if caps.Has(CapRender) {
		t.Error("native backend claims render capability")
	}
}

func TestNativePageTextsMissingFile(t *testing.T) {
	texts, err := NewNative().PageTexts(filepath.Join(t.TempDir(), "gone.pdf"))
	if texts != nil {
		t.Errorf("PageTexts = %v, want nil", texts)
	}
	if err == nil {
		t.Error("PageTexts on missing file returned nil error")
	}
}

func TestNativeExtractFixture(t *testing.T) {
	// Real-document coverage runs only when a fixture is present.
	path := filepath.Join("testdata", "sample.pdf")
	if _, err := os.Stat(path); err != nil {
		t.Skip("testdata/sample.pdf not present")
	}

	res, err := NewNative().Extract(path, true, true)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !res.Success {
		t.Error("expected success on fixture")
	}
	if res.PageCount < 1 {
		t.Errorf("PageCount = %d, want >= 1", res.PageCount)
	}
	if res.Text == "" {
		t.Error("expected non-empty text from fixture")
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	native := r.Get("native")
	if native == nil {
		t.Fatal("native backend not registered")
	}
	if got := native.Name(); got != "native" {
		t.Errorf("Name = %q, want native", got)
	}

	names := r.List()
	if len(names) == 0 {
		t.Fatal("empty registry")
	}
	// Presence is availability: every listed name resolves.
	for _, name := range names {
		if r.Get(name) == nil {
			t.Errorf("listed backend %q does not resolve", name)
		}
	}
	if r.Get("bogus") != nil {
		t.Error("unknown name resolved to a backend")
	}
}

func TestRegistryRegistrationOrder(t *testing.T) {
	r := NewEmptyRegistry()
	r.Register(NewNative())
	r.Register(NewNative()) // replacement keeps position, no duplicate

	names := r.List()
	if len(names) != 1 || names[0] != "native" {
		t.Errorf("List = %v, want [native]", names)
	}
}

func TestCapabilityHas(t *testing.T) {
	combo := CapText | CapTables
	if !combo.Has(CapText) || !combo.Has(CapTables) {
		t.Error("combined capability lost a member")
	}
	if combo.Has(CapSpans) {
		t.Error("capability reports a member it does not have")
	}
	if !combo.Has(CapText | CapTables) {
		t.Error("Has failed on exact match")
	}
}
