package text

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"already clean", "hello world", "hello world"},
		{"collapse spaces", "hello    world", "hello world"},
		{"collapse tabs", "a\t\tb", "a b"},
		{"trim edges", "  hello  ", "hello"},
		{"crlf normalized", "line one\r\nline two", "line one\nline two"},
		{"bare cr normalized", "line one\rline two", "line one\nline two"},
		{"space before newline", "end of line \nnext", "end of line\nnext"},
		{"space after newline", "end of line\n next", "end of line\nnext"},
		{"paragraph preserved", "para one\n\npara two", "para one\n\npara two"},
		{"excess newlines collapsed", "para one\n\n\n\n\npara two", "para one\n\npara two"},
		{"mixed mess", "  a   b \n\n\n c\td  ", "a b\n\nc d"},
		{"whitespace only", " \t\n\n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input)
			if got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"hello    world",
		"a \n b\n\n\n\nc",
		"\r\n\r\nx\r\n",
		"already clean\n\ntext",
		"",
	}
	for _, s := range inputs {
		once := Clean(s)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", s, once, twice)
		}
	}
}

func TestJoinPages(t *testing.T) {
	tests := []struct {
		name  string
		pages []string
		want  string
	}{
		{"none", nil, ""},
		{"single", []string{"page one"}, "page one"},
		{"two pages", []string{"page one", "page two"}, "page one\n\npage two"},
		{"empty pages skipped", []string{"page one", "", "  ", "page four"}, "page one\n\npage four"},
		{"all empty", []string{"", "  "}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JoinPages(tt.pages)
			if got != tt.want {
				t.Errorf("JoinPages(%q) = %q, want %q", tt.pages, got, tt.want)
			}
		})
	}
}

func TestDetectEncoding(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"ascii", []byte("plain text"), EncodingUTF8},
		{"utf8 multibyte", []byte("café — naïve"), EncodingUTF8},
		{"latin1 byte", []byte{'c', 'a', 'f', 0xE9}, EncodingLatin1},
		{"empty", nil, EncodingUTF8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectEncoding(tt.input)
			if got != tt.want {
				t.Errorf("DetectEncoding(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodeLatin1(t *testing.T) {
	got := Decode([]byte{'c', 'a', 'f', 0xE9})
	if got != "café" {
		t.Errorf("Decode = %q, want café", got)
	}
}
