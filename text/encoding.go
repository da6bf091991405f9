package text

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encoding labels returned by DetectEncoding.
const (
	EncodingUTF8   = "utf-8"
	EncodingLatin1 = "latin1"
	EncodingISO    = "iso-8859-1"
)

// DetectEncoding guesses the character encoding of raw extracted
// bytes. Valid UTF-8 wins; otherwise the bytes are decoded as Latin-1,
// which accepts every byte value, so the ISO-8859-1 label only appears
// when the decoder itself reports a problem. DetectEncoding always
// returns a label and never fails.
func DetectEncoding(b []byte) string {
	if utf8.Valid(b) {
		return EncodingUTF8
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err == nil && utf8.Valid(decoded) {
		return EncodingLatin1
	}
	return EncodingISO
}

// Decode converts raw bytes to a UTF-8 string using the encoding
// detected by DetectEncoding.
func Decode(b []byte) string {
	switch DetectEncoding(b) {
	case EncodingUTF8:
		return string(b)
	default:
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
		if err != nil {
			return string(b)
		}
		return string(decoded)
	}
}
