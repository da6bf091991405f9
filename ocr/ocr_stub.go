//go:build !ocr

// Package ocr provides OCR (Optical Character Recognition) for
// extracting text from scanned, image-only PDFs.
//
// This is the stub implementation used when the "ocr" build tag is not
// set. All recognition functions return ErrNotEnabled, and the engine
// reports itself unavailable so the pipeline never selects the OCR
// path.
//
// To enable OCR, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

// Client is a stub OCR client that returns errors for all operations.
type Client struct{}

// NewClient returns an error indicating OCR support is not enabled.
// To enable OCR, rebuild with: go build -tags ocr
func NewClient() (*Client, error) {
	return nil, ErrNotEnabled
}

// Close is a no-op for the stub client. Safe on a nil client.
func (c *Client) Close() error {
	return nil
}

// RecognizeImage returns an error indicating OCR support is not enabled.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrNotEnabled
}

// SetLanguage returns an error indicating OCR support is not enabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrNotEnabled
}

// SetPageSegMode returns an error indicating OCR support is not enabled.
func (c *Client) SetPageSegMode(mode int) error {
	return ErrNotEnabled
}
