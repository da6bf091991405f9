//go:build ocr

// Package ocr provides OCR (Optical Character Recognition) for
// extracting text from scanned, image-only PDFs.
//
// This file wraps the Tesseract engine via gosseract and is compiled
// only with the "ocr" build tag. It requires Tesseract to be installed
// on the system. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// NewClient creates a new OCR client. The client should be closed
// when no longer needed to release resources.
func NewClient() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeImage performs OCR on image data (PNG, TIFF, JPEG, etc.).
// Returns the recognized text with leading/trailing whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// SetLanguage sets the language(s) for recognition. Multiple languages
// can be specified "+"-separated (e.g. "eng+fra"). Default is "eng".
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetPageSegMode sets Tesseract's page segmentation mode. Useful for
// single-column or sparse-text documents where the default automatic
// segmentation misreads the layout.
func (c *Client) SetPageSegMode(mode int) error {
	return c.client.SetPageSegMode(gosseract.PageSegMode(mode))
}
