//go:build ocr

// Package ocr recognizes positioned words in scanned page images.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr tesseract-ocr-ara
//
// Recognition runs in hOCR mode so every word arrives with its bounding
// box, which is what the layout pipeline consumes.
package ocr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
	_ "golang.org/x/image/tiff"

	"github.com/tsawler/shatranj/hocr"
	"github.com/tsawler/shatranj/model"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client}, nil
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

// RecognizeWords performs OCR on image data and returns the recognized
// words with their bounding boxes, plus the page dimensions. When the
// hOCR output carries no page geometry, dimensions fall back to the
// image's own pixel size.
func (c *Client) RecognizeWords(imageData []byte) ([]model.Word, float64, float64, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, 0, 0, fmt.Errorf("failed to set image: %w", err)
	}

	out, err := c.client.HOCRText()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("OCR failed: %w", err)
	}

	doc, err := hocr.Parse(strings.NewReader(out))
	if err != nil {
		return nil, 0, 0, err
	}

	page := doc.GetPage(1)
	if page == nil {
		return nil, 0, 0, nil
	}

	width, height := page.Width, page.Height
	if width == 0 || height == 0 {
		if cfg, _, err := image.DecodeConfig(bytes.NewReader(imageData)); err == nil {
			width = float64(cfg.Width)
			height = float64(cfg.Height)
		}
	}

	return page.Words, width, height, nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "ara+eng").
// Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetLanguages sets the recognition languages from detected-language values,
// mapping them to Tesseract's traineddata names.
func (c *Client) SetLanguages(languages ...model.Language) error {
	return c.client.SetLanguage(tessLanguages(languages))
}

// SetPageSegMode sets the page segmentation mode.
// This affects how Tesseract analyzes the page layout.
// See gosseract.PageSegMode constants for available modes.
func (c *Client) SetPageSegMode(mode gosseract.PageSegMode) error {
	return c.client.SetPageSegMode(mode)
}

// tessLanguages maps languages to a "+" separated Tesseract language string.
func tessLanguages(languages []model.Language) string {
	var names []string
	for _, l := range languages {
		switch l {
		case model.LanguageArabic:
			names = append(names, "ara")
		case model.LanguageEnglish:
			names = append(names, "eng")
		}
	}
	if len(names) == 0 {
		return "eng"
	}
	return strings.Join(names, "+")
}
