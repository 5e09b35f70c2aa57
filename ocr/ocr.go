//go:build ocr

package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client recognizes text through Tesseract. It is not safe for concurrent
// use; give each goroutine its own Client.
type Client struct {
	tess  *gosseract.Client
	langs []string
}

// New starts a Tesseract client for the "+" separated language list lang.
// An empty list selects DefaultLanguage. Close the client when done.
func New(lang string) (*Client, error) {
	langs := languages(lang)
	tess := gosseract.NewClient()
	if err := tess.SetLanguage(langs...); err != nil {
		tess.Close()
		return nil, fmt.Errorf("setting OCR languages %v: %w", langs, err)
	}
	return &Client{tess: tess, langs: langs}, nil
}

// Languages returns the languages the client recognizes.
func (c *Client) Languages() []string {
	return append([]string(nil), c.langs...)
}

// Close releases the Tesseract handle. It is safe to call on a nil or
// already closed client.
func (c *Client) Close() error {
	if c == nil || c.tess == nil {
		return nil
	}
	err := c.tess.Close()
	c.tess = nil
	return err
}

// Recognize reads the text of the media entry name from its encoded bytes.
func (c *Client) Recognize(name string, data []byte) (Result, error) {
	if c == nil || c.tess == nil {
		return Result{}, ErrClientClosed
	}
	if err := c.tess.SetImageFromBytes(data); err != nil {
		return Result{}, fmt.Errorf("loading %s: %w", name, err)
	}

	text, err := c.tess.Text()
	if err != nil {
		return Result{}, fmt.Errorf("recognizing %s: %w", name, err)
	}
	return Result{Name: name, Text: strings.TrimSpace(text)}, nil
}
