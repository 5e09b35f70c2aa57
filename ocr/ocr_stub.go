//go:build !ocr

package ocr

// Client stands in for the Tesseract client in builds without the ocr tag.
type Client struct{}

// New always fails with ErrOCRNotEnabled.
func New(lang string) (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Languages returns nil.
func (c *Client) Languages() []string { return nil }

// Close does nothing.
func (c *Client) Close() error { return nil }

// Recognize always fails with ErrOCRNotEnabled.
func (c *Client) Recognize(name string, data []byte) (Result, error) {
	return Result{}, ErrOCRNotEnabled
}
