package docxparse

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/tsawler/docxparse/docx"
)

// Option configures a Parser.
type Option func(*options)

// options holds configuration for opening and parsing a document.
type options struct {
	logger      *log.Logger
	maxPartSize int64
}

// defaultOptions returns the default parser options.
func defaultOptions() options {
	return options{
		logger:      log.New(io.Discard),
		maxPartSize: docx.DefaultMaxPartSize,
	}
}

// WithLogger sets the logger used for debug output. The default discards
// everything.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxPartSize bounds the uncompressed size of each XML part. Documents
// whose parts exceed it fail to open.
func WithMaxPartSize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxPartSize = n
		}
	}
}
