package pdftext

import (
	"context"
	"errors"
	"log"
	"strings"
)

// ErrUnavailable means no backend produced any text for the document.
var ErrUnavailable = errors.New("could not extract text from PDF")

// Extractor turns raw PDF bytes into a text blob.
type Extractor interface {
	ExtractText(ctx context.Context, content []byte) (string, error)
}

// Chain tries each backend in order and returns the first non-empty result.
// A backend that errors or yields only whitespace is skipped, so the layout
// aware primary always gets the first attempt and the simpler reader only
// serves as fallback.
type Chain struct {
	backends []Extractor
	log      *log.Logger
}

func NewChain(logger *log.Logger, backends ...Extractor) *Chain {
	if logger == nil {
		logger = log.Default()
	}
	return &Chain{backends: backends, log: logger}
}

func (c *Chain) ExtractText(ctx context.Context, content []byte) (string, error) {
	if c == nil || len(c.backends) == 0 {
		return "", ErrUnavailable
	}

	for _, b := range c.backends {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		text, err := b.ExtractText(ctx, content)
		if err != nil {
			c.log.Printf("pdf extraction backend=%T status=error err=%v", b, err)
			continue
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return trimmed, nil
		}
		c.log.Printf("pdf extraction backend=%T status=empty", b)
	}

	return "", ErrUnavailable
}
