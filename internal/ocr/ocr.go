// Package ocr turns uploaded report files into the plain-text documents
// the report parsers consume. HTML and text files pass through; PDFs go
// through an extractor chain.
package ocr

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/config"
)

// Extractor extracts text content from PDF files.
type Extractor interface {
	ExtractText(ctx context.Context, pdfPath string) (string, error)
}

// NewExtractor creates an Extractor based on config. The default chain
// tries the in-process library first and shells out to pdftotext when the
// library yields garbage.
func NewExtractor(cfg config.OCRConfig) (Extractor, error) {
	switch cfg.Provider {
	case "chain", "":
		return NewChain(NewPdfLib(), NewPdfToText(cfg.PdfToTextPath)), nil
	case "library":
		return NewPdfLib(), nil
	case "pdftotext":
		return NewPdfToText(cfg.PdfToTextPath), nil
	default:
		return nil, eris.Errorf("ocr: unknown provider %q", cfg.Provider)
	}
}

// Chain tries extractors in order, returning the first readable result.
type Chain struct {
	extractors []Extractor
}

// NewChain creates a Chain over the given extractors.
func NewChain(extractors ...Extractor) *Chain {
	return &Chain{extractors: extractors}
}

// ExtractText returns the first readable extraction, or the last error.
func (c *Chain) ExtractText(ctx context.Context, pdfPath string) (string, error) {
	var lastErr error
	for _, e := range c.extractors {
		text, err := e.ExtractText(ctx, pdfPath)
		if err == nil && isReadable(text) {
			return text, nil
		}
		if err != nil {
			lastErr = err
		} else {
			lastErr = eris.Errorf("ocr: extraction produced unreadable text (%d bytes)", len(text))
		}
	}
	if lastErr == nil {
		lastErr = eris.New("ocr: no extractors configured")
	}
	return "", eris.Wrap(lastErr, "ocr: all extractors failed")
}

// isReadable checks that extracted text is mostly plain ASCII. Identity
// encoded fonts produce output that decodes but is garbage; accepting it
// would feed noise into the parsers.
func isReadable(text string) bool {
	if len(strings.TrimSpace(text)) < 40 {
		return false
	}
	total, readable := 0, 0
	for _, r := range text {
		total++
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') ||
			r == ' ' || r == '\n' || r == '\t' || strings.ContainsRune(".,:;-/$%()#*'\"&", r) {
			readable++
		}
	}
	return total > 0 && float64(readable)/float64(total) >= 0.85
}
