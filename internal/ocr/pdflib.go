package ocr

import (
	"context"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rotisserie/eris"
)

// PdfLib extracts text in-process via github.com/ledongthuc/pdf. Best
// layout fidelity for text-based PDFs; scanned or custom-font documents
// fall through to the next extractor in the chain.
type PdfLib struct{}

// NewPdfLib creates a PdfLib extractor.
func NewPdfLib() *PdfLib { return &PdfLib{} }

// ExtractText reads every page's text content.
func (p *PdfLib) ExtractText(ctx context.Context, pdfPath string) (_ string, err error) {
	// The pdf package panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			err = eris.Errorf("ocr: pdf library panic for %s: %v", pdfPath, r)
		}
	}()

	f, reader, err := pdf.Open(pdfPath)
	if err != nil {
		return "", eris.Wrapf(err, "ocr: open pdf %s", pdfPath)
	}
	defer func() { _ = f.Close() }()

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", eris.Wrap(err, "ocr: extract cancelled")
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			for _, word := range row.Content {
				b.WriteString(word.S)
				b.WriteString(" ")
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}
