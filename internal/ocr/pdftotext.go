package ocr

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

// extractTimeout bounds one pdftotext run. Consumer reports are at most a
// few hundred pages; anything slower is a wedged process, not a big file.
const extractTimeout = 30 * time.Second

// PdfToText shells out to the poppler pdftotext tool. It is the fallback
// for report PDFs whose embedded fonts defeat in-process extraction.
type PdfToText struct {
	binPath string
}

// NewPdfToText creates a PdfToText extractor. If binPath is empty, "pdftotext" is used.
func NewPdfToText(binPath string) *PdfToText {
	if binPath == "" {
		binPath = "pdftotext"
	}
	return &PdfToText{binPath: binPath}
}

// ExtractText converts one report PDF to plain text on stdout. -layout
// preserves column alignment so tabular tradeline sections stay parseable
// as tables; -nopgbrk drops the form feeds that would otherwise split
// section headings mid-chunk for the free-text strategies.
func (p *PdfToText) ExtractText(ctx context.Context, pdfPath string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, extractTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.binPath, "-layout", "-nopgbrk", "-q", pdfPath, "-")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", eris.Errorf("ocr: pdftotext timed out on %s", pdfPath)
		}
		return "", eris.Wrapf(err, "ocr: pdftotext failed for %s: %s", pdfPath, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}
