package ocr

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/config"
)

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) ExtractText(_ context.Context, _ string) (string, error) {
	return s.text, s.err
}

const readableText = "ACCOUNT SUMMARY: Balance $1,234.56 opened 01/02/2020 with CAPITAL ONE BANK, status current."

func TestNewExtractor(t *testing.T) {
	t.Run("default is chain", func(t *testing.T) {
		e, err := NewExtractor(config.OCRConfig{})
		require.NoError(t, err)
		assert.IsType(t, &Chain{}, e)
	})

	t.Run("library", func(t *testing.T) {
		e, err := NewExtractor(config.OCRConfig{Provider: "library"})
		require.NoError(t, err)
		assert.IsType(t, &PdfLib{}, e)
	})

	t.Run("pdftotext", func(t *testing.T) {
		e, err := NewExtractor(config.OCRConfig{Provider: "pdftotext"})
		require.NoError(t, err)
		assert.IsType(t, &PdfToText{}, e)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewExtractor(config.OCRConfig{Provider: "tesseract"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown provider")
	})
}

func TestChain_FirstReadableWins(t *testing.T) {
	chain := NewChain(
		&stubExtractor{text: readableText},
		&stubExtractor{err: eris.New("second extractor must not win")},
	)

	text, err := chain.ExtractText(context.Background(), "report.pdf")
	require.NoError(t, err)
	assert.Equal(t, readableText, text)
}

func TestChain_FallsBackOnError(t *testing.T) {
	chain := NewChain(
		&stubExtractor{err: eris.New("pdflib: decode failed")},
		&stubExtractor{text: readableText},
	)

	text, err := chain.ExtractText(context.Background(), "report.pdf")
	require.NoError(t, err)
	assert.Equal(t, readableText, text)
}

func TestChain_FallsBackOnGarbage(t *testing.T) {
	chain := NewChain(
		&stubExtractor{text: strings.Repeat("\x01\x02\x03\x04", 30)},
		&stubExtractor{text: readableText},
	)

	text, err := chain.ExtractText(context.Background(), "report.pdf")
	require.NoError(t, err)
	assert.Equal(t, readableText, text)
}

func TestChain_AllFail(t *testing.T) {
	chain := NewChain(
		&stubExtractor{err: eris.New("pdflib: decode failed")},
		&stubExtractor{err: eris.New("pdftotext: exec failed")},
	)

	_, err := chain.ExtractText(context.Background(), "report.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all extractors failed")
}

func TestChain_Empty(t *testing.T) {
	_, err := NewChain().ExtractText(context.Background(), "report.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no extractors configured")
}

func TestPdfToText_BinPath(t *testing.T) {
	p := NewPdfToText("")
	assert.Equal(t, "pdftotext", p.binPath)

	p = NewPdfToText("/custom/pdftotext")
	assert.Equal(t, "/custom/pdftotext", p.binPath)
}

func TestPdfToText_ExtractText(t *testing.T) {
	script := filepath.Join(t.TempDir(), "fake-pdftotext")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nprintf 'EXTRACTED REPORT TEXT'\n"), 0755))

	p := NewPdfToText(script)
	text, err := p.ExtractText(context.Background(), "report.pdf")
	require.NoError(t, err)
	assert.Equal(t, "EXTRACTED REPORT TEXT", text)
}

func TestPdfToText_FailureIncludesStderr(t *testing.T) {
	script := filepath.Join(t.TempDir(), "fake-pdftotext")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho 'Syntax Error: bad xref' >&2\nexit 1\n"), 0755))

	p := NewPdfToText(script)
	_, err := p.ExtractText(context.Background(), "report.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad xref")
}

func TestIsReadable(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"plain report text", readableText, true},
		{"too short", "Balance $5.00", false},
		{"empty", "", false},
		{"whitespace only", "   \n\t   ", false},
		{"binary garbage", strings.Repeat("\x00\xff\xfe\x01", 40), false},
		{"mostly garbage with some ascii", "abc" + strings.Repeat("\x7f\x80", 40), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isReadable(tt.text))
		})
	}
}
