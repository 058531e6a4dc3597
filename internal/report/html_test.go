package report

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"
)

func TestLooksLikeHTML(t *testing.T) {
	assert.True(t, looksLikeHTML("<html><body>x</body></html>"))
	assert.True(t, looksLikeHTML(`<div class="a">x</div>`))
	assert.False(t, looksLikeHTML("plain text report"))
	assert.False(t, looksLikeHTML("a < b and b > c"))
}

func TestLoadHTML_StripsScriptAndStyle(t *testing.T) {
	doc := loadHTML(`<html><body><script>var score = 999;</script><p>hello</p></body></html>`)
	require.NotNil(t, doc)
	text := plainText(doc, "")
	assert.Contains(t, text, "hello")
	assert.NotContains(t, text, "999")
}

func TestPlainText_PassesThroughNonHTML(t *testing.T) {
	assert.Equal(t, "line one\nline two", plainText(nil, "  line\tone\nline two  "))
}

func TestBlockText_NewlinesBetweenBlocks(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><body><div>Balance: $10.00</div><div>Status: Open</div></body></html>`))
	require.NoError(t, err)

	text := blockText(doc.Find("body"))
	assert.Contains(t, text, "Balance: $10.00\n")
	assert.Contains(t, text, "Status: Open")
}

func TestFindSafe_InvalidSelector(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body><p>x</p></body></html>`))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		sel := findSafe(doc.Selection, "[[[")
		assert.Equal(t, 0, sel.Length())
	})
}

func TestBureauFromText(t *testing.T) {
	assert.Equal(t, model.BureauTransUnion, bureauFromText("TransUnion score"))
	assert.Equal(t, model.BureauTransUnion, bureauFromText("Trans Union"))
	assert.Equal(t, model.BureauExperian, bureauFromText("per EXPERIAN data"))
	assert.Equal(t, model.BureauEquifax, bureauFromText("equifax"))
	assert.Equal(t, model.Bureau(""), bureauFromText("innovis"))
}
