package report

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"
)

var (
	htmlTagRe    = regexp.MustCompile(`(?i)<(!doctype|html|body|div|table|span|p)\b`)
	scriptRe     = regexp.MustCompile(`(?is)<(script|style)[^>]*>.*?</(script|style)>`)
	spaceRe      = regexp.MustCompile(`[ \t]+`)
	blankLinesRe = regexp.MustCompile(`\n{3,}`)
)

// looksLikeHTML reports whether the document carries markup worth running
// the selector strategies against.
func looksLikeHTML(document string) bool {
	return htmlTagRe.MatchString(document)
}

// loadHTML parses a document into a goquery document, or nil when the
// input is not markup or cannot be parsed. A nil document just disables
// the selector strategies; the text strategies still run.
func loadHTML(document string) *goquery.Document {
	if !looksLikeHTML(document) {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(scriptRe.ReplaceAllString(document, "")))
	if err != nil {
		return nil
	}
	return doc
}

// plainText produces the fallback corpus: the document's visible text for
// markup, or the document itself for plain text, with whitespace
// collapsed the same way either way.
func plainText(doc *goquery.Document, document string) string {
	text := document
	if doc != nil {
		var b strings.Builder
		doc.Find("body").Each(func(_ int, s *goquery.Selection) {
			b.WriteString(blockText(s))
		})
		if b.Len() > 0 {
			text = b.String()
		}
	}
	text = spaceRe.ReplaceAllString(text, " ")
	text = blankLinesRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// blockText renders a selection's text with newlines between block-level
// children, so line-oriented regexes see one field per line.
func blockText(s *goquery.Selection) string {
	var b strings.Builder
	var walk func(*goquery.Selection)
	walk = func(sel *goquery.Selection) {
		sel.Contents().Each(func(_ int, c *goquery.Selection) {
			if goquery.NodeName(c) == "#text" {
				b.WriteString(c.Text())
				return
			}
			switch goquery.NodeName(c) {
			case "div", "p", "tr", "li", "br", "h1", "h2", "h3", "h4", "table", "section", "dt", "dd":
				b.WriteString("\n")
			}
			walk(c)
			switch goquery.NodeName(c) {
			case "div", "p", "tr", "li", "h1", "h2", "h3", "h4", "table", "section", "dd":
				b.WriteString("\n")
			case "td", "th":
				b.WriteString(" ")
			}
		})
	}
	walk(s)
	return b.String()
}

// findSafe runs a selector that may come from an operator override file.
// goquery panics on selectors cascadia cannot compile; a bad selector
// just yields an empty selection here.
func findSafe(s *goquery.Selection, selector string) (sel *goquery.Selection) {
	defer func() {
		if recover() != nil {
			sel = s.Slice(0, 0)
		}
	}()
	return s.Find(selector)
}

// bureauFromText finds the first bureau name mentioned in a fragment.
func bureauFromText(s string) model.Bureau {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "transunion"), strings.Contains(lower, "trans union"):
		return model.BureauTransUnion
	case strings.Contains(lower, "experian"):
		return model.BureauExperian
	case strings.Contains(lower, "equifax"):
		return model.BureauEquifax
	}
	return ""
}

// bureauFromAttr reads a bureau out of an element attribute or class
// list, falling back to the element's own text.
func bureauFromAttr(s *goquery.Selection, attr string) model.Bureau {
	if attr != "" {
		if v, ok := s.Attr(attr); ok {
			if b := bureauFromText(v); b != "" {
				return b
			}
		}
	}
	if v, ok := s.Attr("class"); ok {
		if b := bureauFromText(v); b != "" {
			return b
		}
	}
	return bureauFromText(s.Text())
}
