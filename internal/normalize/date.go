package normalize

import (
	"regexp"
	"strings"
	"time"
)

// dateLayouts are tried in order against the token pulled from the text.
// Earlier layouts win, so the more specific forms come first.
var dateLayouts = []string{
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"2006-01-02",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"02-Jan-2006",
	"01/2006",
	"Jan 2006",
	"January 2006",
	"2006",
}

var dateTokenRe = regexp.MustCompile(`(?i)\b(?:\d{1,2}/\d{1,2}/\d{2,4}|\d{4}-\d{2}-\d{2}|(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{1,2},?\s+\d{4}|\d{1,2}-(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*-\d{4}|(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}|\d{1,2}/\d{4})\b`)

// Date finds the first date-shaped token in s and parses it. Returns nil
// when nothing date-shaped is present or the token does not parse.
func Date(s string) *time.Time {
	tok := dateTokenRe.FindString(s)
	if tok == "" {
		return nil
	}
	return parseDateToken(tok)
}

func parseDateToken(tok string) *time.Time {
	tok = strings.TrimSpace(tok)
	// Collapse full month names and abbreviation dots to the Jan form.
	tok = abbrevMonth(tok)

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, tok); err == nil {
			// Two-digit years land in the right century via time.Parse;
			// reject anything implausibly old for a credit file.
			if t.Year() >= 1900 {
				return &t
			}
		}
	}
	return nil
}

var monthAbbrevRe = regexp.MustCompile(`(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?`)

// abbrevMonth rewrites month names to three-letter title-case form so a
// small set of layouts covers the variants seen in report markup.
func abbrevMonth(s string) string {
	return monthAbbrevRe.ReplaceAllStringFunc(s, func(m string) string {
		m = strings.TrimSuffix(m, ".")
		if len(m) > 3 {
			m = m[:3]
		}
		return strings.ToUpper(m[:1]) + strings.ToLower(m[1:])
	})
}
