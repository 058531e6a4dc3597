package report

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"
	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/normalize"
)

var nextSectionRe = regexp.MustCompile(`(?im)^[ \t]*(?:accounts?|tradelines?|collections?|public records?|negative items?|summary|creditor contacts?)\b`)

// extractInquiries runs the inquiry cascade: entry selectors first, then
// the text span between an "Inquiries" heading and the next section
// heading. Entries without an extractable creditor name are dropped.
func extractInquiries(doc *goquery.Document, text string, cc *compiled) []model.Inquiry {
	inquiries := []model.Inquiry{}
	seen := make(map[string]bool)

	add := func(fragment string, bureau model.Bureau) {
		creditor := normalize.CreditorName(capitalizedRunRe.FindString(fragment))
		if creditor == "" {
			return
		}
		date := normalize.Date(fragment)

		// Same creditor, different dates is two legitimate hard pulls;
		// only an exact repeat of creditor and date is a duplicate.
		key := strings.ToLower(creditor)
		if date != nil {
			key += "|" + date.Format("2006-01-02")
		}
		if seen[key] {
			return
		}
		seen[key] = true
		inquiries = append(inquiries, model.Inquiry{
			CreditorName: creditor,
			InquiryDate:  date,
			Bureau:       bureau,
		})
	}

	if doc != nil && cc.cfg.InquiryEntrySelector != "" {
		findSafe(doc.Selection, cc.cfg.InquiryEntrySelector).Each(func(_ int, e *goquery.Selection) {
			bureau := cc.cfg.DefaultBureau
			if b := bureauFromText(e.Text()); b != "" {
				bureau = b
			}
			add(e.Text(), bureau)
		})
	}

	if len(inquiries) == 0 {
		for _, line := range inquirySectionLines(text, cc.cfg.InquiriesHeading) {
			add(line, cc.cfg.DefaultBureau)
		}
	}

	return inquiries
}

// inquirySectionLines returns the lines between the inquiries heading and
// the next section heading.
func inquirySectionLines(text, heading string) []string {
	if heading == "" {
		heading = "inquiries"
	}
	headingRe := regexp.MustCompile(`(?im)^[ \t]*(?:hard |credit )?` + regexp.QuoteMeta(strings.ToLower(heading)) + `\b.*$`)
	loc := headingRe.FindStringIndex(text)
	if loc == nil {
		return nil
	}

	rest := text[loc[1]:]
	if next := nextSectionRe.FindStringIndex(rest); next != nil {
		rest = rest[:next[0]]
	}

	var lines []string
	for _, line := range strings.Split(rest, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
