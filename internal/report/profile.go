package report

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"
	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/normalize"
)

var (
	labelNameRe     = regexp.MustCompile(`(?im)^[^\S\n]*(?:name|consumer)[:\s]+(.+)$`)
	labelAddressRe  = regexp.MustCompile(`(?im)^[^\S\n]*(?:current\s+)?address(?:es)?[:\s]+(.+)$`)
	labelEmployerRe = regexp.MustCompile(`(?im)^[^\S\n]*employer[:\s]+(.+)$`)
	labelDOBRe      = regexp.MustCompile(`(?im)^[^\S\n]*(?:date\s+of\s+birth|dob|birth\s+date|born)[:\s]+(.+)$`)
)

// extractProfile pulls consumer identity data: dedicated selectors when
// configured, labeled lines in the text otherwise.
func extractProfile(doc *goquery.Document, text string, cc *compiled) model.ConsumerProfile {
	profile := model.ConsumerProfile{
		Names:     []model.PersonName{},
		Addresses: []model.Address{},
		Employers: []string{},
	}

	if doc != nil && cc.cfg.NameSelector != "" {
		findSafe(doc.Selection, cc.cfg.NameSelector).Each(func(_ int, s *goquery.Selection) {
			bureau := cc.cfg.DefaultBureau
			if b := bureauFromAttr(s, ""); b != "" {
				bureau = b
			}
			if n, ok := splitPersonName(s.Text(), bureau); ok {
				profile.Names = appendUniqueName(profile.Names, n)
			}
		})
	}
	if len(profile.Names) == 0 {
		for _, m := range labelNameRe.FindAllStringSubmatch(text, 5) {
			if n, ok := splitPersonName(m[1], cc.cfg.DefaultBureau); ok {
				profile.Names = appendUniqueName(profile.Names, n)
			}
		}
	}

	if doc != nil && cc.cfg.AddressSelector != "" {
		findSafe(doc.Selection, cc.cfg.AddressSelector).Each(func(_ int, s *goquery.Selection) {
			if a, ok := splitAddress(blockText(s), cc.cfg.DefaultBureau); ok {
				profile.Addresses = append(profile.Addresses, a)
			}
		})
	}
	if len(profile.Addresses) == 0 {
		for _, m := range labelAddressRe.FindAllStringSubmatch(text, 5) {
			if a, ok := splitAddress(m[1], cc.cfg.DefaultBureau); ok {
				profile.Addresses = append(profile.Addresses, a)
			}
		}
	}

	for _, m := range labelEmployerRe.FindAllStringSubmatch(text, 5) {
		emp := strings.TrimSpace(m[1])
		if emp != "" && !containsFold(profile.Employers, emp) {
			profile.Employers = append(profile.Employers, emp)
		}
	}

	profile.SSNLast4 = normalize.SSNLast4(text)
	if m := labelDOBRe.FindStringSubmatch(text); m != nil {
		profile.DateOfBirth = normalize.Date(m[1])
	}

	return profile
}

// splitPersonName breaks "FIRST [MIDDLE] LAST" into parts. Fragments with
// fewer than two words are not names.
func splitPersonName(raw string, bureau model.Bureau) (model.PersonName, bool) {
	words := strings.Fields(normalize.CleanText(raw))
	if len(words) < 2 || len(words) > 4 {
		return model.PersonName{}, false
	}
	n := model.PersonName{FirstName: words[0], LastName: words[len(words)-1], Bureau: bureau}
	if len(words) > 2 {
		n.MiddleName = strings.Join(words[1:len(words)-1], " ")
	}
	return n, true
}

// splitAddress parses "street, city, ST 12345" shaped fragments. The
// state+zip pair is the anchor; fragments without one are dropped.
func splitAddress(raw string, bureau model.Bureau) (model.Address, bool) {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, "\n", ", "))
	state, zip, pos := normalize.StateZipIndex(raw)
	if pos < 0 {
		return model.Address{}, false
	}

	head := strings.Trim(raw[:pos], " ,")
	street, city := head, ""
	if i := strings.LastIndex(head, ","); i >= 0 {
		street = strings.TrimSpace(head[:i])
		city = strings.TrimSpace(head[i+1:])
	}
	if street == "" {
		return model.Address{}, false
	}
	return model.Address{Street: street, City: city, State: state, ZipCode: zip, Bureau: bureau}, true
}

func appendUniqueName(names []model.PersonName, n model.PersonName) []model.PersonName {
	for _, have := range names {
		if strings.EqualFold(have.FirstName, n.FirstName) &&
			strings.EqualFold(have.LastName, n.LastName) &&
			have.Bureau == n.Bureau {
			return names
		}
	}
	return append(names, n)
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
