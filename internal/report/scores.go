package report

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"
)

// Scores outside this range are treated as not-found and discarded,
// never clamped.
const (
	scoreMin = 300
	scoreMax = 850
)

var (
	threeDigitsRe = regexp.MustCompile(`\b(\d{3})\b`)
	// Bureau name followed by a 3-digit value within a short window.
	bureauScoreRe = regexp.MustCompile(`(?i)(transunion|trans union|experian|equifax)\D{0,40}?\b(\d{3})\b`)
)

func validScore(n int) bool { return n >= scoreMin && n <= scoreMax }

// extractScores runs the score cascade: bureau-tagged containers, then
// the vendor's preferred composite pattern, then a bare bureau-adjacent
// regex over the full text. Only the first valid match per bureau is
// kept.
func extractScores(doc *goquery.Document, text string, cc *compiled) map[model.Bureau]int {
	scores := make(map[model.Bureau]int)

	if doc != nil && cc.cfg.ScoreContainerSelector != "" {
		findSafe(doc.Selection, cc.cfg.ScoreContainerSelector).Each(func(_ int, s *goquery.Selection) {
			bureau := bureauFromAttr(s, cc.cfg.ScoreBureauAttr)
			if bureau == "" {
				return
			}
			if _, done := scores[bureau]; done {
				return
			}
			if n, ok := scoreFromSelection(s, cc.cfg.ScoreValueSelector); ok {
				scores[bureau] = n
			}
		})
	}

	if cc.preferredScore != nil {
		for _, m := range cc.preferredScore.FindAllStringSubmatchIndex(text, -1) {
			if len(m) < 4 {
				continue
			}
			n, err := strconv.Atoi(text[m[2]:m[3]])
			if err != nil || !validScore(n) {
				continue
			}
			// Attribute the composite to the nearest preceding bureau
			// mention; an untagged composite goes to the vendor default.
			bureau := precedingBureau(text, m[0])
			if bureau == "" {
				bureau = cc.cfg.DefaultBureau
			}
			if bureau == "" {
				continue
			}
			if _, done := scores[bureau]; !done {
				scores[bureau] = n
			}
		}
	}

	for _, m := range bureauScoreRe.FindAllStringSubmatch(text, -1) {
		bureau := bureauFromText(m[1])
		if bureau == "" {
			continue
		}
		if _, done := scores[bureau]; done {
			continue
		}
		if n, err := strconv.Atoi(m[2]); err == nil && validScore(n) {
			scores[bureau] = n
		}
	}

	return scores
}

// scoreFromSelection pulls a valid score from a container, preferring the
// dedicated value element when configured.
func scoreFromSelection(s *goquery.Selection, valueSelector string) (int, bool) {
	probe := s.Text()
	if valueSelector != "" {
		if v := findSafe(s, valueSelector); v.Length() > 0 {
			probe = v.First().Text()
		}
	}
	for _, m := range threeDigitsRe.FindAllStringSubmatch(probe, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && validScore(n) {
			return n, true
		}
	}
	return 0, false
}

// precedingBureau finds the bureau mentioned closest before a text
// offset, within a short window.
func precedingBureau(text string, offset int) model.Bureau {
	start := offset - 120
	if start < 0 {
		start = 0
	}
	window := strings.ToLower(text[start:offset])
	best := model.Bureau("")
	bestPos := -1
	for _, name := range []string{"transunion", "trans union", "experian", "equifax"} {
		if pos := strings.LastIndex(window, name); pos > bestPos {
			bestPos = pos
			best = bureauFromText(name)
		}
	}
	return best
}
