package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"
)

func TestParse_ScoresOutOfRangeDiscarded(t *testing.T) {
	doc := `TransUnion 275
Experian 900
Equifax 700`
	p := NewParser(GenericConfig)
	data := p.Parse(doc)

	// 275 and 900 are outside [300, 850]: discarded, never clamped.
	assert.Equal(t, map[model.Bureau]int{model.BureauEquifax: 700}, data.Scores)
}

func TestParse_ScoresFirstValidPerBureauWins(t *testing.T) {
	doc := `Equifax 710
Equifax 650`
	p := NewParser(GenericConfig)
	data := p.Parse(doc)

	assert.Equal(t, 710, data.Scores[model.BureauEquifax])
}

func TestParse_TriBureauScores(t *testing.T) {
	doc := `<html><body>
<div class="score-card" data-bureau="transunion"><span class="score-number">712</span></div>
<div class="score-card" data-bureau="experian"><span class="score-number">705</span></div>
<div class="score-card" data-bureau="equifax"><span class="score-number">698</span></div>
SmartCredit report
</body></html>`
	p := NewParser(SmartCreditConfig)
	data := p.Parse(doc)

	assert.Equal(t, map[model.Bureau]int{
		model.BureauTransUnion: 712,
		model.BureauExperian:   705,
		model.BureauEquifax:    698,
	}, data.Scores)
}

func TestParse_UnattributedCompositeDropsWithoutDefaultBureau(t *testing.T) {
	// Generic has no default bureau; a composite with no nearby bureau
	// mention cannot be attributed.
	p := NewParser(GenericConfig)
	data := p.Parse("Your credit score is 722 today")

	assert.Empty(t, data.Scores)
}

func TestParse_CompositeFallsBackToDefaultBureau(t *testing.T) {
	p := NewParser(TransUnionConfig)
	data := p.Parse("VantageScore 3.0: 731")

	assert.Equal(t, 731, data.Scores[model.BureauTransUnion])
}

func TestValidScore(t *testing.T) {
	assert.False(t, validScore(299))
	assert.True(t, validScore(300))
	assert.True(t, validScore(850))
	assert.False(t, validScore(851))
	assert.False(t, validScore(0))
}
