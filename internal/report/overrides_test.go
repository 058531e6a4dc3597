package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"
)

func writeOverrides(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vendors.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadVendorOverrides_EmptyPathReturnsDefaults(t *testing.T) {
	r, err := LoadVendorOverrides("")
	require.NoError(t, err)
	assert.Len(t, r.Vendors(), 5)
}

func TestLoadVendorOverrides_MissingFileReturnsDefaults(t *testing.T) {
	r, err := LoadVendorOverrides(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Len(t, r.Vendors(), 5)
}

func TestLoadVendorOverrides_MarkersAccumulate(t *testing.T) {
	path := writeOverrides(t, `
vendors:
  - vendor: transunion
    markers: ["tu-rebrand-2026"]
`)
	r, err := LoadVendorOverrides(path)
	require.NoError(t, err)

	// New marker detects, and the stock markers still work.
	assert.Equal(t, model.VendorTransUnion, r.Detect("header tu-rebrand-2026 body"))
	assert.Equal(t, model.VendorTransUnion, r.Detect("provided by TransUnion"))
}

func TestLoadVendorOverrides_SelectorReplaces(t *testing.T) {
	path := writeOverrides(t, `
vendors:
  - vendor: transunion
    account_entry_selector: ".custom-tradeline"
    creditor_field_selector: ".custom-creditor"
`)
	r, err := LoadVendorOverrides(path)
	require.NoError(t, err)

	p, err := r.Get(model.VendorTransUnion)
	require.NoError(t, err)

	doc := `<html><body>
<div class="custom-tradeline">
  <div class="custom-creditor">WELLS FARGO</div>
  <div>Account Number: 777</div>
</div>
</body></html>`
	data := p.Parse(doc)
	require.Len(t, data.Accounts, 1)
	assert.Equal(t, "WELLS FARGO", data.Accounts[0].CreditorName)
}

func TestLoadVendorOverrides_MalformedYAML(t *testing.T) {
	path := writeOverrides(t, "vendors: [unclosed")
	_, err := LoadVendorOverrides(path)
	require.Error(t, err)
}

func TestLoadVendorOverrides_UnknownVendor(t *testing.T) {
	path := writeOverrides(t, `
vendors:
  - vendor: equihax
`)
	_, err := LoadVendorOverrides(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown vendor")
}

// An operator-supplied selector cascadia cannot compile must not take the
// parser down.
func TestParse_InvalidOverrideSelectorDoesNotPanic(t *testing.T) {
	path := writeOverrides(t, `
vendors:
  - vendor: transunion
    score_container_selector: "[[["
`)
	r, err := LoadVendorOverrides(path)
	require.NoError(t, err)

	p, err := r.Get(model.VendorTransUnion)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		data := p.Parse(transUnionReport)
		assert.NotNil(t, data)
	})
}

func TestParse_InvalidOverridePatternDisabled(t *testing.T) {
	path := writeOverrides(t, `
vendors:
  - vendor: generic
    preferred_score_pattern: "([unclosed"
`)
	r, err := LoadVendorOverrides(path)
	require.NoError(t, err)

	p, err := r.Get(model.VendorGeneric)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		data := p.Parse("Equifax 700")
		// The bare bureau-adjacent fallback still works.
		assert.Equal(t, 700, data.Scores[model.BureauEquifax])
	})
}
