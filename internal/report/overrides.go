package report

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"
)

// overrideFile is the YAML shape for vendor pattern overrides: a list of
// partial Configs keyed by vendor. Report markup changes faster than this
// binary ships, so operators can patch selector sets without a rebuild.
type overrideFile struct {
	Vendors []Config `yaml:"vendors"`
}

// LoadVendorOverrides builds the default registry, then applies partial
// Configs from a YAML file. A missing path returns the defaults
// unchanged; a malformed file is an error.
func LoadVendorOverrides(path string) (*Registry, error) {
	registry := DefaultRegistry()
	if path == "" {
		return registry, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return registry, nil
		}
		return nil, eris.Wrapf(err, "report: read overrides %s", path)
	}

	var of overrideFile
	if err := yaml.Unmarshal(raw, &of); err != nil {
		return nil, eris.Wrapf(err, "report: parse overrides %s", path)
	}

	for _, patch := range of.Vendors {
		base, err := baseConfig(patch.Vendor)
		if err != nil {
			return nil, err
		}
		registry.Register(NewParser(mergeConfig(base, patch)))
	}
	return registry, nil
}

func baseConfig(v model.Vendor) (Config, error) {
	switch v {
	case model.VendorTransUnion:
		return TransUnionConfig, nil
	case model.VendorSmartCredit:
		return SmartCreditConfig, nil
	case model.VendorPrivacyGuard:
		return PrivacyGuardConfig, nil
	case model.VendorMyScoreIQ:
		return MyScoreIQConfig, nil
	case model.VendorGeneric:
		return GenericConfig, nil
	}
	return Config{}, eris.Errorf("report: override for unknown vendor %q", v)
}

// mergeConfig overlays non-empty patch fields onto the base config.
// Markers accumulate; everything else replaces.
func mergeConfig(base, patch Config) Config {
	out := base
	out.Markers = append(out.Markers, patch.Markers...)
	if patch.DefaultBureau != "" {
		out.DefaultBureau = patch.DefaultBureau
	}
	if patch.ScoreContainerSelector != "" {
		out.ScoreContainerSelector = patch.ScoreContainerSelector
	}
	if patch.ScoreBureauAttr != "" {
		out.ScoreBureauAttr = patch.ScoreBureauAttr
	}
	if patch.ScoreValueSelector != "" {
		out.ScoreValueSelector = patch.ScoreValueSelector
	}
	if patch.PreferredScorePattern != "" {
		out.PreferredScorePattern = patch.PreferredScorePattern
	}
	if patch.AccountEntrySelector != "" {
		out.AccountEntrySelector = patch.AccountEntrySelector
	}
	if patch.CreditorFieldSelector != "" {
		out.CreditorFieldSelector = patch.CreditorFieldSelector
	}
	if patch.EntryBureauAttr != "" {
		out.EntryBureauAttr = patch.EntryBureauAttr
	}
	if patch.TableSelector != "" {
		out.TableSelector = patch.TableSelector
	}
	if patch.AccountStartPattern != "" {
		out.AccountStartPattern = patch.AccountStartPattern
	}
	if patch.NegativeSectionSelector != "" {
		out.NegativeSectionSelector = patch.NegativeSectionSelector
	}
	if patch.InquiryEntrySelector != "" {
		out.InquiryEntrySelector = patch.InquiryEntrySelector
	}
	if patch.InquiriesHeading != "" {
		out.InquiriesHeading = patch.InquiriesHeading
	}
	if patch.NameSelector != "" {
		out.NameSelector = patch.NameSelector
	}
	if patch.AddressSelector != "" {
		out.AddressSelector = patch.AddressSelector
	}
	return out
}
