// Package report parses vendor credit report documents (HTML markup or
// extracted plain text) into normalized ParsedCreditData. One cascade
// engine runs per-vendor Configs: structured selectors first, then table
// inference, then free-text regexes, with a dedup set threaded through
// the strategies so the first occurrence of a tradeline wins.
//
// Parsing never fails: malformed or empty input yields a well-formed
// empty result with RawText set.
package report

import (
	"strings"

	"github.com/rotisserie/eris"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"
)

// Parser parses documents for a single vendor.
type Parser struct {
	cc *compiled
}

// NewParser builds a Parser from a vendor Config.
func NewParser(cfg Config) *Parser {
	return &Parser{cc: cfg.compile()}
}

// Vendor returns the vendor this parser handles.
func (p *Parser) Vendor() model.Vendor { return p.cc.cfg.Vendor }

// Parse extracts structured credit data from a report document. It never
// returns an error and never panics; any field the document does not
// yield is simply absent.
func (p *Parser) Parse(document string) *model.ParsedCreditData {
	doc := loadHTML(document)
	text := plainText(doc, document)

	data := model.NewParsedCreditData(text)
	data.Scores = extractScores(doc, text, p.cc)
	data.ConsumerProfile = extractProfile(doc, text, p.cc)

	seen := make(seenSet)
	accounts := data.Accounts
	accounts = append(accounts, extractAccountEntries(doc, p.cc, seen)...)
	accounts = append(accounts, extractAccountTables(doc, p.cc, seen)...)
	accounts = append(accounts, extractAccountText(text, p.cc, seen)...)
	data.Accounts = accounts

	data.NegativeItems = extractNegatives(doc, accounts, p.cc)
	data.Inquiries = extractInquiries(doc, text, p.cc)
	data.Summary = Summarize(accounts)
	return data
}

// Registry maps vendor names to parsers, in registration order.
type Registry struct {
	parsers map[model.Vendor]*Parser
	order   []model.Vendor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[model.Vendor]*Parser)}
}

// Register adds a parser for its vendor.
func (r *Registry) Register(p *Parser) {
	v := p.Vendor()
	if _, ok := r.parsers[v]; !ok {
		r.order = append(r.order, v)
	}
	r.parsers[v] = p
}

// Get returns the parser for a vendor.
func (r *Registry) Get(vendor model.Vendor) (*Parser, error) {
	p, ok := r.parsers[vendor]
	if !ok {
		return nil, eris.Errorf("report: unknown vendor %q", vendor)
	}
	return p, nil
}

// Vendors returns registered vendors in registration order.
func (r *Registry) Vendors() []model.Vendor {
	out := make([]model.Vendor, len(r.order))
	copy(out, r.order)
	return out
}

// Detect picks the vendor whose markers appear in the document, falling
// back to the generic parser. Vendors are checked in registration order;
// generic is always last.
func (r *Registry) Detect(document string) model.Vendor {
	lower := strings.ToLower(document)
	for _, v := range r.order {
		if v == model.VendorGeneric {
			continue
		}
		for _, marker := range r.parsers[v].cc.cfg.Markers {
			if strings.Contains(lower, strings.ToLower(marker)) {
				return v
			}
		}
	}
	return model.VendorGeneric
}

// ParseAuto detects the vendor and parses in one step.
func (r *Registry) ParseAuto(document string) (model.Vendor, *model.ParsedCreditData, error) {
	vendor := r.Detect(document)
	p, err := r.Get(vendor)
	if err != nil {
		return vendor, nil, err
	}
	return vendor, p.Parse(document), nil
}
