// Package store persists parse results, disputes, and letter scores.
// The core parsers know nothing about it; they hand over immutable
// values and this package owns keys and schema.
package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/config"
	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"
)

// ReportFilter specifies criteria for listing reports.
type ReportFilter struct {
	Vendor model.Vendor `json:"vendor,omitempty"`
	Limit  int          `json:"limit,omitempty"`
	Offset int          `json:"offset,omitempty"`
}

// Store defines the persistence interface for parse and dispute records.
type Store interface {
	// Reports
	SaveReport(ctx context.Context, vendor model.Vendor, source string, data *model.ParsedCreditData) (*model.ReportRecord, error)
	GetReport(ctx context.Context, id string) (*model.ReportRecord, error)
	ListReports(ctx context.Context, filter ReportFilter) ([]model.ReportRecord, error)

	// Disputes
	CreateDispute(ctx context.Context, d model.DisputeRecord) (*model.DisputeRecord, error)
	ListDisputes(ctx context.Context, reportID string) ([]model.DisputeRecord, error)

	// Letter scores
	SaveLetterScore(ctx context.Context, s model.LetterScoreRecord) (*model.LetterScoreRecord, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

// Open creates a Store from config.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case "sqlite", "":
		return NewSQLite(cfg.DatabaseURL)
	case "postgres":
		return NewPostgres(ctx, cfg.DatabaseURL)
	default:
		return nil, eris.Errorf("store: unknown driver %q", cfg.Driver)
	}
}
