package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/config"
	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestSQLiteStore_SaveAndGetReport(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	data := model.NewParsedCreditData("raw report text")
	data.Scores[model.BureauTransUnion] = 712

	rec, err := s.SaveReport(ctx, model.VendorTransUnion, "report.html", data)
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())

	got, err := s.GetReport(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, model.VendorTransUnion, got.Vendor)
	assert.Equal(t, "report.html", got.Source)
	require.NotNil(t, got.Data)
	assert.Equal(t, "raw report text", got.Data.RawText)
	assert.Equal(t, 712, got.Data.Scores[model.BureauTransUnion])
}

func TestSQLiteStore_GetReport_NotFound(t *testing.T) {
	s := newTestSQLiteStore(t)

	_, err := s.GetReport(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteStore_ListReports(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	_, err := s.SaveReport(ctx, model.VendorTransUnion, "a.html", model.NewParsedCreditData(""))
	require.NoError(t, err)
	_, err = s.SaveReport(ctx, model.VendorSmartCredit, "b.html", model.NewParsedCreditData(""))
	require.NoError(t, err)
	_, err = s.SaveReport(ctx, model.VendorTransUnion, "c.html", model.NewParsedCreditData(""))
	require.NoError(t, err)

	all, err := s.ListReports(ctx, ReportFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	tu, err := s.ListReports(ctx, ReportFilter{Vendor: model.VendorTransUnion})
	require.NoError(t, err)
	require.Len(t, tu, 2)
	for _, r := range tu {
		assert.Equal(t, model.VendorTransUnion, r.Vendor)
	}

	limited, err := s.ListReports(ctx, ReportFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSQLiteStore_CreateDispute_Defaults(t *testing.T) {
	s := newTestSQLiteStore(t)

	rec, err := s.CreateDispute(context.Background(), model.DisputeRecord{
		Creditor:    "MIDLAND FUNDING",
		ReasonCodes: []string{"paid_collection"},
		EvidenceIDs: []string{"receipt-1"},
		RiskLevel:   "medium",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, model.DisputeStatusDraft, rec.Status)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestSQLiteStore_ListDisputes_FilterByReport(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	report, err := s.SaveReport(ctx, model.VendorGeneric, "", model.NewParsedCreditData(""))
	require.NoError(t, err)

	_, err = s.CreateDispute(ctx, model.DisputeRecord{
		ReportID:    report.ID,
		Creditor:    "CAPITAL ONE",
		ReasonCodes: []string{"incorrect_balance"},
		EvidenceIDs: []string{},
		RiskLevel:   "low",
	})
	require.NoError(t, err)
	_, err = s.CreateDispute(ctx, model.DisputeRecord{
		Creditor:    "SYNCHRONY BANK",
		ReasonCodes: []string{"not_mine"},
		EvidenceIDs: []string{},
		RiskLevel:   "low",
	})
	require.NoError(t, err)

	forReport, err := s.ListDisputes(ctx, report.ID)
	require.NoError(t, err)
	require.Len(t, forReport, 1)
	assert.Equal(t, "CAPITAL ONE", forReport[0].Creditor)
	assert.Equal(t, []string{"incorrect_balance"}, forReport[0].ReasonCodes)

	all, err := s.ListDisputes(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSQLiteStore_SaveLetterScore(t *testing.T) {
	s := newTestSQLiteStore(t)

	rec, err := s.SaveLetterScore(context.Background(), model.LetterScoreRecord{
		Round:       2,
		Methodology: "hybrid",
		Overall:     6.8,
		Suggestions: []string{"cite FCRA sections", "attach supporting documents"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestSQLiteStore_MigrateIdempotent(t *testing.T) {
	s := newTestSQLiteStore(t)

	// Tables already exist from the helper; a second run must not fail.
	require.NoError(t, s.Migrate(context.Background()))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.StoreConfig{Driver: "mysql", DatabaseURL: "dsn"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown driver")
}
