package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/config"
	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/letter"
	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"
	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/report"
	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/store"
)

// fakeStore implements store.Store in memory for handler tests.
type fakeStore struct {
	reports  []model.ReportRecord
	saveErr  error
	listErr  error
	disputes []model.DisputeRecord
}

func (f *fakeStore) SaveReport(_ context.Context, vendor model.Vendor, source string, data *model.ParsedCreditData) (*model.ReportRecord, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	rec := model.ReportRecord{ID: "rec-1", Vendor: vendor, Source: source, Data: data}
	f.reports = append(f.reports, rec)
	return &rec, nil
}

func (f *fakeStore) GetReport(_ context.Context, id string) (*model.ReportRecord, error) {
	for i := range f.reports {
		if f.reports[i].ID == id {
			return &f.reports[i], nil
		}
	}
	return nil, assert.AnError
}

func (f *fakeStore) ListReports(_ context.Context, filter store.ReportFilter) ([]model.ReportRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []model.ReportRecord
	for _, r := range f.reports {
		if filter.Vendor == "" || r.Vendor == filter.Vendor {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateDispute(_ context.Context, d model.DisputeRecord) (*model.DisputeRecord, error) {
	d.ID = "disp-1"
	f.disputes = append(f.disputes, d)
	return &d, nil
}

func (f *fakeStore) ListDisputes(_ context.Context, _ string) ([]model.DisputeRecord, error) {
	return f.disputes, nil
}

func (f *fakeStore) SaveLetterScore(_ context.Context, rec model.LetterScoreRecord) (*model.LetterScoreRecord, error) {
	rec.ID = "score-1"
	return &rec, nil
}

func (f *fakeStore) Migrate(_ context.Context) error { return nil }
func (f *fakeStore) Close() error                    { return nil }

func newTestRouter(t *testing.T, st store.Store) http.Handler {
	t.Helper()
	cfg = &config.Config{}
	cfg.Parser.MaxDocumentBytes = 4 << 20

	registry, err := report.LoadVendorOverrides("")
	require.NoError(t, err)

	return newRouter(&environment{Registry: registry, Store: st}, nil)
}

func postJSON(t *testing.T, router http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, &fakeStore{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestParseEndpoint_AutoDetect(t *testing.T) {
	router := newTestRouter(t, &fakeStore{})

	rr := postJSON(t, router, "/parse", map[string]any{
		"document": "<html><body>TransUnion Credit Report</body></html>",
	})

	assert.Equal(t, http.StatusOK, rr.Code)

	var rec model.ReportRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rec))
	assert.Equal(t, model.VendorTransUnion, rec.Vendor)
	require.NotNil(t, rec.Data)
	assert.Empty(t, rec.ID) // not saved
}

func TestParseEndpoint_ExplicitVendorAndSave(t *testing.T) {
	st := &fakeStore{}
	router := newTestRouter(t, st)

	rr := postJSON(t, router, "/parse", map[string]any{
		"document": "<html><body>some report</body></html>",
		"vendor":   "generic",
		"source":   "upload.html",
		"save":     true,
	})

	assert.Equal(t, http.StatusOK, rr.Code)

	var rec model.ReportRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rec))
	assert.Equal(t, "rec-1", rec.ID)
	assert.Equal(t, model.VendorGeneric, rec.Vendor)
	assert.Equal(t, "upload.html", rec.Source)
	assert.Len(t, st.reports, 1)
}

func TestParseEndpoint_UnknownVendor(t *testing.T) {
	router := newTestRouter(t, &fakeStore{})

	rr := postJSON(t, router, "/parse", map[string]any{
		"document": "<html></html>",
		"vendor":   "creditkarma",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "unknown vendor")
}

func TestParseEndpoint_MissingDocument(t *testing.T) {
	router := newTestRouter(t, &fakeStore{})

	rr := postJSON(t, router, "/parse", map[string]any{"vendor": "generic"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "document is required")
}

func TestParseEndpoint_InvalidJSON(t *testing.T) {
	router := newTestRouter(t, &fakeStore{})

	req := httptest.NewRequest(http.MethodPost, "/parse", bytes.NewReader([]byte("not json")))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid request body")
}

func TestReportsEndpoint_VendorFilter(t *testing.T) {
	st := &fakeStore{reports: []model.ReportRecord{
		{ID: "a", Vendor: model.VendorTransUnion},
		{ID: "b", Vendor: model.VendorSmartCredit},
	}}
	router := newTestRouter(t, st)

	req := httptest.NewRequest(http.MethodGet, "/reports?vendor=smartcredit", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var records []model.ReportRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "b", records[0].ID)
}

func TestReportsEndpoint_StoreError(t *testing.T) {
	router := newTestRouter(t, &fakeStore{listErr: assert.AnError})

	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "failed to list reports")
}

func TestValidateDisputeEndpoint_HighRiskBlocked(t *testing.T) {
	router := newTestRouter(t, &fakeStore{})

	rr := postJSON(t, router, "/disputes/validate", map[string]any{
		"reason_codes": []string{"identity_theft"},
	})

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		IsValid      bool   `json:"is_valid"`
		CanOverride  bool   `json:"can_override"`
		RiskLevel    string `json:"risk_level"`
		Requirements struct {
			BlockingRequired []string `json:"blocking_required"`
		} `json:"requirements"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.IsValid)
	assert.True(t, resp.CanOverride)
	assert.Equal(t, "high", resp.RiskLevel)
	assert.NotEmpty(t, resp.Requirements.BlockingRequired)
}

func TestValidateDisputeEndpoint_MissingCodes(t *testing.T) {
	router := newTestRouter(t, &fakeStore{})

	rr := postJSON(t, router, "/disputes/validate", map[string]any{"evidence_ids": []string{"doc-1"}})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "reason_codes is required")
}

func TestScoreLetterEndpoint(t *testing.T) {
	router := newTestRouter(t, &fakeStore{})

	rr := postJSON(t, router, "/letters/score", map[string]any{
		"analyses": []letter.Analysis{
			{Violations: 8, Citations: 6, Confidence: 0.9},
		},
		"has_evidence":   true,
		"evidence_count": 4,
		"round":          2,
		"methodology":    letter.MethodologyFactual,
	})

	assert.Equal(t, http.StatusOK, rr.Code)

	var score letter.StrengthScore
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &score))
	assert.Greater(t, score.OverallScore, 0.0)
	assert.LessOrEqual(t, score.OverallScore, 10.0)
}
