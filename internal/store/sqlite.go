package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS reports (
	id         TEXT PRIMARY KEY,
	vendor     TEXT NOT NULL,
	source     TEXT,
	data       TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS disputes (
	id           TEXT PRIMARY KEY,
	report_id    TEXT REFERENCES reports(id),
	creditor     TEXT NOT NULL,
	reason_codes TEXT NOT NULL,
	evidence_ids TEXT NOT NULL,
	risk_level   TEXT NOT NULL,
	overridden   INTEGER NOT NULL DEFAULT 0,
	status       TEXT NOT NULL DEFAULT 'draft',
	created_at   DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS letter_scores (
	id          TEXT PRIMARY KEY,
	dispute_id  TEXT REFERENCES disputes(id),
	round       INTEGER NOT NULL,
	methodology TEXT NOT NULL,
	overall     REAL NOT NULL,
	suggestions TEXT NOT NULL,
	created_at  DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_reports_vendor ON reports(vendor);
CREATE INDEX IF NOT EXISTS idx_disputes_report_id ON disputes(report_id);
CREATE INDEX IF NOT EXISTS idx_letter_scores_dispute_id ON letter_scores(dispute_id);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveReport(ctx context.Context, vendor model.Vendor, source string, data *model.ParsedCreditData) (*model.ReportRecord, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal report data")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO reports (id, vendor, source, data, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, string(vendor), source, string(payload), now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert report")
	}

	return &model.ReportRecord{ID: id, Vendor: vendor, Source: source, Data: data, CreatedAt: now}, nil
}

func (s *SQLiteStore) GetReport(ctx context.Context, id string) (*model.ReportRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, vendor, source, data, created_at FROM reports WHERE id = ?`, id)

	var rec model.ReportRecord
	var payload string
	var source sql.NullString
	if err := row.Scan(&rec.ID, &rec.Vendor, &source, &payload, &rec.CreatedAt); err != nil {
		if eris.Is(err, sql.ErrNoRows) {
			return nil, eris.Errorf("sqlite: report %s not found", id)
		}
		return nil, eris.Wrapf(err, "sqlite: get report %s", id)
	}
	rec.Source = source.String

	if err := json.Unmarshal([]byte(payload), &rec.Data); err != nil {
		return nil, eris.Wrapf(err, "sqlite: unmarshal report %s", id)
	}
	return &rec, nil
}

func (s *SQLiteStore) ListReports(ctx context.Context, filter ReportFilter) ([]model.ReportRecord, error) {
	query := `SELECT id, vendor, source, data, created_at FROM reports`
	var args []any
	if filter.Vendor != "" {
		query += ` WHERE vendor = ?`
		args = append(args, string(filter.Vendor))
	}
	query += ` ORDER BY created_at DESC`
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query += ` LIMIT ?`
	args = append(args, limit)
	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list reports")
	}
	defer rows.Close()

	var out []model.ReportRecord
	for rows.Next() {
		var rec model.ReportRecord
		var payload string
		var source sql.NullString
		if err := rows.Scan(&rec.ID, &rec.Vendor, &source, &payload, &rec.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan report")
		}
		rec.Source = source.String
		if err := json.Unmarshal([]byte(payload), &rec.Data); err != nil {
			return nil, eris.Wrapf(err, "sqlite: unmarshal report %s", rec.ID)
		}
		out = append(out, rec)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: iterate reports")
}

func (s *SQLiteStore) CreateDispute(ctx context.Context, d model.DisputeRecord) (*model.DisputeRecord, error) {
	d.ID = uuid.New().String()
	d.CreatedAt = time.Now().UTC()
	if d.Status == "" {
		d.Status = model.DisputeStatusDraft
	}

	codes, err := json.Marshal(d.ReasonCodes)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal reason codes")
	}
	evidence, err := json.Marshal(d.EvidenceIDs)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal evidence ids")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO disputes (id, report_id, creditor, reason_codes, evidence_ids, risk_level, overridden, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, nullable(d.ReportID), d.Creditor, string(codes), string(evidence),
		d.RiskLevel, d.Overridden, string(d.Status), d.CreatedAt,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert dispute")
	}
	return &d, nil
}

func (s *SQLiteStore) ListDisputes(ctx context.Context, reportID string) ([]model.DisputeRecord, error) {
	query := `SELECT id, report_id, creditor, reason_codes, evidence_ids, risk_level, overridden, status, created_at FROM disputes`
	var args []any
	if reportID != "" {
		query += ` WHERE report_id = ?`
		args = append(args, reportID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list disputes")
	}
	defer rows.Close()

	var out []model.DisputeRecord
	for rows.Next() {
		var d model.DisputeRecord
		var repID sql.NullString
		var codes, evidence string
		if err := rows.Scan(&d.ID, &repID, &d.Creditor, &codes, &evidence, &d.RiskLevel, &d.Overridden, &d.Status, &d.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan dispute")
		}
		d.ReportID = repID.String
		if err := json.Unmarshal([]byte(codes), &d.ReasonCodes); err != nil {
			return nil, eris.Wrapf(err, "sqlite: unmarshal dispute %s", d.ID)
		}
		if err := json.Unmarshal([]byte(evidence), &d.EvidenceIDs); err != nil {
			return nil, eris.Wrapf(err, "sqlite: unmarshal dispute %s", d.ID)
		}
		out = append(out, d)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: iterate disputes")
}

func (s *SQLiteStore) SaveLetterScore(ctx context.Context, rec model.LetterScoreRecord) (*model.LetterScoreRecord, error) {
	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()

	suggestions, err := json.Marshal(rec.Suggestions)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal suggestions")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO letter_scores (id, dispute_id, round, methodology, overall, suggestions, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, nullable(rec.DisputeID), rec.Round, rec.Methodology, rec.Overall, string(suggestions), rec.CreatedAt,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert letter score")
	}
	return &rec, nil
}

// nullable maps "" to NULL for optional foreign keys.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
