package store

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"
)

// Pool is the subset of pgxpool.Pool used by the store. Tests substitute
// a pgxmock pool through the same interface.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    Pool
	closeFn func()
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	pgxCfg.MaxConns = 10
	pgxCfg.MinConns = 2
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

// NewPostgresWithPool wraps an existing pool, used by tests.
func NewPostgresWithPool(pool Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS reports (
	id         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	vendor     TEXT NOT NULL,
	source     TEXT,
	data       JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS disputes (
	id           TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	report_id    TEXT REFERENCES reports(id),
	creditor     TEXT NOT NULL,
	reason_codes JSONB NOT NULL,
	evidence_ids JSONB NOT NULL,
	risk_level   TEXT NOT NULL,
	overridden   BOOLEAN NOT NULL DEFAULT false,
	status       TEXT NOT NULL DEFAULT 'draft',
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS letter_scores (
	id          TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	dispute_id  TEXT REFERENCES disputes(id),
	round       INTEGER NOT NULL,
	methodology TEXT NOT NULL,
	overall     DOUBLE PRECISION NOT NULL,
	suggestions JSONB NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_reports_vendor ON reports(vendor);
CREATE INDEX IF NOT EXISTS idx_disputes_report_id ON disputes(report_id);
CREATE INDEX IF NOT EXISTS idx_letter_scores_dispute_id ON letter_scores(dispute_id);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

func (s *PostgresStore) SaveReport(ctx context.Context, vendor model.Vendor, source string, data *model.ParsedCreditData) (*model.ReportRecord, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: marshal report data")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO reports (id, vendor, source, data, created_at) VALUES ($1, $2, $3, $4, $5)`,
		id, string(vendor), source, payload, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert report")
	}

	return &model.ReportRecord{ID: id, Vendor: vendor, Source: source, Data: data, CreatedAt: now}, nil
}

func (s *PostgresStore) GetReport(ctx context.Context, id string) (*model.ReportRecord, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, vendor, source, data, created_at FROM reports WHERE id = $1`, id)

	var rec model.ReportRecord
	var payload []byte
	var source *string
	if err := row.Scan(&rec.ID, &rec.Vendor, &source, &payload, &rec.CreatedAt); err != nil {
		if eris.Is(err, pgx.ErrNoRows) {
			return nil, eris.Errorf("postgres: report %s not found", id)
		}
		return nil, eris.Wrapf(err, "postgres: get report %s", id)
	}
	if source != nil {
		rec.Source = *source
	}
	if err := json.Unmarshal(payload, &rec.Data); err != nil {
		return nil, eris.Wrapf(err, "postgres: unmarshal report %s", id)
	}
	return &rec, nil
}

func (s *PostgresStore) ListReports(ctx context.Context, filter ReportFilter) ([]model.ReportRecord, error) {
	query := `SELECT id, vendor, source, data, created_at FROM reports`
	var args []any
	if filter.Vendor != "" {
		query += ` WHERE vendor = $1`
		args = append(args, string(filter.Vendor))
	}
	query += ` ORDER BY created_at DESC`
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit)
	query += ` LIMIT $` + strconv.Itoa(len(args))
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list reports")
	}
	defer rows.Close()

	var out []model.ReportRecord
	for rows.Next() {
		var rec model.ReportRecord
		var payload []byte
		var source *string
		if err := rows.Scan(&rec.ID, &rec.Vendor, &source, &payload, &rec.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan report")
		}
		if source != nil {
			rec.Source = *source
		}
		if err := json.Unmarshal(payload, &rec.Data); err != nil {
			return nil, eris.Wrapf(err, "postgres: unmarshal report %s", rec.ID)
		}
		out = append(out, rec)
	}
	return out, eris.Wrap(rows.Err(), "postgres: iterate reports")
}

func (s *PostgresStore) CreateDispute(ctx context.Context, d model.DisputeRecord) (*model.DisputeRecord, error) {
	d.ID = uuid.New().String()
	d.CreatedAt = time.Now().UTC()
	if d.Status == "" {
		d.Status = model.DisputeStatusDraft
	}

	codes, err := json.Marshal(d.ReasonCodes)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: marshal reason codes")
	}
	evidence, err := json.Marshal(d.EvidenceIDs)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: marshal evidence ids")
	}

	var reportID *string
	if d.ReportID != "" {
		reportID = &d.ReportID
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO disputes (id, report_id, creditor, reason_codes, evidence_ids, risk_level, overridden, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		d.ID, reportID, d.Creditor, codes, evidence, d.RiskLevel, d.Overridden, string(d.Status), d.CreatedAt,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert dispute")
	}
	return &d, nil
}

func (s *PostgresStore) ListDisputes(ctx context.Context, reportID string) ([]model.DisputeRecord, error) {
	query := `SELECT id, report_id, creditor, reason_codes, evidence_ids, risk_level, overridden, status, created_at FROM disputes`
	var args []any
	if reportID != "" {
		query += ` WHERE report_id = $1`
		args = append(args, reportID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list disputes")
	}
	defer rows.Close()

	var out []model.DisputeRecord
	for rows.Next() {
		var d model.DisputeRecord
		var repID *string
		var codes, evidence []byte
		if err := rows.Scan(&d.ID, &repID, &d.Creditor, &codes, &evidence, &d.RiskLevel, &d.Overridden, &d.Status, &d.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan dispute")
		}
		if repID != nil {
			d.ReportID = *repID
		}
		if err := json.Unmarshal(codes, &d.ReasonCodes); err != nil {
			return nil, eris.Wrapf(err, "postgres: unmarshal dispute %s", d.ID)
		}
		if err := json.Unmarshal(evidence, &d.EvidenceIDs); err != nil {
			return nil, eris.Wrapf(err, "postgres: unmarshal dispute %s", d.ID)
		}
		out = append(out, d)
	}
	return out, eris.Wrap(rows.Err(), "postgres: iterate disputes")
}

func (s *PostgresStore) SaveLetterScore(ctx context.Context, rec model.LetterScoreRecord) (*model.LetterScoreRecord, error) {
	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()

	suggestions, err := json.Marshal(rec.Suggestions)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: marshal suggestions")
	}

	var disputeID *string
	if rec.DisputeID != "" {
		disputeID = &rec.DisputeID
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO letter_scores (id, dispute_id, round, methodology, overall, suggestions, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID, disputeID, rec.Round, rec.Methodology, rec.Overall, suggestions, rec.CreatedAt,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert letter score")
	}
	return &rec, nil
}
