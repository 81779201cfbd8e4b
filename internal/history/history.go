package history

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"l10nlint/internal/compare"
)

// Store persists one row per compared file pair so lint results can be
// tracked across runs. It is optional: the CLI only opens it when a
// database URL is configured.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore connects to PostgreSQL and ensures the schema exists.
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect PostgreSQL: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping PostgreSQL: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	log.Info().Msg("Connected to PostgreSQL")
	return s, nil
}

func (s *Store) Close() { s.pool.Close() }

func (s *Store) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS lint_runs (
			id         BIGSERIAL PRIMARY KEY,
			run_at     TIMESTAMPTZ NOT NULL,
			project    TEXT NOT NULL,
			locale     TEXT NOT NULL,
			file       TEXT NOT NULL,
			total      INT NOT NULL,
			missing    INT NOT NULL,
			obsolete   INT NOT NULL,
			unchanged  INT NOT NULL,
			changed    INT NOT NULL,
			errors     INT NOT NULL,
			warnings   INT NOT NULL,
			duplicates INT NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("ensure lint_runs schema: %w", err)
	}
	return nil
}

// RecordRun stores the per-file summaries of one run under a shared
// timestamp.
func (s *Store) RecordRun(ctx context.Context, project string, summaries []compare.Summary) error {
	runAt := time.Now().UTC()
	for _, sum := range summaries {
		_, err := s.pool.Exec(ctx, `
			INSERT INTO lint_runs
				(run_at, project, locale, file, total, missing, obsolete,
				 unchanged, changed, errors, warnings, duplicates)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			runAt, project, sum.Locale, sum.File,
			sum.Total, sum.Missing, sum.Obsolete, sum.Unchanged,
			sum.Changed, sum.Errors, sum.Warnings, sum.Duplicates,
		)
		if err != nil {
			return fmt.Errorf("record summary for %s/%s: %w", sum.Locale, sum.File, err)
		}
	}
	log.Info().Int("files", len(summaries)).Str("project", project).Msg("Recorded run history")
	return nil
}

// RunRecord is one aggregated history row.
type RunRecord struct {
	RunAt   time.Time
	Project string
	Locale  string
	Counts  compare.Counts
}

// ListRuns returns the most recent runs, newest first, aggregated per
// (run, locale).
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT run_at, project, locale,
		       SUM(total), SUM(missing), SUM(obsolete), SUM(unchanged),
		       SUM(changed), SUM(errors), SUM(warnings), SUM(duplicates)
		FROM lint_runs
		GROUP BY run_at, project, locale
		ORDER BY run_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(&r.RunAt, &r.Project, &r.Locale,
			&r.Counts.Total, &r.Counts.Missing, &r.Counts.Obsolete, &r.Counts.Unchanged,
			&r.Counts.Changed, &r.Counts.Errors, &r.Counts.Warnings, &r.Counts.Duplicates,
		); err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
