package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"cricket-stats/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

// QueryLogEntry records one executed record search for the front-page
// "recent searches" panel.
type QueryLogEntry struct {
	ID          string
	Domain      domain.Domain
	Dimension   domain.Dimension
	MatchType   int
	ResultCount int
	Duration    time.Duration
	CreatedAt   time.Time
}

type QueryLogRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewQueryLogRepository(sqlDB *sql.DB, logger zerolog.Logger) *QueryLogRepository {
	return &QueryLogRepository{db: sqlDB, logger: logger}
}

func (r *QueryLogRepository) Record(ctx context.Context, e QueryLogEntry) error {
	if e.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return fmt.Errorf("failed to generate query log id: %w", err)
		}
		e.ID = id
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO query_log (id, domain, dimension, match_type, result_count, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Domain.String(), e.Dimension.String(), e.MatchType,
		e.ResultCount, e.Duration.Milliseconds(), e.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to record query: %w", err)
	}
	return nil
}

func (r *QueryLogRepository) Recent(ctx context.Context, limit int) ([]QueryLogEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, domain, dimension, match_type, result_count, duration_ms, created_at
		FROM query_log
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent queries: %w", err)
	}
	defer rows.Close()

	var entries []QueryLogEntry
	for rows.Next() {
		var (
			e          QueryLogEntry
			domainName string
			dimName    string
			durationMS int64
			createdAt  string
		)
		if err := rows.Scan(&e.ID, &domainName, &dimName, &e.MatchType,
			&e.ResultCount, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan query log entry: %w", err)
		}
		if e.Domain, err = domain.ParseDomain(domainName); err != nil {
			return nil, err
		}
		if e.Dimension, err = domain.ParseDimension(dimName); err != nil {
			return nil, err
		}
		e.Duration = time.Duration(durationMS) * time.Millisecond
		if e.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse query log timestamp: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate query log: %w", err)
	}
	return entries, nil
}
