package repository

import (
	"context"
	"database/sql"
	"fmt"

	"cricket-stats/internal/domain"

	"github.com/rs/zerolog"
)

// PerformanceRepository loads the per-domain performance row sets. Rows come
// back pre-filtered only on match type; every semantic filter is applied by
// the stats pipeline so that one loaded set serves any dimension.
type PerformanceRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewPerformanceRepository(sqlDB *sql.DB, logger zerolog.Logger) *PerformanceRepository {
	return &PerformanceRepository{db: sqlDB, logger: logger}
}

const lineMetaColumns = `match_id, team_id, opponents_id, ground_id, match_type,
	series_date, season, match_start_year`

func scanLineMeta(rows *sql.Rows, meta *domain.LineMeta, rest ...any) error {
	dest := []any{&meta.MatchID, &meta.TeamID, &meta.OpponentsID, &meta.GroundID,
		&meta.MatchType, &meta.SeriesDate, &meta.Season, &meta.MatchStartYear}
	return rows.Scan(append(dest, rest...)...)
}

func (r *PerformanceRepository) BattingLines(ctx context.Context, matchType int) ([]domain.BattingLine, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+lineMetaColumns+`, player_id, innings_number, position, runs,
		       balls, fours, sixes, minutes, dismissal_code
		FROM batting_lines
		WHERE match_type = ?`, matchType)
	if err != nil {
		return nil, fmt.Errorf("failed to load batting lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.BattingLine
	for rows.Next() {
		var l domain.BattingLine
		if err := scanLineMeta(rows, &l.LineMeta, &l.PlayerID, &l.InningsNumber,
			&l.Position, &l.Runs, &l.Balls, &l.Fours, &l.Sixes, &l.Minutes,
			&l.DismissalCode); err != nil {
			return nil, fmt.Errorf("failed to scan batting line: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate batting lines: %w", err)
	}
	r.logger.Debug().Int("match_type", matchType).Int("count", len(lines)).Msg("batting lines loaded")
	return lines, nil
}

func (r *PerformanceRepository) BowlingLines(ctx context.Context, matchType int) ([]domain.BowlingLine, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+lineMetaColumns+`, player_id, innings_number, balls, maidens,
		       runs, wickets, wides, no_balls, dots
		FROM bowling_lines
		WHERE match_type = ?`, matchType)
	if err != nil {
		return nil, fmt.Errorf("failed to load bowling lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.BowlingLine
	for rows.Next() {
		var l domain.BowlingLine
		if err := scanLineMeta(rows, &l.LineMeta, &l.PlayerID, &l.InningsNumber,
			&l.Balls, &l.Maidens, &l.Runs, &l.Wickets, &l.Wides, &l.NoBalls,
			&l.Dots); err != nil {
			return nil, fmt.Errorf("failed to scan bowling line: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bowling lines: %w", err)
	}
	r.logger.Debug().Int("match_type", matchType).Int("count", len(lines)).Msg("bowling lines loaded")
	return lines, nil
}

func (r *PerformanceRepository) FieldingLines(ctx context.Context, matchType int) ([]domain.FieldingLine, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+lineMetaColumns+`, player_id, innings_number, caught_fielder,
		       caught_keeper, stumpings, run_outs
		FROM fielding_lines
		WHERE match_type = ?`, matchType)
	if err != nil {
		return nil, fmt.Errorf("failed to load fielding lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.FieldingLine
	for rows.Next() {
		var l domain.FieldingLine
		if err := scanLineMeta(rows, &l.LineMeta, &l.PlayerID, &l.InningsNumber,
			&l.CaughtFielder, &l.CaughtKeeper, &l.Stumpings, &l.RunOuts); err != nil {
			return nil, fmt.Errorf("failed to scan fielding line: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate fielding lines: %w", err)
	}
	r.logger.Debug().Int("match_type", matchType).Int("count", len(lines)).Msg("fielding lines loaded")
	return lines, nil
}

func (r *PerformanceRepository) TeamLines(ctx context.Context, matchType int) ([]domain.TeamLine, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+lineMetaColumns+`, innings_number, runs, wickets, balls,
		       declared, all_out, extras
		FROM team_lines
		WHERE match_type = ?`, matchType)
	if err != nil {
		return nil, fmt.Errorf("failed to load team lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.TeamLine
	for rows.Next() {
		var (
			l        domain.TeamLine
			declared int
			allOut   int
		)
		if err := scanLineMeta(rows, &l.LineMeta, &l.InningsNumber, &l.Runs,
			&l.Wickets, &l.Balls, &declared, &allOut, &l.Extras); err != nil {
			return nil, fmt.Errorf("failed to scan team line: %w", err)
		}
		l.Declared = declared != 0
		l.AllOut = allOut != 0
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate team lines: %w", err)
	}
	r.logger.Debug().Int("match_type", matchType).Int("count", len(lines)).Msg("team lines loaded")
	return lines, nil
}

func (r *PerformanceRepository) PartnershipLines(ctx context.Context, matchType int) ([]domain.PartnershipLine, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+lineMetaColumns+`, player_id, innings_number, wicket, runs,
		       unbroken, multiple
		FROM partnership_lines
		WHERE match_type = ?`, matchType)
	if err != nil {
		return nil, fmt.Errorf("failed to load partnership lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.PartnershipLine
	for rows.Next() {
		var (
			l        domain.PartnershipLine
			unbroken int
			multiple int
		)
		if err := scanLineMeta(rows, &l.LineMeta, &l.PlayerID, &l.InningsNumber,
			&l.Wicket, &l.Runs, &unbroken, &multiple); err != nil {
			return nil, fmt.Errorf("failed to scan partnership line: %w", err)
		}
		l.Unbroken = unbroken != 0
		l.Multiple = multiple != 0
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate partnership lines: %w", err)
	}
	r.logger.Debug().Int("match_type", matchType).Int("count", len(lines)).Msg("partnership lines loaded")
	return lines, nil
}
