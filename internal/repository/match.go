package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"cricket-stats/internal/constants"
	"cricket-stats/internal/domain"
	"cricket-stats/internal/stats"

	"github.com/rs/zerolog"
)

const dateLayout = "2006-01-02"

type MatchRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewMatchRepository(sqlDB *sql.DB, logger zerolog.Logger) *MatchRepository {
	return &MatchRepository{db: sqlDB, logger: logger}
}

// Load returns the match reference set for one match type, with sub-type
// membership joined in. Semantic filtering happens downstream; only the
// match-type pre-filter is pushed into SQL.
func (r *MatchRepository) Load(ctx context.Context, matchType int) ([]domain.MatchRef, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT match_id, match_type, home_team_id, away_team_id, ground_id,
		       host_country_id, neutral_venue, start_date, series_date, season,
		       match_start_year, winner_team_id, victory_type, result_type, result_string
		FROM matches
		WHERE match_type = ?`, matchType)
	if err != nil {
		return nil, fmt.Errorf("failed to load matches: %w", err)
	}
	defer rows.Close()

	var (
		matches []domain.MatchRef
		byID    = make(map[int]int)
	)
	for rows.Next() {
		var (
			m         domain.MatchRef
			neutral   int
			startDate string
		)
		if err := rows.Scan(&m.MatchID, &m.MatchType, &m.HomeTeamID, &m.AwayTeamID,
			&m.GroundID, &m.HostCountryID, &neutral, &startDate, &m.SeriesDate,
			&m.Season, &m.MatchStartYear, &m.WinnerTeamID, &m.VictoryType,
			&m.ResultType, &m.ResultString); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		m.NeutralVenue = neutral != 0
		if m.StartDate, err = time.Parse(dateLayout, startDate); err != nil {
			return nil, fmt.Errorf("failed to parse start date of match %d: %w", m.MatchID, err)
		}
		byID[m.MatchID] = len(matches)
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate matches: %w", err)
	}

	subRows, err := r.db.QueryContext(ctx, `SELECT match_id, sub_type FROM match_subtypes`)
	if err != nil {
		return nil, fmt.Errorf("failed to load match sub-types: %w", err)
	}
	defer subRows.Close()
	for subRows.Next() {
		var matchID, subType int
		if err := subRows.Scan(&matchID, &subType); err != nil {
			return nil, fmt.Errorf("failed to scan match sub-type: %w", err)
		}
		if i, ok := byID[matchID]; ok {
			matches[i].SubTypes = append(matches[i].SubTypes, subType)
		}
	}
	if err := subRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate match sub-types: %w", err)
	}

	r.logger.Debug().Int("match_type", matchType).Int("count", len(matches)).Msg("matches loaded")
	return matches, nil
}

// LoadParticipation returns the squad membership rows for one match type.
func (r *MatchRepository) LoadParticipation(ctx context.Context, matchType int) ([]domain.Participation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.match_id, p.team_id, p.player_id
		FROM participation p
		JOIN matches m ON m.match_id = p.match_id
		WHERE m.match_type = ?`, matchType)
	if err != nil {
		return nil, fmt.Errorf("failed to load participation: %w", err)
	}
	defer rows.Close()

	var parts []domain.Participation
	for rows.Next() {
		var p domain.Participation
		if err := rows.Scan(&p.MatchID, &p.TeamID, &p.PlayerID); err != nil {
			return nil, fmt.Errorf("failed to scan participation: %w", err)
		}
		parts = append(parts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participation: %w", err)
	}
	return parts, nil
}

// RecentMatches returns the newest fixtures across all match types for the
// front page, newest first.
func (r *MatchRepository) RecentMatches(ctx context.Context, limit int) ([]stats.RecentMatch, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT m.match_id, m.match_type, ht.name, at.name, m.result_string,
		       m.start_date, g.known_as
		FROM matches m
		JOIN teams ht ON ht.team_id = m.home_team_id
		JOIN teams at ON at.team_id = m.away_team_id
		JOIN grounds g ON g.ground_id = m.ground_id
		ORDER BY m.start_date DESC, m.match_id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent matches: %w", err)
	}
	defer rows.Close()

	var recent []stats.RecentMatch
	for rows.Next() {
		var (
			m         stats.RecentMatch
			matchType int
			startDate string
		)
		if err := rows.Scan(&m.MatchID, &matchType, &m.HomeTeam, &m.AwayTeam,
			&m.ResultString, &startDate, &m.Ground); err != nil {
			return nil, fmt.Errorf("failed to scan recent match: %w", err)
		}
		m.MatchType = matchTypeCode(matchType)
		if m.StartDate, err = time.Parse(dateLayout, startDate); err != nil {
			return nil, fmt.Errorf("failed to parse start date of match %d: %w", m.MatchID, err)
		}
		recent = append(recent, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recent matches: %w", err)
	}
	return recent, nil
}

// Seasons returns every distinct series label, for the decade index.
func (r *MatchRepository) Seasons(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT series_date FROM matches`)
	if err != nil {
		return nil, fmt.Errorf("failed to load seasons: %w", err)
	}
	defer rows.Close()

	var seasons []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan season: %w", err)
		}
		seasons = append(seasons, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate seasons: %w", err)
	}
	return seasons, nil
}

// UpsertBatch writes imported fixtures in batches inside one transaction.
func (r *MatchRepository) UpsertBatch(ctx context.Context, matches []domain.MatchRef) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i := 0; i < len(matches); i += constants.DBBatchSize {
		end := i + constants.DBBatchSize
		if end > len(matches) {
			end = len(matches)
		}
		for _, m := range matches[i:end] {
			neutral := 0
			if m.NeutralVenue {
				neutral = 1
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO matches (match_id, match_type, home_team_id, away_team_id,
					ground_id, host_country_id, neutral_venue, start_date, series_date,
					season, match_start_year, winner_team_id, victory_type, result_type,
					result_string)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT (match_id) DO UPDATE SET
					winner_team_id = excluded.winner_team_id,
					victory_type = excluded.victory_type,
					result_type = excluded.result_type,
					result_string = excluded.result_string`,
				m.MatchID, m.MatchType, m.HomeTeamID, m.AwayTeamID, m.GroundID,
				m.HostCountryID, neutral, m.StartDate.Format(dateLayout), m.SeriesDate,
				m.Season, m.MatchStartYear, m.WinnerTeamID, m.VictoryType,
				m.ResultType, m.ResultString)
			if err != nil {
				return fmt.Errorf("failed to upsert match %d: %w", m.MatchID, err)
			}
			for _, st := range m.SubTypes {
				if _, err := tx.ExecContext(ctx, `
					INSERT OR IGNORE INTO match_subtypes (match_id, sub_type) VALUES (?, ?)`,
					m.MatchID, st); err != nil {
					return fmt.Errorf("failed to upsert sub-type of match %d: %w", m.MatchID, err)
				}
			}
		}
	}
	return tx.Commit()
}

// matchTypeCode maps the numeric match type to the archive's letter code.
func matchTypeCode(t int) string {
	codes := map[int]string{
		1:  "t",
		2:  "o",
		3:  "itt",
		4:  "f",
		5:  "a",
		6:  "wt",
		7:  "wo",
		8:  "witt",
		9:  "wa",
		10: "att",
		11: "watt",
	}
	if c, ok := codes[t]; ok {
		return c
	}
	return "f"
}
