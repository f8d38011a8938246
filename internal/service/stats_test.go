package service

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"cricket-stats/internal/database"
	"cricket-stats/internal/domain"
	"cricket-stats/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	stats     *StatsService
	frontPage *FrontPageService
}

// newTestEnv migrates a throwaway sqlite database, seeds two 1926 fixtures
// with batting and bowling lines, and wires the services over it.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	nop := zerolog.Nop()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "stats.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrations(db, nop))

	seed := []string{
		`INSERT INTO countries (country_id, name) VALUES (1, 'England'), (2, 'Australia')`,
		`INSERT INTO teams (team_id, name) VALUES (10, 'England'), (20, 'Australia')`,
		`INSERT INTO grounds (ground_id, known_as, country_id) VALUES (100, 'Lord''s', 1)`,
		`INSERT INTO players (player_id, full_name, sort_name, debut_year, final_year) VALUES
			(1, 'Jack Hobbs', 'Hobbs, JB', 1908, 1930),
			(2, 'Herbert Sutcliffe', 'Sutcliffe, H', 1919, 1935),
			(3, 'Clarrie Grimmett', 'Grimmett, CV', 1925, 1936)`,
		`INSERT INTO matches (match_id, match_type, home_team_id, away_team_id, ground_id,
			host_country_id, neutral_venue, start_date, series_date, season, match_start_year,
			winner_team_id, victory_type, result_type, result_string) VALUES
			(1, 1, 10, 20, 100, 1, 0, '1926-06-26', '1926', '1926', 1926, 10, 1, 1, 'England won by 289 runs'),
			(2, 1, 10, 20, 100, 1, 0, '1926-08-14', '1926', '1926', 1926, 0, 0, 2, 'Match drawn')`,
		`INSERT INTO participation (match_id, team_id, player_id) VALUES
			(1, 10, 1), (1, 10, 2), (1, 20, 3),
			(2, 10, 1), (2, 10, 2), (2, 20, 3)`,
		`INSERT INTO batting_lines (match_id, player_id, team_id, opponents_id, ground_id,
			match_type, series_date, season, match_start_year, innings_number, position,
			runs, balls, fours, sixes, minutes, dismissal_code) VALUES
			(1, 1, 10, 20, 100, 1, '1926', '1926', 1926, 1, 1, 100, 150, 12, 0, 210, 1),
			(2, 1, 10, 20, 100, 1, '1926', '1926', 1926, 1, 1, 25, 30, 3, 0, 40, 12),
			(1, 2, 10, 20, 100, 1, '1926', '1926', 1926, 1, 2, 60, 140, 6, 0, 180, 2)`,
		`INSERT INTO bowling_lines (match_id, player_id, team_id, opponents_id, ground_id,
			match_type, series_date, season, match_start_year, innings_number, balls,
			maidens, runs, wickets, wides, no_balls, dots) VALUES
			(1, 3, 20, 10, 100, 1, '1926', '1926', 1926, 1, 240, 5, 120, 6, 0, 0, 0),
			(1, 3, 20, 10, 100, 1, '1926', '1926', 1926, 2, 120, 3, 60, 4, 0, 0, 0)`,
	}
	for _, stmt := range seed {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	matchRepo := repository.NewMatchRepository(db, nop)
	perfRepo := repository.NewPerformanceRepository(db, nop)
	names := repository.NewNameRepository(db, nop)
	queryLog := repository.NewQueryLogRepository(db, nop)
	return &testEnv{
		stats:     NewStatsService(matchRepo, perfRepo, names, queryLog, nop),
		frontPage: NewFrontPageService(matchRepo, queryLog, nop),
	}
}

func testFilter() domain.SearchFilter {
	return domain.SearchFilter{
		MatchType: 1,
		SortOrder: domain.SortByRuns,
		Paging:    domain.PagingParameters{PageSize: 10},
	}
}

func TestBattingRecordsPipeline(t *testing.T) {
	env := newTestEnv(t)

	recs, total, err := env.stats.BattingRecords(context.Background(), testFilter(), domain.DimensionOverall)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, recs, 2)

	hobbs := recs[0]
	assert.Equal(t, "Jack Hobbs", hobbs.Name)
	assert.Equal(t, "1908-1930", hobbs.CareerSpan)
	assert.Equal(t, 2, hobbs.Matches)
	assert.Equal(t, 2, hobbs.Innings)
	assert.Equal(t, 1, hobbs.NotOuts)
	assert.Equal(t, 125, hobbs.Runs)
	assert.Equal(t, 100, hobbs.HighestScore)
	assert.False(t, hobbs.HighestScoreNotOut)
	assert.Equal(t, 125.0, hobbs.Avg)
	assert.Equal(t, 69.44, hobbs.StrikeRate)

	assert.Equal(t, "Herbert Sutcliffe", recs[1].Name)
	assert.Equal(t, 60, recs[1].Runs)
}

func TestBattingRecordsPagination(t *testing.T) {
	env := newTestEnv(t)

	f := testFilter()
	f.Paging = domain.PagingParameters{StartRow: 1, PageSize: 1}
	recs, total, err := env.stats.BattingRecords(context.Background(), f, domain.DimensionOverall)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, recs, 1)
	assert.Equal(t, "Herbert Sutcliffe", recs[0].Name)
}

func TestBowlingRecordsPipeline(t *testing.T) {
	env := newTestEnv(t)

	f := testFilter()
	f.SortOrder = domain.SortByWickets
	recs, total, err := env.stats.BowlingRecords(context.Background(), f, domain.DimensionOverall)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, recs, 1)

	grimmett := recs[0]
	assert.Equal(t, "Clarrie Grimmett", grimmett.Name)
	assert.Equal(t, 2, grimmett.Matches)
	assert.Equal(t, 2, grimmett.Innings)
	assert.Equal(t, 10, grimmett.Wickets)
	assert.Equal(t, 1, grimmett.FiveFor)
	assert.Equal(t, 1, grimmett.TenFor)
	assert.Equal(t, 18.0, grimmett.Avg)
	assert.Equal(t, 3.0, grimmett.Economy)
	assert.Equal(t, 36.0, grimmett.StrikeRate)
}

func TestFrontPageRecentMatches(t *testing.T) {
	env := newTestEnv(t)

	recent, err := env.frontPage.RecentMatches(context.Background())
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, 2, recent[0].MatchID)
	assert.Equal(t, "t", recent[0].MatchType)
	assert.Equal(t, "England", recent[0].HomeTeam)
	assert.Equal(t, "Match drawn", recent[0].ResultString)
	assert.Equal(t, 1, recent[1].MatchID)
}

func TestFrontPageSeasonDecades(t *testing.T) {
	env := newTestEnv(t)

	decades, err := env.frontPage.SeasonDecades(context.Background())
	require.NoError(t, err)
	require.Len(t, decades, 1)
	assert.Equal(t, "1920s", decades[0].Decade)
	assert.Equal(t, []string{"1926"}, decades[0].Seasons)
}
