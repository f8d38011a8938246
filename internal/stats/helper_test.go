package stats

import (
	"time"

	"cricket-stats/internal/domain"
)

// stubNames is the in-memory NameResolver used across the aggregation tests.
type stubNames struct {
	players   map[int]domain.Player
	teams     map[int]string
	grounds   map[int]string
	countries map[int]string
}

func (s *stubNames) Player(id int) (domain.Player, bool) {
	p, ok := s.players[id]
	return p, ok
}

func (s *stubNames) TeamName(id int) (string, bool) {
	n, ok := s.teams[id]
	return n, ok
}

func (s *stubNames) GroundName(id int) (string, bool) {
	n, ok := s.grounds[id]
	return n, ok
}

func (s *stubNames) CountryName(id int) (string, bool) {
	n, ok := s.countries[id]
	return n, ok
}

func testNames() *stubNames {
	return &stubNames{
		players: map[int]domain.Player{
			1: {PlayerID: 1, FullName: "Jack Hobbs", SortName: "Hobbs, J", DebutYear: 1908, FinalYear: 1930},
			2: {PlayerID: 2, FullName: "Herbert Sutcliffe", SortName: "Sutcliffe, H", DebutYear: 1924, FinalYear: 1935},
			3: {PlayerID: 3, FullName: "Clarrie Grimmett", SortName: "Grimmett, C", DebutYear: 1925, FinalYear: 1936},
		},
		teams: map[int]string{
			10: "England",
			20: "Australia",
			30: "South Africa",
		},
		grounds: map[int]string{
			100: "Lord's",
			200: "The Oval",
			300: "MCG",
		},
		countries: map[int]string{
			1: "England",
			2: "Australia",
		},
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// testMatches is a small reference set: two England home Tests against
// Australia plus one Australia home Test.
func testMatches() []domain.MatchRef {
	return []domain.MatchRef{
		{
			MatchID: 1, MatchType: 1,
			HomeTeamID: 10, AwayTeamID: 20,
			GroundID: 100, HostCountryID: 1,
			StartDate: day(1926, time.June, 14), SeriesDate: "1926", Season: "1926", MatchStartYear: 1926,
			WinnerTeamID: 10, VictoryType: domain.VictoryRuns, ResultType: domain.ResultDecided,
		},
		{
			MatchID: 2, MatchType: 1,
			HomeTeamID: 10, AwayTeamID: 20,
			GroundID: 200, HostCountryID: 1,
			StartDate: day(1926, time.August, 14), SeriesDate: "1926", Season: "1926", MatchStartYear: 1926,
			ResultType: domain.ResultDrawn,
		},
		{
			MatchID: 3, MatchType: 1,
			HomeTeamID: 20, AwayTeamID: 10,
			GroundID: 300, HostCountryID: 2,
			StartDate: day(1928, time.December, 30), SeriesDate: "1928/29", Season: "1928/29", MatchStartYear: 1928,
			WinnerTeamID: 20, VictoryType: domain.VictoryWickets, ResultType: domain.ResultDecided,
		},
	}
}

func meta(matchID, teamID, opponentsID int) domain.LineMeta {
	byID := map[int]domain.MatchRef{}
	for _, m := range testMatches() {
		byID[m.MatchID] = m
	}
	m := byID[matchID]
	return domain.LineMeta{
		MatchID:        matchID,
		TeamID:         teamID,
		OpponentsID:    opponentsID,
		GroundID:       m.GroundID,
		MatchType:      m.MatchType,
		SeriesDate:     m.SeriesDate,
		Season:         m.Season,
		MatchStartYear: m.MatchStartYear,
	}
}

func bat(matchID, teamID, oppID, playerID, runs, balls, dismissal int) domain.BattingLine {
	return domain.BattingLine{
		LineMeta:      meta(matchID, teamID, oppID),
		PlayerID:      playerID,
		InningsNumber: 1,
		Runs:          runs,
		Balls:         balls,
		DismissalCode: dismissal,
	}
}

func bowl(matchID, teamID, oppID, playerID, balls, runs, wickets int) domain.BowlingLine {
	return domain.BowlingLine{
		LineMeta:      meta(matchID, teamID, oppID),
		PlayerID:      playerID,
		InningsNumber: 1,
		Balls:         balls,
		Runs:          runs,
		Wickets:       wickets,
	}
}

func baseFilter() domain.SearchFilter {
	return domain.SearchFilter{MatchType: 1}
}
