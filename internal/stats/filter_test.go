package stats

import (
	"testing"
	"time"

	"cricket-stats/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestPredicateLine(t *testing.T) {
	matches := testMatches()

	tests := []struct {
		name   string
		filter domain.SearchFilter
		meta   domain.LineMeta
		want   bool
	}{
		{
			name:   "match type must agree",
			filter: domain.SearchFilter{MatchType: 2},
			meta:   meta(1, 10, 20),
			want:   false,
		},
		{
			name:   "no restrictions passes",
			filter: baseFilter(),
			meta:   meta(1, 10, 20),
			want:   true,
		},
		{
			name:   "team restriction",
			filter: domain.SearchFilter{MatchType: 1, TeamID: 10},
			meta:   meta(1, 20, 10),
			want:   false,
		},
		{
			name:   "opponents restriction",
			filter: domain.SearchFilter{MatchType: 1, OpponentsID: 30},
			meta:   meta(1, 10, 20),
			want:   false,
		},
		{
			name:   "ground restriction",
			filter: domain.SearchFilter{MatchType: 1, GroundID: 200},
			meta:   meta(1, 10, 20),
			want:   false,
		},
		{
			name:   "season restriction on series date",
			filter: domain.SearchFilter{MatchType: 1, Season: "1928/29"},
			meta:   meta(3, 10, 20),
			want:   true,
		},
		{
			name:   "all seasons sentinel lifts the restriction",
			filter: domain.SearchFilter{MatchType: 1, Season: domain.AllSeasons},
			meta:   meta(1, 10, 20),
			want:   true,
		},
		{
			name:   "host country resolved via match",
			filter: domain.SearchFilter{MatchType: 1, HostCountryID: 2},
			meta:   meta(1, 10, 20),
			want:   false,
		},
		{
			name:   "date window includes boundary days",
			filter: domain.SearchFilter{MatchType: 1, StartDate: day(1926, time.June, 14), EndDate: day(1926, time.June, 14)},
			meta:   meta(1, 10, 20),
			want:   true,
		},
		{
			name:   "date window excludes later match",
			filter: domain.SearchFilter{MatchType: 1, EndDate: day(1926, time.July, 1)},
			meta:   meta(2, 10, 20),
			want:   false,
		},
		{
			name:   "home venue from team perspective",
			filter: domain.SearchFilter{MatchType: 1, TeamID: 10, Venue: domain.VenueHome},
			meta:   meta(3, 10, 20),
			want:   false,
		},
		{
			name:   "away venue from team perspective",
			filter: domain.SearchFilter{MatchType: 1, TeamID: 10, Venue: domain.VenueAway},
			meta:   meta(3, 10, 20),
			want:   true,
		},
		{
			name:   "won restriction needs the team to win",
			filter: domain.SearchFilter{MatchType: 1, TeamID: 10, MatchResult: domain.MatchResultWon},
			meta:   meta(1, 10, 20),
			want:   true,
		},
		{
			name:   "won restriction rejects the losing side",
			filter: domain.SearchFilter{MatchType: 1, TeamID: 20, MatchResult: domain.MatchResultWon},
			meta:   meta(1, 20, 10),
			want:   false,
		},
		{
			name:   "lost restriction accepts the losing side",
			filter: domain.SearchFilter{MatchType: 1, TeamID: 20, MatchResult: domain.MatchResultLost},
			meta:   meta(1, 20, 10),
			want:   true,
		},
		{
			name:   "won by wickets matches the mechanism",
			filter: domain.SearchFilter{MatchType: 1, TeamID: 20, MatchResult: domain.MatchResultWonWickets},
			meta:   meta(3, 20, 10),
			want:   true,
		},
		{
			name:   "won by runs rejects a wickets victory",
			filter: domain.SearchFilter{MatchType: 1, TeamID: 20, MatchResult: domain.MatchResultWonRuns},
			meta:   meta(3, 20, 10),
			want:   false,
		},
		{
			name:   "drawn restriction",
			filter: domain.SearchFilter{MatchType: 1, MatchResult: domain.MatchResultDrawn},
			meta:   meta(2, 10, 20),
			want:   true,
		},
		{
			name:   "sub-type restriction rejects non-member match",
			filter: domain.SearchFilter{MatchType: 1, MatchSubType: 5},
			meta:   meta(1, 10, 20),
			want:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := CompilePredicate(tt.filter, matches)
			assert.Equal(t, tt.want, p.Line(tt.meta))
		})
	}
}

func TestPredicateLineMissingMatch(t *testing.T) {
	// Without match-level restrictions a row with no reference entry passes.
	p := CompilePredicate(baseFilter(), nil)
	assert.True(t, p.Line(meta(1, 10, 20)))

	// With a match-level restriction active, missing reference fails closed.
	p = CompilePredicate(domain.SearchFilter{MatchType: 1, HostCountryID: 1}, nil)
	assert.False(t, p.Line(meta(1, 10, 20)))

	p = CompilePredicate(domain.SearchFilter{MatchType: 1, MatchResult: domain.MatchResultWon}, nil)
	assert.False(t, p.Line(meta(1, 10, 20)))
}

func TestPredicateSubTypeMembership(t *testing.T) {
	m := domain.MatchRef{
		MatchID: 9, MatchType: 1, SubTypes: []int{5},
		HomeTeamID: 10, AwayTeamID: 20,
		StartDate: day(1930, time.June, 1),
	}
	lm := domain.LineMeta{MatchID: 9, TeamID: 10, OpponentsID: 20, MatchType: 1}

	p := CompilePredicate(domain.SearchFilter{MatchType: 1, MatchSubType: 5}, []domain.MatchRef{m})
	assert.True(t, p.Line(lm), "sub-type member qualifies")

	p = CompilePredicate(domain.SearchFilter{MatchType: 1, MatchSubType: 7}, []domain.MatchRef{m})
	assert.False(t, p.Line(lm), "non-member sub-type fails")
}

func TestEpochDay(t *testing.T) {
	assert.Equal(t, int64(0), epochDay(day(1970, time.January, 1)))
	assert.Equal(t, int64(1), epochDay(day(1970, time.January, 2)))
	assert.Equal(t, int64(-1), epochDay(day(1969, time.December, 31)))
	// Day boundaries are whole days regardless of clock time.
	assert.Equal(t, int64(0), epochDay(time.Date(1970, time.January, 1, 23, 59, 59, 0, time.UTC)))
	// Pre-1970 fixtures land on the correct day, not one off.
	assert.Equal(t, int64(-365), epochDay(day(1969, time.January, 1)))
}

func TestVenueOf(t *testing.T) {
	m := testMatches()[0] // England home
	assert.Equal(t, domain.VenueHome, venueOf(m, 10))
	assert.Equal(t, domain.VenueAway, venueOf(m, 20))

	m.NeutralVenue = true
	assert.Equal(t, domain.VenueNeutral, venueOf(m, 10))
	assert.Equal(t, domain.VenueNeutral, venueOf(m, 20))
}

func TestResultMatchesWithoutTeamPerspective(t *testing.T) {
	m := testMatches()[0] // decided by runs
	// No team set: any decided match with the mechanism qualifies.
	assert.True(t, resultMatches(domain.MatchResultWon, m, 0))
	assert.True(t, resultMatches(domain.MatchResultWonRuns, m, 0))
	assert.False(t, resultMatches(domain.MatchResultWonWickets, m, 0))
	assert.False(t, resultMatches(domain.MatchResultDrawn, m, 0))
}
