package stats

import (
	"testing"

	"cricket-stats/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBuildMatchCountIndexCountsMatchesNotInnings(t *testing.T) {
	matches := testMatches()
	// Player 1 was in the eleven for all three matches, whether or not a
	// batting line exists for each.
	parts := []domain.Participation{
		{MatchID: 1, TeamID: 10, PlayerID: 1},
		{MatchID: 2, TeamID: 10, PlayerID: 1},
		{MatchID: 3, TeamID: 10, PlayerID: 1},
		{MatchID: 1, TeamID: 20, PlayerID: 3},
	}

	p := CompilePredicate(baseFilter(), matches)
	idx := BuildMatchCountIndex(domain.DimensionOverall, parts, p)

	assert.Equal(t, 3, idx[groupKey{Entity: 1}])
	assert.Equal(t, 1, idx[groupKey{Entity: 3}])
}

func TestBuildMatchCountIndexPerDimension(t *testing.T) {
	matches := testMatches()
	parts := []domain.Participation{
		{MatchID: 1, TeamID: 10, PlayerID: 1},
		{MatchID: 2, TeamID: 10, PlayerID: 1},
		{MatchID: 3, TeamID: 10, PlayerID: 1},
	}

	p := CompilePredicate(baseFilter(), matches)

	byYear := BuildMatchCountIndex(domain.DimensionYear, parts, p)
	assert.Equal(t, 2, byYear[groupKey{Entity: 1, Dim: dimValue{ID: 1926}}])
	assert.Equal(t, 1, byYear[groupKey{Entity: 1, Dim: dimValue{ID: 1928}}])

	byGround := BuildMatchCountIndex(domain.DimensionGrounds, parts, p)
	assert.Equal(t, 1, byGround[groupKey{Entity: 1, Dim: dimValue{ID: 100}}])

	// Opponents axis resolves from the participant's perspective.
	byOpp := BuildMatchCountIndex(domain.DimensionOpponents, parts, p)
	assert.Equal(t, 3, byOpp[groupKey{Entity: 1, Dim: dimValue{ID: 20}}])
}

func TestBuildMatchCountIndexHonorsFilter(t *testing.T) {
	matches := testMatches()
	parts := []domain.Participation{
		{MatchID: 1, TeamID: 10, PlayerID: 1},
		{MatchID: 3, TeamID: 10, PlayerID: 1},
		{MatchID: 1, TeamID: 20, PlayerID: 3},
	}

	// Team filter drops rows from the other side.
	p := CompilePredicate(domain.SearchFilter{MatchType: 1, TeamID: 10}, matches)
	idx := BuildMatchCountIndex(domain.DimensionOverall, parts, p)
	assert.Equal(t, 2, idx[groupKey{Entity: 1}])
	assert.Zero(t, idx[groupKey{Entity: 3}])

	// Venue filter applies from the participant's team perspective.
	p = CompilePredicate(domain.SearchFilter{MatchType: 1, Venue: domain.VenueHome}, matches)
	idx = BuildMatchCountIndex(domain.DimensionOverall, parts, p)
	assert.Equal(t, 1, idx[groupKey{Entity: 1}])
	assert.Zero(t, idx[groupKey{Entity: 3}], "away participant excluded")
}

func TestBuildTeamMatchCountIndex(t *testing.T) {
	matches := testMatches()

	p := CompilePredicate(baseFilter(), matches)
	idx := BuildTeamMatchCountIndex(domain.DimensionOverall, matches, p)
	// Each side of each match counts once.
	assert.Equal(t, 3, idx[groupKey{Entity: 10}])
	assert.Equal(t, 3, idx[groupKey{Entity: 20}])

	p = CompilePredicate(domain.SearchFilter{MatchType: 1, Venue: domain.VenueHome}, matches)
	idx = BuildTeamMatchCountIndex(domain.DimensionOverall, matches, p)
	assert.Equal(t, 2, idx[groupKey{Entity: 10}])
	assert.Equal(t, 1, idx[groupKey{Entity: 20}])
}
