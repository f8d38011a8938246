package stats

import (
	"testing"

	"cricket-stats/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stand builds the two stored rows of one partnership instance.
func stand(matchID, teamID, oppID, inningsNo, wicket, runs int, p1, p2 int, unbroken, multiple bool) []domain.PartnershipLine {
	base := domain.PartnershipLine{
		LineMeta:      meta(matchID, teamID, oppID),
		InningsNumber: inningsNo,
		Wicket:        wicket,
		Runs:          runs,
		Unbroken:      unbroken,
		Multiple:      multiple,
	}
	a, b := base, base
	a.PlayerID = p1
	b.PlayerID = p2
	return []domain.PartnershipLine{a, b}
}

func TestAggregatePartnershipPairsAdjacentRows(t *testing.T) {
	matches := testMatches()
	lines := stand(1, 10, 20, 1, 1, 120, 1, 2, false, false)

	recs, err := AggregatePartnership(lines, matches, baseFilter(), domain.DimensionOverall, testNames())
	require.NoError(t, err)
	require.Len(t, recs, 1)

	r := recs[0]
	assert.Equal(t, 1, r.Player1ID)
	assert.Equal(t, 2, r.Player2ID)
	assert.Equal(t, "Jack Hobbs", r.Player1Name)
	assert.Equal(t, "Herbert Sutcliffe", r.Player2Name)
	assert.Equal(t, 1, r.Innings)
	assert.Equal(t, 120, r.Runs, "per-partner storage is halved back to one instance")
	assert.Equal(t, 1, r.Hundreds)
	assert.Equal(t, 120, r.HighestScore)
	assert.Equal(t, 1, r.Wicket)
}

func TestAggregatePartnershipHalvingIdempotence(t *testing.T) {
	matches := testMatches()
	var lines []domain.PartnershipLine
	// Three instances for the same pair: 60, 80 and 110* runs.
	lines = append(lines, stand(1, 10, 20, 1, 1, 60, 1, 2, false, false)...)
	lines = append(lines, stand(1, 10, 20, 2, 1, 80, 1, 2, false, false)...)
	lines = append(lines, stand(2, 10, 20, 1, 1, 110, 2, 1, true, false)...)

	recs, err := AggregatePartnership(lines, matches, baseFilter(), domain.DimensionOverall, testNames())
	require.NoError(t, err)
	require.Len(t, recs, 1)

	r := recs[0]
	assert.Equal(t, 3, r.Innings)
	assert.Equal(t, 250, r.Runs)
	assert.Equal(t, 1, r.Unbroken)
	assert.Equal(t, 1, r.Hundreds)
	assert.Equal(t, 2, r.Fifties)
	assert.Equal(t, 110, r.HighestScore)
	assert.True(t, r.HighestUnbroken)
	// Average over completed stands: 250 / (3 - 1).
	assert.Equal(t, 125.0, r.Avg)
}

func TestAggregatePartnershipUnpairedRowDropped(t *testing.T) {
	matches := testMatches()
	lines := stand(1, 10, 20, 1, 1, 120, 1, 2, false, false)
	// A stray single row with no second half never forms a pair.
	lines = append(lines, domain.PartnershipLine{
		LineMeta:      meta(1, 10, 20),
		PlayerID:      1,
		InningsNumber: 2,
		Wicket:        1,
		Runs:          80,
	})

	recs, err := AggregatePartnership(lines, matches, baseFilter(), domain.DimensionOverall, testNames())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 1, recs[0].Player1ID)
	assert.Equal(t, 2, recs[0].Player2ID)
	assert.Equal(t, 1, recs[0].Innings)
	assert.Equal(t, 120, recs[0].Runs)
}

func TestAggregatePartnershipPairOrderIsCanonical(t *testing.T) {
	matches := testMatches()
	var lines []domain.PartnershipLine
	// Same pair recorded with either partner first still folds together.
	lines = append(lines, stand(1, 10, 20, 1, 1, 50, 2, 1, false, false)...)
	lines = append(lines, stand(2, 10, 20, 1, 1, 70, 1, 2, false, false)...)

	recs, err := AggregatePartnership(lines, matches, baseFilter(), domain.DimensionOverall, testNames())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 1, recs[0].Player1ID)
	assert.Equal(t, 2, recs[0].Player2ID)
	assert.Equal(t, 120, recs[0].Runs)
}

func TestAggregatePartnershipMultipleExcludedFromAggregates(t *testing.T) {
	matches := testMatches()
	var lines []domain.PartnershipLine
	lines = append(lines, stand(1, 10, 20, 1, 1, 90, 1, 2, false, false)...)
	// A resumed stand is flagged Multiple and stays out of aggregate sums.
	lines = append(lines, stand(1, 10, 20, 2, 1, 40, 1, 2, false, true)...)

	recs, err := AggregatePartnership(lines, matches, baseFilter(), domain.DimensionOverall, testNames())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 1, recs[0].Innings)
	assert.Equal(t, 90, recs[0].Runs)

	// The innings-by-innings listing still surfaces the resumed stand.
	innings, err := AggregatePartnership(lines, matches, baseFilter(), domain.DimensionInningsByInnings, testNames())
	require.NoError(t, err)
	require.Len(t, innings, 2)
	var sawMultiple bool
	for _, r := range innings {
		if r.Multiple {
			sawMultiple = true
			assert.Equal(t, 40, r.Runs)
		}
	}
	assert.True(t, sawMultiple)
}

func TestAggregatePartnershipWicketFilter(t *testing.T) {
	matches := testMatches()
	var lines []domain.PartnershipLine
	lines = append(lines, stand(1, 10, 20, 1, 1, 60, 1, 2, false, false)...)
	lines = append(lines, stand(1, 10, 20, 1, 2, 45, 2, 3, false, false)...)

	f := baseFilter()
	f.PartnershipWicket = 2
	recs, err := AggregatePartnership(lines, matches, f, domain.DimensionOverall, testNames())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 2, recs[0].Wicket)
	assert.Equal(t, 45, recs[0].Runs)
}

func TestAggregatePartnershipQualificationOnHalvedRuns(t *testing.T) {
	matches := testMatches()
	var lines []domain.PartnershipLine
	lines = append(lines, stand(1, 10, 20, 1, 1, 100, 1, 2, false, false)...)
	lines = append(lines, stand(1, 10, 20, 1, 2, 99, 2, 3, false, false)...)

	f := baseFilter()
	f.QualificationLimit = 100
	recs, err := AggregatePartnership(lines, matches, f, domain.DimensionOverall, testNames())
	require.NoError(t, err)
	require.Len(t, recs, 1, "threshold applies to the halved sum, inclusively")
	assert.Equal(t, 100, recs[0].Runs)
}

func TestAggregatePartnershipInningsListingDropsTrailingHalf(t *testing.T) {
	matches := testMatches()
	lines := stand(1, 10, 20, 1, 3, 75, 1, 2, false, false)

	recs, err := AggregatePartnership(lines, matches, baseFilter(), domain.DimensionInningsByInnings, testNames())
	require.NoError(t, err)
	require.Len(t, recs, 1, "each instance appears once, not once per partner")
	assert.Equal(t, 75, recs[0].Runs)
	assert.Equal(t, 1, recs[0].Fifties)
}

func TestAggregatePartnershipByOpponents(t *testing.T) {
	matches := testMatches()
	var lines []domain.PartnershipLine
	lines = append(lines, stand(1, 10, 20, 1, 1, 60, 1, 2, false, false)...)
	lines = append(lines, stand(3, 10, 20, 1, 1, 40, 1, 2, false, false)...)

	recs, err := AggregatePartnership(lines, matches, baseFilter(), domain.DimensionOpponents, testNames())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Australia", recs[0].Opponents)
	assert.Equal(t, 100, recs[0].Runs)
	assert.Equal(t, 2, recs[0].Innings)
}
