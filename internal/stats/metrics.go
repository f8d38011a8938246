package stats

import "math"

// Display precision is two decimals, truncated rather than rounded:
// 301 runs over 3 completed innings is 100.33, never 100.34.

// Truncate2 truncates to two decimal places. Non-finite and non-positive
// inputs collapse to zero so records never carry NaN or Infinity.
func Truncate2(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || x <= 0 {
		return 0
	}
	return math.Floor(x*100) / 100
}

// div is the only raw division in this package. Callers must have screened
// the divisor; a zero here is an internal fault, not bad input.
func div(num, den float64) float64 {
	if den == 0 {
		panic(ErrDivisionGuard)
	}
	return num / den
}

// ratio is the guarded division every metric goes through: an undefined
// quotient (zero divisor) is reported as 0.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return div(num, den)
}

// BattingAverage is runs per completed innings, 0 when no innings completed.
func BattingAverage(runs, innings, notOuts int) float64 {
	return Truncate2(ratio(float64(runs), float64(innings-notOuts)))
}

// BattingStrikeRate is runs per hundred balls, 0 when no balls faced.
func BattingStrikeRate(runs, balls int) float64 {
	return Truncate2(ratio(float64(runs), float64(balls)) * 100)
}

// BowlingAverage is runs conceded per wicket, 0 when wicketless.
func BowlingAverage(runs, wickets int) float64 {
	return Truncate2(ratio(float64(runs), float64(wickets)))
}

// Economy is runs conceded per six-ball over, 0 when no balls bowled.
func Economy(runs, balls int) float64 {
	return Truncate2(ratio(float64(runs), float64(balls)) * 6)
}

// BowlingStrikeRate is balls per wicket, 0 when wicketless.
func BowlingStrikeRate(balls, wickets int) float64 {
	return Truncate2(ratio(float64(balls), float64(wickets)))
}

// RunRate is runs scored per six-ball over, 0 when no balls.
func RunRate(runs, balls int) float64 {
	return Truncate2(ratio(float64(runs), float64(balls)) * 6)
}

// BattingImpact is the composite index sqrt(average x strike rate). It is 0
// whenever either operand is 0 or undefined.
func BattingImpact(avg, strikeRate float64) float64 {
	if avg <= 0 || strikeRate <= 0 {
		return 0
	}
	return Truncate2(math.Sqrt(avg * strikeRate))
}

// BowlingImpact is sqrt(average x runs-per-ball x 100), 0 when either
// operand is 0 or undefined.
func BowlingImpact(avg float64, runs, balls int) float64 {
	perHundred := ratio(float64(runs), float64(balls)) * 100
	if avg <= 0 || perHundred <= 0 {
		return 0
	}
	return Truncate2(math.Sqrt(avg * perHundred))
}

// betterBowling ranks innings or match figures: more wickets first, then
// fewer runs conceded.
func betterBowling(wickets, runs, bestWickets, bestRuns int) bool {
	if wickets != bestWickets {
		return wickets > bestWickets
	}
	return runs < bestRuns
}
