package stats

import "time"

// RecentMatch is one front-page fixture entry. MatchType here is the
// archive's letter code, e.g. "t" for a Test and "a" for the secondary
// classification the same fixture may also be filed under.
type RecentMatch struct {
	MatchID      int
	MatchType    string
	HomeTeam     string
	AwayTeam     string
	ResultString string
	StartDate    time.Time
	Ground       string
}

// canonicalMatchType maps a secondary classification to the international
// code that wins when the same fixture is recorded under both.
var canonicalMatchType = map[string]string{
	"a":    "t",
	"wa":   "wt",
	"att":  "itt",
	"watt": "witt",
}

// DedupeRecentMatches removes the double listing that occurs when one
// fixture is recorded under both an international code and its secondary
// classification: rows identical in home team, away team and result keep
// only the canonical entry. Order is otherwise preserved.
func DedupeRecentMatches(in []RecentMatch) []RecentMatch {
	type fixture struct {
		home, away, result string
	}
	canonical := make(map[fixture]bool, len(in))
	for _, m := range in {
		if _, secondary := canonicalMatchType[m.MatchType]; !secondary {
			canonical[fixture{m.HomeTeam, m.AwayTeam, m.ResultString}] = true
		}
	}

	out := make([]RecentMatch, 0, len(in))
	for _, m := range in {
		if _, secondary := canonicalMatchType[m.MatchType]; secondary {
			if canonical[fixture{m.HomeTeam, m.AwayTeam, m.ResultString}] {
				continue
			}
		}
		out = append(out, m)
	}
	return out
}
