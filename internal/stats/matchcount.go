package stats

import "cricket-stats/internal/domain"

// MatchCountIndex answers "how many qualifying matches did this entity play
// along this dimension value". Matches played is distinct from innings: a
// player can be in the eleven without batting or bowling, so the count is
// built from the participation rows, not from performance lines.
type MatchCountIndex map[groupKey]int

// BuildMatchCountIndex counts qualifying matches per (player, dimension
// value) in one pass over the participation rows.
func BuildMatchCountIndex(d domain.Dimension, parts []domain.Participation, p *Predicate) MatchCountIndex {
	f := p.filter
	idx := make(MatchCountIndex)
	for _, part := range parts {
		m, ok := p.Match(part.MatchID)
		if !ok {
			continue
		}
		if f.TeamID != 0 && part.TeamID != f.TeamID {
			continue
		}
		if f.OpponentsID != 0 && opponentOf(m, part.TeamID) != f.OpponentsID {
			continue
		}
		if !p.matchQualifiesFor(m, part.TeamID) {
			continue
		}
		idx[groupKey{Entity: part.PlayerID, Dim: matchDimension(d, m, part.TeamID)}]++
	}
	return idx
}

// BuildTeamMatchCountIndex is the team-entity variant: each match counts once
// for each side that survives the filter.
func BuildTeamMatchCountIndex(d domain.Dimension, matches []domain.MatchRef, p *Predicate) MatchCountIndex {
	f := p.filter
	idx := make(MatchCountIndex)
	for _, m := range matches {
		for _, teamID := range [2]int{m.HomeTeamID, m.AwayTeamID} {
			if f.TeamID != 0 && teamID != f.TeamID {
				continue
			}
			if f.OpponentsID != 0 && opponentOf(m, teamID) != f.OpponentsID {
				continue
			}
			if !p.matchQualifiesFor(m, teamID) {
				continue
			}
			idx[groupKey{Entity: teamID, Dim: matchDimension(d, m, teamID)}]++
		}
	}
	return idx
}
