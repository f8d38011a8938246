package stats

import (
	"time"

	"cricket-stats/internal/domain"
)

// Predicate is a SearchFilter compiled against the match reference set. It
// exposes two granularities: Line for performance rows, and MatchQualifies
// for whole matches, since venue and result restrictions only exist at match
// level. A Predicate is immutable and safe for concurrent use.
type Predicate struct {
	filter  domain.SearchFilter
	matches map[int]domain.MatchRef

	startDay int64
	endDay   int64
	hasStart bool
	hasEnd   bool

	seasonToken string
}

// CompilePredicate builds the reusable predicate for one query.
func CompilePredicate(f domain.SearchFilter, matches []domain.MatchRef) *Predicate {
	p := &Predicate{
		filter:  f,
		matches: make(map[int]domain.MatchRef, len(matches)),
	}
	for _, m := range matches {
		p.matches[m.MatchID] = m
	}
	if !f.StartDate.IsZero() {
		p.hasStart = true
		p.startDay = epochDay(f.StartDate)
	}
	if !f.EndDate.IsZero() {
		p.hasEnd = true
		p.endDay = epochDay(f.EndDate)
	}
	if f.Season != "" && f.Season != domain.AllSeasons {
		p.seasonToken = f.Season
	}
	return p
}

// Match returns the reference row for a match id.
func (p *Predicate) Match(matchID int) (domain.MatchRef, bool) {
	m, ok := p.matches[matchID]
	return m, ok
}

// Line reports whether a performance row survives the filter. Match-level
// restrictions are resolved through the reference set; a row whose match is
// missing from the reference set fails only when such a restriction is
// active.
func (p *Predicate) Line(meta domain.LineMeta) bool {
	f := p.filter
	if meta.MatchType != f.MatchType {
		return false
	}
	if f.TeamID != 0 && meta.TeamID != f.TeamID {
		return false
	}
	if f.OpponentsID != 0 && meta.OpponentsID != f.OpponentsID {
		return false
	}
	if f.GroundID != 0 && meta.GroundID != f.GroundID {
		return false
	}
	if p.seasonToken != "" && meta.SeriesDate != p.seasonToken {
		return false
	}

	m, ok := p.matches[meta.MatchID]
	if !ok {
		return !p.needsMatch()
	}
	return p.matchLevel(m, meta.TeamID)
}

// MatchQualifies applies the match-level restrictions from the team
// perspective of the filter.
func (p *Predicate) MatchQualifies(m domain.MatchRef) bool {
	return p.matchQualifiesFor(m, p.filter.TeamID)
}

// matchQualifiesFor evaluates the match-level restrictions from an explicit
// team perspective, as needed when walking participation rows.
func (p *Predicate) matchQualifiesFor(m domain.MatchRef, teamID int) bool {
	f := p.filter
	if m.MatchType != f.MatchType {
		return false
	}
	if f.GroundID != 0 && m.GroundID != f.GroundID {
		return false
	}
	if p.seasonToken != "" && m.SeriesDate != p.seasonToken {
		return false
	}
	return p.matchLevel(m, teamID)
}

// needsMatch reports whether any restriction requires the match reference.
func (p *Predicate) needsMatch() bool {
	f := p.filter
	if f.SubType() != f.MatchType {
		return true
	}
	if f.HostCountryID != 0 || p.hasStart || p.hasEnd {
		return true
	}
	if f.Venue != 0 && f.Venue != domain.VenueAll {
		return true
	}
	return f.MatchResult != domain.MatchResultAny
}

func (p *Predicate) matchLevel(m domain.MatchRef, teamID int) bool {
	f := p.filter
	if !m.HasSubType(f.SubType()) {
		return false
	}
	if f.HostCountryID != 0 && m.HostCountryID != f.HostCountryID {
		return false
	}
	day := epochDay(m.StartDate)
	if p.hasStart && day < p.startDay {
		return false
	}
	if p.hasEnd && day > p.endDay {
		return false
	}
	if !venueMatches(f.Venue, m, teamID) {
		return false
	}
	return resultMatches(f.MatchResult, m, teamID)
}

// epochDay normalizes a timestamp to whole days since the Unix epoch,
// negative for pre-1970 fixtures. Comparing on days sidesteps time zone and
// format ambiguity in calendar strings.
func epochDay(t time.Time) int64 {
	y, m, d := t.UTC().Date()
	secs := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix()
	if secs < 0 {
		return (secs - 86399) / 86400
	}
	return secs / 86400
}

func venueMatches(v domain.Venue, m domain.MatchRef, teamID int) bool {
	if v == 0 || v == domain.VenueAll || teamID == 0 {
		return true
	}
	return v.Includes(venueOf(m, teamID))
}

// venueOf classifies a match from one team's perspective.
func venueOf(m domain.MatchRef, teamID int) domain.Venue {
	if m.NeutralVenue {
		return domain.VenueNeutral
	}
	if m.HomeTeamID == teamID {
		return domain.VenueHome
	}
	return domain.VenueAway
}

func resultMatches(code domain.MatchResult, m domain.MatchRef, teamID int) bool {
	switch code {
	case domain.MatchResultAny:
		return true
	case domain.MatchResultDrawn:
		return m.ResultType == domain.ResultDrawn
	case domain.MatchResultTied:
		return m.ResultType == domain.ResultTied
	case domain.MatchResultNoResult:
		return m.ResultType == domain.ResultNoResult || m.ResultType == domain.ResultAbandoned
	}

	if m.ResultType != domain.ResultDecided {
		return false
	}

	var mechanism domain.VictoryType
	switch code {
	case domain.MatchResultWonInnings, domain.MatchResultLostInnings:
		mechanism = domain.VictoryInnings
	case domain.MatchResultWonRuns, domain.MatchResultLostRuns:
		mechanism = domain.VictoryRuns
	case domain.MatchResultWonWickets, domain.MatchResultLostWickets:
		mechanism = domain.VictoryWickets
	}
	if mechanism != domain.VictoryUnknown && m.VictoryType != mechanism {
		return false
	}

	won := code >= domain.MatchResultWon && code <= domain.MatchResultWonWickets
	if teamID == 0 {
		// No team perspective: any decided match with the mechanism counts.
		return true
	}
	if won {
		return m.WinnerTeamID == teamID
	}
	return m.WinnerTeamID != 0 && m.WinnerTeamID != teamID
}
