package stats

import (
	"fmt"
	"strconv"

	"cricket-stats/internal/domain"
)

// dimValue identifies one value along the grouping axis. Id-based axes
// (grounds, host country, opponents, year) use ID; label-based axes (series,
// season) use Label. The zero value is the single "overall" bucket.
type dimValue struct {
	ID    int
	Label string
}

// groupKey is the grouping tuple shared by the aggregators and the
// match-count index, so their outputs join directly.
type groupKey struct {
	Entity int
	Dim    dimValue
}

// lineDimension computes a performance line's dimension value, cross-checked
// against the match reference. A disagreement means the line would join to
// two different dimension values and is a data-integrity fault.
func lineDimension(d domain.Dimension, meta domain.LineMeta, p *Predicate) (dimValue, error) {
	ref, haveRef := p.Match(meta.MatchID)
	switch d {
	case domain.DimensionSeries:
		if haveRef && ref.SeriesDate != meta.SeriesDate {
			return dimValue{}, ambiguous(meta.MatchID, "series", ref.SeriesDate, meta.SeriesDate)
		}
		return dimValue{Label: meta.SeriesDate}, nil
	case domain.DimensionSeason:
		if haveRef && ref.Season != meta.Season {
			return dimValue{}, ambiguous(meta.MatchID, "season", ref.Season, meta.Season)
		}
		return dimValue{Label: meta.Season}, nil
	case domain.DimensionYear:
		if haveRef && ref.MatchStartYear != meta.MatchStartYear {
			return dimValue{}, ambiguous(meta.MatchID, "year",
				strconv.Itoa(ref.MatchStartYear), strconv.Itoa(meta.MatchStartYear))
		}
		return dimValue{ID: meta.MatchStartYear}, nil
	case domain.DimensionGrounds:
		if haveRef && ref.GroundID != meta.GroundID {
			return dimValue{}, ambiguous(meta.MatchID, "ground",
				strconv.Itoa(ref.GroundID), strconv.Itoa(meta.GroundID))
		}
		return dimValue{ID: meta.GroundID}, nil
	case domain.DimensionHostCountry:
		if !haveRef {
			return dimValue{}, nil
		}
		return dimValue{ID: ref.HostCountryID}, nil
	case domain.DimensionOpponents:
		return dimValue{ID: meta.OpponentsID}, nil
	}
	return dimValue{}, nil
}

func ambiguous(matchID int, axis, refValue, lineValue string) error {
	return fmt.Errorf("match %d %s %q vs line %s %q: %w",
		matchID, axis, refValue, axis, lineValue, ErrAmbiguousDimension)
}

// matchDimension computes the same dimension value from the match reference,
// from the perspective of teamID for the opponents axis. Used by the
// match-count index so its keys line up with the aggregators'.
func matchDimension(d domain.Dimension, m domain.MatchRef, teamID int) dimValue {
	switch d {
	case domain.DimensionSeries:
		return dimValue{Label: m.SeriesDate}
	case domain.DimensionSeason:
		return dimValue{Label: m.Season}
	case domain.DimensionYear:
		return dimValue{ID: m.MatchStartYear}
	case domain.DimensionGrounds:
		return dimValue{ID: m.GroundID}
	case domain.DimensionHostCountry:
		return dimValue{ID: m.HostCountryID}
	case domain.DimensionOpponents:
		return dimValue{ID: opponentOf(m, teamID)}
	}
	return dimValue{}
}

func opponentOf(m domain.MatchRef, teamID int) int {
	if m.HomeTeamID == teamID {
		return m.AwayTeamID
	}
	return m.HomeTeamID
}

// NameResolver supplies denormalized display names for the final join step.
type NameResolver interface {
	Player(id int) (domain.Player, bool)
	TeamName(id int) (string, bool)
	GroundName(id int) (string, bool)
	CountryName(id int) (string, bool)
}

const unknownName = "Unknown"

func teamNameOr(names NameResolver, id int) string {
	if id == 0 {
		return unknownName
	}
	if n, ok := names.TeamName(id); ok {
		return n
	}
	return unknownName
}

func groundNameOr(names NameResolver, id int) string {
	if n, ok := names.GroundName(id); ok {
		return n
	}
	return unknownName
}

func countryNameOr(names NameResolver, id int) string {
	if n, ok := names.CountryName(id); ok {
		return n
	}
	return unknownName
}

// dimensionLabels resolves the display strings a record carries for its
// dimension value.
func dimensionLabels(d domain.Dimension, dv dimValue, names NameResolver) (year, ground, country, opponents string) {
	switch d {
	case domain.DimensionSeries, domain.DimensionSeason:
		year = dv.Label
	case domain.DimensionYear:
		year = strconv.Itoa(dv.ID)
	case domain.DimensionGrounds:
		ground = groundNameOr(names, dv.ID)
	case domain.DimensionHostCountry:
		country = countryNameOr(names, dv.ID)
	case domain.DimensionOpponents:
		opponents = teamNameOr(names, dv.ID)
	}
	return year, ground, country, opponents
}
