package stats

import "cricket-stats/internal/domain"

type fieldingTotals struct {
	key    groupKey
	teamID int

	innings       int
	caughtFielder int
	caughtKeeper  int
	stumpings     int
}

func (t *fieldingTotals) dismissals() int {
	return t.caughtFielder + t.caughtKeeper + t.stumpings
}

// AggregateFielding groups fielding lines per (player, dimension value).
// Qualification applies to total dismissals (catches plus stumpings).
func AggregateFielding(
	lines []domain.FieldingLine,
	matches []domain.MatchRef,
	parts []domain.Participation,
	f domain.SearchFilter,
	dim domain.Dimension,
	names NameResolver,
) ([]domain.FieldingRecord, error) {
	p := CompilePredicate(f, matches)

	groups := make(map[groupKey]*fieldingTotals)
	var order []*fieldingTotals

	for _, l := range lines {
		if !p.Line(l.LineMeta) {
			continue
		}
		key, err := fieldingKey(dim, l, p)
		if err != nil {
			return nil, err
		}
		t, ok := groups[key]
		if !ok {
			t = &fieldingTotals{key: key, teamID: l.TeamID}
			groups[key] = t
			order = append(order, t)
		} else if t.teamID != l.TeamID {
			t.teamID = 0
		}
		t.innings++
		t.caughtFielder += l.CaughtFielder
		t.caughtKeeper += l.CaughtKeeper
		t.stumpings += l.Stumpings
	}

	index := BuildMatchCountIndex(dim, parts, p)

	kept := make([]*fieldingTotals, 0, len(order))
	for _, t := range order {
		if t.dismissals() >= f.QualificationLimit {
			kept = append(kept, t)
		}
	}

	recs := make([]domain.FieldingRecord, len(kept))
	forEachGroup(len(kept), func(i int) {
		recs[i] = fieldingRecord(kept[i], dim, f, index, names)
	})
	return recs, nil
}

func fieldingKey(dim domain.Dimension, l domain.FieldingLine, p *Predicate) (groupKey, error) {
	switch dim {
	case domain.DimensionInningsByInnings:
		return groupKey{Entity: l.PlayerID, Dim: dimValue{ID: l.MatchID*10 + l.InningsNumber}}, nil
	case domain.DimensionMatchTotals:
		return groupKey{Entity: l.PlayerID, Dim: dimValue{ID: l.MatchID}}, nil
	}
	dv, err := lineDimension(dim, l.LineMeta, p)
	if err != nil {
		return groupKey{}, err
	}
	return groupKey{Entity: l.PlayerID, Dim: dv}, nil
}

func fieldingRecord(t *fieldingTotals, dim domain.Dimension, f domain.SearchFilter, index MatchCountIndex, names NameResolver) domain.FieldingRecord {
	r := domain.FieldingRecord{
		PlayerID:      t.key.Entity,
		Innings:       t.innings,
		CaughtFielder: t.caughtFielder,
		CaughtKeeper:  t.caughtKeeper,
		Stumpings:     t.stumpings,
		Dismissals:    t.dismissals(),
	}
	if dim.Grouped() {
		r.Matches = index[t.key]
	} else {
		r.Matches = 1
	}

	if pl, ok := names.Player(t.key.Entity); ok {
		r.Name = pl.FullName
		r.SortName = pl.SortName
		r.CareerSpan = pl.CareerSpan()
	}

	teamID := f.TeamID
	if teamID == 0 {
		teamID = t.teamID
	}
	r.Team = teamNameOr(names, teamID)
	r.Opponents = teamNameOr(names, f.OpponentsID)
	if f.GroundID != 0 {
		r.Ground = groundNameOr(names, f.GroundID)
	}
	if f.HostCountryID != 0 {
		r.CountryName = countryNameOr(names, f.HostCountryID)
	}

	year, ground, country, opponents := dimensionLabels(dim, t.key.Dim, names)
	if year != "" {
		r.Year = year
	}
	if ground != "" {
		r.Ground = ground
	}
	if country != "" {
		r.CountryName = country
	}
	if opponents != "" {
		r.Opponents = opponents
	}
	return r
}
