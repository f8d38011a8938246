package stats

import "cricket-stats/internal/domain"

type teamTotals struct {
	key groupKey

	innings int
	runs    int
	wickets int
	balls   int

	highest      int
	lowestAllOut int
	sawAllOut    bool

	fiveFors int
	tenFors  int
}

// AggregateTeam aggregates team innings lines per (team, dimension value).
// The entity is the batting side when f.TeamBattingRecord is set, otherwise
// the fielding side, so the same lines serve "runs scored" and "runs
// conceded" views. Bowling lines, when supplied, contribute the five-for and
// ten-for haul counts of the side's bowlers. A ten-for is one bowler taking
// ten wickets across a match, never the attack's combined total.
func AggregateTeam(
	teamLines []domain.TeamLine,
	bowlingLines []domain.BowlingLine,
	matches []domain.MatchRef,
	f domain.SearchFilter,
	dim domain.Dimension,
	names NameResolver,
) ([]domain.TeamRecord, error) {
	p := CompilePredicate(f, matches)

	groups := make(map[groupKey]*teamTotals)
	var order []*teamTotals

	lookup := func(key groupKey) *teamTotals {
		t, ok := groups[key]
		if !ok {
			t = &teamTotals{key: key}
			groups[key] = t
			order = append(order, t)
		}
		return t
	}

	for _, l := range teamLines {
		meta := teamPerspective(l.LineMeta, f.TeamBattingRecord)
		if !p.Line(meta) {
			continue
		}
		key, err := teamKey(dim, meta, l, p)
		if err != nil {
			return nil, err
		}
		t := lookup(key)
		t.innings++
		t.runs += l.Runs
		t.wickets += l.Wickets
		t.balls += l.Balls
		if l.Runs > t.highest {
			t.highest = l.Runs
		}
		if l.AllOut && (!t.sawAllOut || l.Runs < t.lowestAllOut) {
			t.lowestAllOut = l.Runs
			t.sawAllOut = true
		}
	}

	// Bowling hauls belong to the bowler's own side, which is the fielding
	// perspective of the team lines.
	fives := f.FiveForThreshold()
	type bowlerMatch struct {
		match  int
		bowler int
	}
	byMatch := make(map[groupKey]map[bowlerMatch]int)
	if f.TeamBattingRecord {
		bowlingLines = nil
	}
	for _, l := range bowlingLines {
		if !p.Line(l.LineMeta) {
			continue
		}
		// The haul key must land on the same group the team line opened,
		// including the match-id keyed listing shapes.
		var dv dimValue
		switch dim {
		case domain.DimensionInningsByInnings:
			dv = dimValue{ID: l.MatchID*10 + l.InningsNumber}
		case domain.DimensionMatchTotals:
			dv = dimValue{ID: l.MatchID}
		default:
			var err error
			dv, err = lineDimension(dim, l.LineMeta, p)
			if err != nil {
				return nil, err
			}
		}
		key := groupKey{Entity: l.TeamID, Dim: dv}
		t, ok := groups[key]
		if !ok {
			continue
		}
		if l.Wickets >= fives {
			t.fiveFors++
		}
		figs, ok := byMatch[key]
		if !ok {
			figs = make(map[bowlerMatch]int)
			byMatch[key] = figs
		}
		figs[bowlerMatch{l.MatchID, l.PlayerID}] += l.Wickets
	}
	for key, figs := range byMatch {
		for _, wkts := range figs {
			if wkts >= 10 {
				groups[key].tenFors++
			}
		}
	}

	index := BuildTeamMatchCountIndex(dim, matches, p)

	kept := make([]*teamTotals, 0, len(order))
	for _, t := range order {
		if t.runs >= f.QualificationLimit {
			kept = append(kept, t)
		}
	}

	recs := make([]domain.TeamRecord, len(kept))
	forEachGroup(len(kept), func(i int) {
		recs[i] = teamRecord(kept[i], dim, matches, f, p, index, names)
	})
	return recs, nil
}

// teamPerspective flips a team line between batting and fielding entity.
func teamPerspective(meta domain.LineMeta, batting bool) domain.LineMeta {
	if batting {
		return meta
	}
	meta.TeamID, meta.OpponentsID = meta.OpponentsID, meta.TeamID
	return meta
}

func teamKey(dim domain.Dimension, meta domain.LineMeta, l domain.TeamLine, p *Predicate) (groupKey, error) {
	switch dim {
	case domain.DimensionInningsByInnings:
		return groupKey{Entity: meta.TeamID, Dim: dimValue{ID: l.MatchID*10 + l.InningsNumber}}, nil
	case domain.DimensionMatchTotals:
		return groupKey{Entity: meta.TeamID, Dim: dimValue{ID: l.MatchID}}, nil
	}
	dv, err := lineDimension(dim, meta, p)
	if err != nil {
		return groupKey{}, err
	}
	return groupKey{Entity: meta.TeamID, Dim: dv}, nil
}

func teamRecord(t *teamTotals, dim domain.Dimension, matches []domain.MatchRef, f domain.SearchFilter, p *Predicate, index MatchCountIndex, names NameResolver) domain.TeamRecord {
	r := domain.TeamRecord{
		TeamID:       t.key.Entity,
		Innings:      t.innings,
		Runs:         t.runs,
		Wickets:      t.wickets,
		Balls:        t.balls,
		HighestTotal: t.highest,
		LowestAllOut: t.lowestAllOut,
		FiveFors:     t.fiveFors,
		TenFors:      t.tenFors,
	}
	if dim.Grouped() {
		r.Matches = index[t.key]
	} else {
		r.Matches = 1
	}

	for _, m := range matches {
		if m.HomeTeamID != t.key.Entity && m.AwayTeamID != t.key.Entity {
			continue
		}
		if !p.matchQualifiesFor(m, t.key.Entity) {
			continue
		}
		if dim.Grouped() && matchDimension(dim, m, t.key.Entity) != t.key.Dim {
			continue
		}
		switch m.ResultType {
		case domain.ResultDecided:
			if m.WinnerTeamID == t.key.Entity {
				r.Won++
			} else {
				r.Lost++
			}
		case domain.ResultDrawn:
			r.Drawn++
		case domain.ResultTied:
			r.Tied++
		}
	}

	r.Avg = BowlingAverage(t.runs, t.wickets)
	r.RunRate = RunRate(t.runs, t.balls)

	r.Name = teamNameOr(names, t.key.Entity)
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
