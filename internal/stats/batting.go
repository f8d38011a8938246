package stats

import "cricket-stats/internal/domain"

type battingTotals struct {
	key    groupKey
	teamID int

	innings  int
	notOuts  int
	runs     int
	balls    int
	fours    int
	sixes    int
	hundreds int
	fifties  int
	ducks    int

	highest       int
	highestNotOut bool
	sawInnings    bool
}

func (t *battingTotals) add(l domain.BattingLine) {
	notOut := domain.IsNotOut(l.DismissalCode)
	t.innings++
	if notOut {
		t.notOuts++
	}
	t.runs += l.Runs
	t.balls += l.Balls
	t.fours += l.Fours
	t.sixes += l.Sixes
	switch {
	case l.Runs >= 100:
		t.hundreds++
	case l.Runs >= 50:
		t.fifties++
	}
	if l.Runs == 0 && !notOut {
		t.ducks++
	}
	// 100 not out outranks 100 all out at equal runs.
	if !t.sawInnings || l.Runs > t.highest || (l.Runs == t.highest && notOut && !t.highestNotOut) {
		t.highest = l.Runs
		t.highestNotOut = notOut
		t.sawInnings = true
	}
}

// AggregateBatting runs the full batting pipeline: filter, group by
// (player, dimension value), reduce to sums, join names and match counts,
// and apply the qualification threshold on runs.
func AggregateBatting(
	lines []domain.BattingLine,
	matches []domain.MatchRef,
	parts []domain.Participation,
	f domain.SearchFilter,
	dim domain.Dimension,
	names NameResolver,
) ([]domain.BattingRecord, error) {
	p := CompilePredicate(f, matches)

	switch dim {
	case domain.DimensionInningsByInnings:
		return battingInnings(lines, f, p, names)
	case domain.DimensionMatchTotals:
		return battingGrouped(lines, parts, f, domain.DimensionMatchTotals, p, names)
	}
	return battingGrouped(lines, parts, f, dim, p, names)
}

func battingGrouped(
	lines []domain.BattingLine,
	parts []domain.Participation,
	f domain.SearchFilter,
	dim domain.Dimension,
	p *Predicate,
	names NameResolver,
) ([]domain.BattingRecord, error) {
	groups := make(map[groupKey]*battingTotals)
	var order []*battingTotals

	for _, l := range lines {
		if !p.Line(l.LineMeta) || !domain.CountsAsInnings(l.DismissalCode) {
			continue
		}
		key, err := battingKey(dim, l, p)
		if err != nil {
			return nil, err
		}
		t, ok := groups[key]
		if !ok {
			t = &battingTotals{key: key, teamID: l.TeamID}
			groups[key] = t
			order = append(order, t)
		} else if t.teamID != l.TeamID {
			t.teamID = 0
		}
		t.add(l)
	}

	index := BuildMatchCountIndex(dim, parts, p)

	kept := make([]*battingTotals, 0, len(order))
	for _, t := range order {
		if t.runs >= f.QualificationLimit {
			kept = append(kept, t)
		}
	}

	recs := make([]domain.BattingRecord, len(kept))
	forEachGroup(len(kept), func(i int) {
		recs[i] = battingRecord(kept[i], dim, f, index, names)
	})

	if f.AppendTotal && dim.Grouped() && dim != domain.DimensionOverall && len(recs) > 0 {
		recs = append(recs, battingTotalRow(recs))
	}
	return recs, nil
}

func battingKey(dim domain.Dimension, l domain.BattingLine, p *Predicate) (groupKey, error) {
	if dim == domain.DimensionMatchTotals {
		return groupKey{Entity: l.PlayerID, Dim: dimValue{ID: l.MatchID}}, nil
	}
	dv, err := lineDimension(dim, l.LineMeta, p)
	if err != nil {
		return groupKey{}, err
	}
	return groupKey{Entity: l.PlayerID, Dim: dv}, nil
}

func battingRecord(t *battingTotals, dim domain.Dimension, f domain.SearchFilter, index MatchCountIndex, names NameResolver) domain.BattingRecord {
	r := domain.BattingRecord{
		PlayerID:           t.key.Entity,
		Innings:            t.innings,
		NotOuts:            t.notOuts,
		Runs:               t.runs,
		Balls:              t.balls,
		Fours:              t.fours,
		Sixes:              t.sixes,
		Hundreds:           t.hundreds,
		Fifties:            t.fifties,
		Ducks:              t.ducks,
		HighestScore:       t.highest,
		HighestScoreNotOut: t.highestNotOut,
	}
	if dim == domain.DimensionMatchTotals {
		r.Matches = 1
	} else {
		r.Matches = index[t.key]
	}

	r.Avg = BattingAverage(t.runs, t.innings, t.notOuts)
	r.StrikeRate = BattingStrikeRate(t.runs, t.balls)
	r.BI = BattingImpact(r.Avg, r.StrikeRate)

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

// battingTotalRow is the synthetic "Total" appended to career-overview
// groupings.
func battingTotalRow(recs []domain.BattingRecord) domain.BattingRecord {
	total := domain.BattingRecord{Name: "Total", SortName: "Total", Year: "Total"}
	for _, r := range recs {
		total.Matches += r.Matches
		total.Innings += r.Innings
		total.NotOuts += r.NotOuts
		total.Runs += r.Runs
		total.Balls += r.Balls
		total.Fours += r.Fours
		total.Sixes += r.Sixes
		total.Hundreds += r.Hundreds
		total.Fifties += r.Fifties
		total.Ducks += r.Ducks
		if r.HighestScore > total.HighestScore ||
			(r.HighestScore == total.HighestScore && r.HighestScoreNotOut) {
			total.HighestScore = r.HighestScore
			total.HighestScoreNotOut = r.HighestScoreNotOut
		}
	}
	total.Avg = BattingAverage(total.Runs, total.Innings, total.NotOuts)
	total.StrikeRate = BattingStrikeRate(total.Runs, total.Balls)
	total.BI = BattingImpact(total.Avg, total.StrikeRate)
	return total
}

// battingInnings is the innings-by-innings listing: one record per counted
// innings, no grouping.
func battingInnings(lines []domain.BattingLine, f domain.SearchFilter, p *Predicate, names NameResolver) ([]domain.BattingRecord, error) {
	var recs []domain.BattingRecord
	for _, l := range lines {
		if !p.Line(l.LineMeta) || !domain.CountsAsInnings(l.DismissalCode) {
			continue
		}
		if l.Runs < f.QualificationLimit {
			continue
		}
		notOut := domain.IsNotOut(l.DismissalCode)
		r := domain.BattingRecord{
			PlayerID:           l.PlayerID,
			Matches:            1,
			Innings:            1,
			Runs:               l.Runs,
			Balls:              l.Balls,
			Fours:              l.Fours,
			Sixes:              l.Sixes,
			HighestScore:       l.Runs,
			HighestScoreNotOut: notOut,
			Year:               l.SeriesDate,
			StrikeRate:         BattingStrikeRate(l.Runs, l.Balls),
		}
		if notOut {
			r.NotOuts = 1
		}
		switch {
		case l.Runs >= 100:
			r.Hundreds = 1
		case l.Runs >= 50:
			r.Fifties = 1
		}
		if pl, ok := names.Player(l.PlayerID); ok {
			r.Name = pl.FullName
			r.SortName = pl.SortName
			r.CareerSpan = pl.CareerSpan()
		}
		r.Team = teamNameOr(names, l.TeamID)
		r.Opponents = teamNameOr(names, l.OpponentsID)
		r.Ground = groundNameOr(names, l.GroundID)
		recs = append(recs, r)
	}
	return recs, nil
}
