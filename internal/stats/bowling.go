package stats

import "cricket-stats/internal/domain"

type matchFigures struct {
	wickets int
	runs    int
}

type bowlingTotals struct {
	key    groupKey
	teamID int

	innings int
	balls   int
	maidens int
	runs    int
	wickets int
	dots    int

	fiveFor int

	bestInnWickets int
	bestInnRuns    int
	sawBest        bool

	byMatch map[int]*matchFigures
}

func (t *bowlingTotals) add(l domain.BowlingLine, fivesThreshold int) {
	t.innings++
	t.balls += l.Balls
	t.maidens += l.Maidens
	t.runs += l.Runs
	t.wickets += l.Wickets
	t.dots += l.Dots
	if l.Wickets >= fivesThreshold {
		t.fiveFor++
	}
	if !t.sawBest || betterBowling(l.Wickets, l.Runs, t.bestInnWickets, t.bestInnRuns) {
		t.bestInnWickets = l.Wickets
		t.bestInnRuns = l.Runs
		t.sawBest = true
	}
	fig, ok := t.byMatch[l.MatchID]
	if !ok {
		fig = &matchFigures{}
		t.byMatch[l.MatchID] = fig
	}
	fig.wickets += l.Wickets
	fig.runs += l.Runs
}

// AggregateBowling mirrors the batting pipeline for bowling lines. The
// qualification threshold applies to wickets; the five-for threshold is a
// separate parameter because shorter formats use four-wicket hauls.
func AggregateBowling(
	lines []domain.BowlingLine,
	matches []domain.MatchRef,
	parts []domain.Participation,
	f domain.SearchFilter,
	dim domain.Dimension,
	names NameResolver,
) ([]domain.BowlingRecord, error) {
	p := CompilePredicate(f, matches)

	if dim == domain.DimensionInningsByInnings {
		return bowlingInnings(lines, f, p, names)
	}
	return bowlingGrouped(lines, parts, f, dim, p, names)
}

func bowlingGrouped(
	lines []domain.BowlingLine,
	parts []domain.Participation,
	f domain.SearchFilter,
	dim domain.Dimension,
	p *Predicate,
	names NameResolver,
) ([]domain.BowlingRecord, error) {
	fives := f.FiveForThreshold()
	groups := make(map[groupKey]*bowlingTotals)
	var order []*bowlingTotals

	for _, l := range lines {
		if !p.Line(l.LineMeta) {
			continue
		}
		// A line without a ball bowled is not an innings and never opens
		// a group on its own.
		if l.Balls == 0 {
			continue
		}
		key, err := bowlingKey(dim, l, p)
		if err != nil {
			return nil, err
		}
		t, ok := groups[key]
		if !ok {
			t = &bowlingTotals{key: key, teamID: l.TeamID, byMatch: make(map[int]*matchFigures)}
			groups[key] = t
			order = append(order, t)
		} else if t.teamID != l.TeamID {
			t.teamID = 0
		}
		t.add(l, fives)
	}

	index := BuildMatchCountIndex(dim, parts, p)

	kept := make([]*bowlingTotals, 0, len(order))
	for _, t := range order {
		if t.wickets >= f.QualificationLimit {
			kept = append(kept, t)
		}
	}

	recs := make([]domain.BowlingRecord, len(kept))
	forEachGroup(len(kept), func(i int) {
		recs[i] = bowlingRecord(kept[i], dim, f, index, names)
	})

	if f.AppendTotal && dim.Grouped() && dim != domain.DimensionOverall && len(recs) > 0 {
		recs = append(recs, bowlingTotalRow(recs))
	}
	return recs, nil
}

func bowlingKey(dim domain.Dimension, l domain.BowlingLine, p *Predicate) (groupKey, error) {
	if dim == domain.DimensionMatchTotals {
		return groupKey{Entity: l.PlayerID, Dim: dimValue{ID: l.MatchID}}, nil
	}
	dv, err := lineDimension(dim, l.LineMeta, p)
	if err != nil {
		return groupKey{}, err
	}
	return groupKey{Entity: l.PlayerID, Dim: dv}, nil
}

func bowlingRecord(t *bowlingTotals, dim domain.Dimension, f domain.SearchFilter, index MatchCountIndex, names NameResolver) domain.BowlingRecord {
	r := domain.BowlingRecord{
		PlayerID:           t.key.Entity,
		Innings:            t.innings,
		Balls:              t.balls,
		Maidens:            t.maidens,
		Runs:               t.runs,
		Wickets:            t.wickets,
		Dots:               t.dots,
		FiveFor:            t.fiveFor,
		BestInningsWickets: t.bestInnWickets,
		BestInningsRuns:    t.bestInnRuns,
	}
	if dim == domain.DimensionMatchTotals {
		r.Matches = 1
	} else {
		r.Matches = index[t.key]
	}

	sawMatch := false
	for _, fig := range t.byMatch {
		if fig.wickets >= 10 {
			r.TenFor++
		}
		if !sawMatch || betterBowling(fig.wickets, fig.runs, r.BestMatchWickets, r.BestMatchRuns) {
			r.BestMatchWickets = fig.wickets
			r.BestMatchRuns = fig.runs
			sawMatch = true
		}
	}

	r.Avg = BowlingAverage(t.runs, t.wickets)
	r.Economy = Economy(t.runs, t.balls)
	r.StrikeRate = BowlingStrikeRate(t.balls, t.wickets)
	r.BI = BowlingImpact(r.Avg, t.runs, t.balls)

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

func bowlingTotalRow(recs []domain.BowlingRecord) domain.BowlingRecord {
	total := domain.BowlingRecord{Name: "Total", SortName: "Total", Year: "Total"}
	for _, r := range recs {
		total.Matches += r.Matches
		total.Innings += r.Innings
		total.Balls += r.Balls
		total.Maidens += r.Maidens
		total.Runs += r.Runs
		total.Wickets += r.Wickets
		total.Dots += r.Dots
		total.FiveFor += r.FiveFor
		total.TenFor += r.TenFor
		if betterBowling(r.BestInningsWickets, r.BestInningsRuns, total.BestInningsWickets, total.BestInningsRuns) {
			total.BestInningsWickets = r.BestInningsWickets
			total.BestInningsRuns = r.BestInningsRuns
		}
		if betterBowling(r.BestMatchWickets, r.BestMatchRuns, total.BestMatchWickets, total.BestMatchRuns) {
			total.BestMatchWickets = r.BestMatchWickets
			total.BestMatchRuns = r.BestMatchRuns
		}
	}
	total.Avg = BowlingAverage(total.Runs, total.Wickets)
	total.Economy = Economy(total.Runs, total.Balls)
	total.StrikeRate = BowlingStrikeRate(total.Balls, total.Wickets)
	total.BI = BowlingImpact(total.Avg, total.Runs, total.Balls)
	return total
}

func bowlingInnings(lines []domain.BowlingLine, f domain.SearchFilter, p *Predicate, names NameResolver) ([]domain.BowlingRecord, error) {
	fives := f.FiveForThreshold()
	var recs []domain.BowlingRecord
	for _, l := range lines {
		if !p.Line(l.LineMeta) || l.Balls == 0 {
			continue
		}
		if l.Wickets < f.QualificationLimit {
			continue
		}
		r := domain.BowlingRecord{
			PlayerID:           l.PlayerID,
			Matches:            1,
			Innings:            1,
			Balls:              l.Balls,
			Maidens:            l.Maidens,
			Runs:               l.Runs,
			Wickets:            l.Wickets,
			Dots:               l.Dots,
			BestInningsWickets: l.Wickets,
			BestInningsRuns:    l.Runs,
			Year:               l.SeriesDate,
			Economy:            Economy(l.Runs, l.Balls),
			StrikeRate:         BowlingStrikeRate(l.Balls, l.Wickets),
			Avg:                BowlingAverage(l.Runs, l.Wickets),
		}
		r.BI = BowlingImpact(r.Avg, l.Runs, l.Balls)
		if l.Wickets >= fives {
			r.FiveFor = 1
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
