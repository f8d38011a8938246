package stats

import (
	"sort"

	"cricket-stats/internal/domain"
)

// Partnership storage is per-partner: every stand appears as two adjacent
// rows once the rows are ordered, so the second partner of an instance is
// whichever row immediately follows within the same partition. Aggregating a
// pair therefore double-counts every sum, which is undone by halving.

type pairKey struct {
	Player1 int
	Player2 int
	Dim     dimValue
}

type partnershipTotals struct {
	key    pairKey
	teamID int
	wicket int

	rowCount    int
	runSum      int
	unbrokenSum int
	hundredSum  int
	fiftySum    int

	highest         int
	highestUnbroken bool
}

// AggregatePartnership resolves partner pairs and aggregates their stands.
// "Multiple" rows (a stand resumed after an admin correction) are excluded
// from aggregate views but surfaced in the innings-by-innings listing.
func AggregatePartnership(
	lines []domain.PartnershipLine,
	matches []domain.MatchRef,
	f domain.SearchFilter,
	dim domain.Dimension,
	names NameResolver,
) ([]domain.PartnershipRecord, error) {
	p := CompilePredicate(f, matches)

	rows := make([]domain.PartnershipLine, 0, len(lines))
	for _, l := range lines {
		if !p.Line(l.LineMeta) {
			continue
		}
		if f.PartnershipWicket != 0 && l.Wicket != f.PartnershipWicket {
			continue
		}
		rows = append(rows, l)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.MatchID != b.MatchID {
			return a.MatchID < b.MatchID
		}
		if a.TeamID != b.TeamID {
			return a.TeamID < b.TeamID
		}
		if a.InningsNumber != b.InningsNumber {
			return a.InningsNumber < b.InningsNumber
		}
		if a.Wicket != b.Wicket {
			return a.Wicket < b.Wicket
		}
		if a.Multiple != b.Multiple {
			return !a.Multiple
		}
		if a.Runs != b.Runs {
			return a.Runs < b.Runs
		}
		if a.Unbroken != b.Unbroken {
			return !a.Unbroken
		}
		return a.PlayerID < b.PlayerID
	})

	// Peek-next pairing: annotate each row with its partner.
	partnerOf := make([]int, len(rows))
	for i := 0; i < len(rows); {
		if i+1 < len(rows) && samePartition(rows[i], rows[i+1]) {
			partnerOf[i] = rows[i+1].PlayerID
			partnerOf[i+1] = rows[i].PlayerID
			i += 2
			continue
		}
		partnerOf[i] = 0
		i++
	}

	if dim == domain.DimensionInningsByInnings {
		return partnershipInnings(rows, partnerOf, f, names)
	}
	return partnershipGrouped(rows, partnerOf, f, dim, p, names)
}

// samePartition reports whether two ordered rows are the two halves of one
// partnership instance.
func samePartition(a, b domain.PartnershipLine) bool {
	return a.MatchID == b.MatchID &&
		a.TeamID == b.TeamID &&
		a.InningsNumber == b.InningsNumber &&
		a.Wicket == b.Wicket &&
		a.Multiple == b.Multiple &&
		a.Runs == b.Runs &&
		a.Unbroken == b.Unbroken
}

func partnershipInnings(rows []domain.PartnershipLine, partnerOf []int, f domain.SearchFilter, names NameResolver) ([]domain.PartnershipRecord, error) {
	var recs []domain.PartnershipRecord
	for i := 0; i < len(rows); i++ {
		l := rows[i]
		// The trailing half of a pair duplicates the leading half.
		if i > 0 && samePartition(rows[i-1], l) && partnerOf[i-1] == l.PlayerID {
			continue
		}
		if l.Runs < f.QualificationLimit {
			continue
		}
		r := domain.PartnershipRecord{
			Player1ID:       l.PlayerID,
			Player2ID:       partnerOf[i],
			Wicket:          l.Wicket,
			Innings:         1,
			Runs:            l.Runs,
			HighestScore:    l.Runs,
			HighestUnbroken: l.Unbroken,
			Multiple:        l.Multiple,
			Year:            l.SeriesDate,
		}
		if l.Unbroken {
			r.Unbroken = 1
		}
		switch {
		case l.Runs >= 100:
			r.Hundreds = 1
		case l.Runs >= 50:
			r.Fifties = 1
		}
		r.Avg = BattingAverage(r.Runs, r.Innings, r.Unbroken)
		r.Player1Name, r.Player2Name = pairNames(names, l.PlayerID, partnerOf[i])
		r.Team = teamNameOr(names, l.TeamID)
		r.Opponents = teamNameOr(names, l.OpponentsID)
		r.Ground = groundNameOr(names, l.GroundID)
		recs = append(recs, r)
	}
	return recs, nil
}

func partnershipGrouped(
	rows []domain.PartnershipLine,
	partnerOf []int,
	f domain.SearchFilter,
	dim domain.Dimension,
	p *Predicate,
	names NameResolver,
) ([]domain.PartnershipRecord, error) {
	groups := make(map[pairKey]*partnershipTotals)
	var order []*partnershipTotals

	for i, l := range rows {
		if l.Multiple {
			continue
		}
		// A row without its second half cannot be halved into a pair;
		// stray singles only surface in the innings listing.
		if partnerOf[i] == 0 {
			continue
		}
		var dv dimValue
		if dim == domain.DimensionMatchTotals {
			dv = dimValue{ID: l.MatchID}
		} else {
			var err error
			dv, err = lineDimension(dim, l.LineMeta, p)
			if err != nil {
				return nil, err
			}
		}
		p1, p2 := l.PlayerID, partnerOf[i]
		if p2 != 0 && p2 < p1 {
			p1, p2 = p2, p1
		}
		key := pairKey{Player1: p1, Player2: p2, Dim: dv}
		t, ok := groups[key]
		if !ok {
			t = &partnershipTotals{key: key, teamID: l.TeamID, wicket: l.Wicket}
			groups[key] = t
			order = append(order, t)
		} else {
			if t.teamID != l.TeamID {
				t.teamID = 0
			}
			if t.wicket != l.Wicket {
				t.wicket = 0
			}
		}
		t.rowCount++
		t.runSum += l.Runs
		if l.Unbroken {
			t.unbrokenSum++
		}
		switch {
		case l.Runs >= 100:
			t.hundredSum++
		case l.Runs >= 50:
			t.fiftySum++
		}
		if l.Runs > t.highest || (l.Runs == t.highest && l.Unbroken && !t.highestUnbroken) {
			t.highest = l.Runs
			t.highestUnbroken = l.Unbroken
		}
	}

	kept := make([]*partnershipTotals, 0, len(order))
	for _, t := range order {
		if t.runSum/2 >= f.QualificationLimit {
			kept = append(kept, t)
		}
	}

	recs := make([]domain.PartnershipRecord, len(kept))
	forEachGroup(len(kept), func(i int) {
		recs[i] = partnershipRecord(kept[i], dim, f, names)
	})
	return recs, nil
}

func partnershipRecord(t *partnershipTotals, dim domain.Dimension, f domain.SearchFilter, names NameResolver) domain.PartnershipRecord {
	// Every instance contributed both partners' rows, so sums are halved.
	r := domain.PartnershipRecord{
		Player1ID:       t.key.Player1,
		Player2ID:       t.key.Player2,
		Wicket:          t.wicket,
		Innings:         t.rowCount / 2,
		Unbroken:        t.unbrokenSum / 2,
		Runs:            t.runSum / 2,
		Hundreds:        t.hundredSum / 2,
		Fifties:         t.fiftySum / 2,
		HighestScore:    t.highest,
		HighestUnbroken: t.highestUnbroken,
	}
	r.Avg = BattingAverage(r.Runs, r.Innings, r.Unbroken)
	r.Player1Name, r.Player2Name = pairNames(names, t.key.Player1, t.key.Player2)

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

func pairNames(names NameResolver, p1, p2 int) (string, string) {
	n1, n2 := unknownName, unknownName
	if pl, ok := names.Player(p1); ok {
		n1 = pl.FullName
	}
	if pl, ok := names.Player(p2); ok {
		n2 = pl.FullName
	}
	return n1, n2
}
