package domain

// Ranked is implemented by every record family so the ranker can order and
// paginate them uniformly.
type Ranked interface {
	SortValue(SortOrder) float64
	SortLabel() string
}

// BattingRecord is one aggregated batting row: one per (player, dimension
// value), or one per innings/match for the listing shapes.
type BattingRecord struct {
	PlayerID    int
	Name        string
	SortName    string
	CareerSpan  string
	Team        string
	Opponents   string
	Ground      string
	CountryName string
	Year        string

	Matches  int
	Innings  int
	NotOuts  int
	Runs     int
	Balls    int
	Fours    int
	Sixes    int
	Hundreds int
	Fifties  int
	Ducks    int

	HighestScore       int
	HighestScoreNotOut bool

	Avg        float64
	StrikeRate float64
	BI         float64
}

func (r BattingRecord) SortValue(o SortOrder) float64 {
	switch o {
	case SortByRuns:
		return float64(r.Runs)
	case SortByAverage:
		return r.Avg
	case SortByStrikeRate:
		return r.StrikeRate
	case SortByImpact:
		return r.BI
	case SortByMatches:
		return float64(r.Matches)
	case SortByInnings:
		return float64(r.Innings)
	case SortByHighest:
		return float64(r.HighestScore)
	}
	return 0
}

func (r BattingRecord) SortLabel() string {
	if r.SortName != "" {
		return r.SortName
	}
	return r.Name
}

type BowlingRecord struct {
	PlayerID    int
	Name        string
	SortName    string
	CareerSpan  string
	Team        string
	Opponents   string
	Ground      string
	CountryName string
	Year        string

	Matches int
	Innings int
	Balls   int
	Maidens int
	Runs    int
	Wickets int
	Dots    int

	FiveFor int
	TenFor  int

	BestInningsWickets int
	BestInningsRuns    int
	BestMatchWickets   int
	BestMatchRuns      int

	Avg        float64
	Economy    float64
	StrikeRate float64
	BI         float64
}

func (r BowlingRecord) SortValue(o SortOrder) float64 {
	switch o {
	case SortByWickets:
		return float64(r.Wickets)
	case SortByRuns:
		return float64(r.Runs)
	case SortByAverage:
		return r.Avg
	case SortByEconomy:
		return r.Economy
	case SortByStrikeRate:
		return r.StrikeRate
	case SortByImpact:
		return r.BI
	case SortByMatches:
		return float64(r.Matches)
	case SortByInnings:
		return float64(r.Innings)
	}
	return 0
}

func (r BowlingRecord) SortLabel() string {
	if r.SortName != "" {
		return r.SortName
	}
	return r.Name
}

type FieldingRecord struct {
	PlayerID    int
	Name        string
	SortName    string
	CareerSpan  string
	Team        string
	Opponents   string
	Ground      string
	CountryName string
	Year        string

	Matches       int
	Innings       int
	CaughtFielder int
	CaughtKeeper  int
	Stumpings     int
	Dismissals    int
}

func (r FieldingRecord) SortValue(o SortOrder) float64 {
	switch o {
	case SortByDismissals:
		return float64(r.Dismissals)
	case SortByMatches:
		return float64(r.Matches)
	case SortByInnings:
		return float64(r.Innings)
	}
	return 0
}

func (r FieldingRecord) SortLabel() string {
	if r.SortName != "" {
		return r.SortName
	}
	return r.Name
}

type TeamRecord struct {
	TeamID      int
	Name        string
	Opponents   string
	Ground      string
	CountryName string
	Year        string

	Matches int
	Innings int
	Runs    int
	Wickets int
	Balls   int

	Won   int
	Lost  int
	Drawn int
	Tied  int

	HighestTotal int
	LowestAllOut int

	FiveFors int
	TenFors  int

	Avg     float64
	RunRate float64
}

func (r TeamRecord) SortValue(o SortOrder) float64 {
	switch o {
	case SortByRuns:
		return float64(r.Runs)
	case SortByWickets:
		return float64(r.Wickets)
	case SortByAverage:
		return r.Avg
	case SortByMatches:
		return float64(r.Matches)
	case SortByInnings:
		return float64(r.Innings)
	case SortByHighest:
		return float64(r.HighestTotal)
	}
	return 0
}

func (r TeamRecord) SortLabel() string { return r.Name }

// PartnershipRecord aggregates a pair's stands: one per (pair, dimension
// value), or one per stand in the innings-by-innings shape.
type PartnershipRecord struct {
	Player1ID   int
	Player2ID   int
	Player1Name string
	Player2Name string
	Team        string
	Opponents   string
	Ground      string
	CountryName string
	Year        string
	Wicket      int

	Innings  int
	Unbroken int
	Runs     int
	Hundreds int
	Fifties  int

	HighestScore    int
	HighestUnbroken bool
	Multiple        bool

	Avg float64
}

func (r PartnershipRecord) SortValue(o SortOrder) float64 {
	switch o {
	case SortByRuns:
		return float64(r.Runs)
	case SortByAverage:
		return r.Avg
	case SortByInnings:
		return float64(r.Innings)
	case SortByHighest:
		return float64(r.HighestScore)
	}
	return 0
}

func (r PartnershipRecord) SortLabel() string {
	return r.Player1Name + "/" + r.Player2Name
}
