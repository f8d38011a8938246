package domain

import (
	"strconv"
	"time"
)

type Player struct {
	PlayerID  int
	FullName  string
	SortName  string
	DebutYear int
	FinalYear int
}

// CareerSpan renders the first/last season window, e.g. "1989-2013".
func (p Player) CareerSpan() string {
	if p.DebutYear == 0 {
		return ""
	}
	if p.FinalYear == 0 || p.FinalYear == p.DebutYear {
		return strconv.Itoa(p.DebutYear)
	}
	return strconv.Itoa(p.DebutYear) + "-" + strconv.Itoa(p.FinalYear)
}

type Team struct {
	TeamID int
	Name   string
}

type Ground struct {
	GroundID  int
	KnownAs   string
	CountryID int
}

type Country struct {
	CountryID int
	Name      string
}

// MatchRef is one row of the match reference dataset. Sub-type membership is
// associative: a bilateral series fixture may also belong to a multi-team
// tournament, so SubTypes is a set rather than a single code.
type MatchRef struct {
	MatchID        int
	MatchType      int
	SubTypes       []int
	HomeTeamID     int
	AwayTeamID     int
	GroundID       int
	HostCountryID  int
	NeutralVenue   bool
	StartDate      time.Time
	SeriesDate     string
	Season         string
	MatchStartYear int
	WinnerTeamID   int
	VictoryType    VictoryType
	ResultType     ResultType
	ResultString   string
}

// HasSubType reports membership of code in the match's competition set.
// The primary match type always counts as a member.
func (m MatchRef) HasSubType(code int) bool {
	if code == m.MatchType {
		return true
	}
	for _, st := range m.SubTypes {
		if st == code {
			return true
		}
	}
	return false
}

// Participation records that a player was in a team's eleven for a match,
// whether or not they batted or bowled in it.
type Participation struct {
	MatchID  int
	TeamID   int
	PlayerID int
}

// LineMeta carries the match-context fields shared by every performance line.
type LineMeta struct {
	MatchID        int
	TeamID         int
	OpponentsID    int
	GroundID       int
	MatchType      int
	SeriesDate     string
	Season         string
	MatchStartYear int
}

// Dismissal codes as stored on batting lines. Codes 11, 14 and 15 are
// sentinels for innings that never happened and are excluded from innings
// counts.
const (
	DismissalBowled      = 1
	DismissalCaught      = 2
	DismissalLBW         = 3
	DismissalRunOut      = 4
	DismissalStumped     = 5
	DismissalHitWicket   = 6
	DismissalHandledBall = 7
	DismissalObstructing = 8
	DismissalTimedOut    = 9
	DismissalHitTwice    = 10
	DismissalDidNotBat   = 11
	DismissalNotOut      = 12
	DismissalRetiredHurt = 13
	DismissalRetired     = 14
	DismissalAbsent      = 15
)

// CountsAsInnings reports whether a dismissal code represents a real visit
// to the crease.
func CountsAsInnings(code int) bool {
	switch code {
	case DismissalDidNotBat, DismissalRetired, DismissalAbsent:
		return false
	}
	return true
}

// IsNotOut reports whether a counted innings ended undefeated.
func IsNotOut(code int) bool {
	return code == DismissalNotOut || code == DismissalRetiredHurt
}

type BattingLine struct {
	LineMeta
	PlayerID      int
	InningsNumber int
	Position      int
	Runs          int
	Balls         int
	Fours         int
	Sixes         int
	Minutes       int
	DismissalCode int
}

type BowlingLine struct {
	LineMeta
	PlayerID      int
	InningsNumber int
	Balls         int
	Maidens       int
	Runs          int
	Wickets       int
	Wides         int
	NoBalls       int
	Dots          int
}

type FieldingLine struct {
	LineMeta
	PlayerID      int
	InningsNumber int
	CaughtFielder int
	CaughtKeeper  int
	Stumpings     int
	RunOuts       int
}

// Dismissals is the fielder's total credited dismissals for the innings.
func (f FieldingLine) Dismissals() int {
	return f.CaughtFielder + f.CaughtKeeper + f.Stumpings
}

type TeamLine struct {
	LineMeta
	InningsNumber int
	Runs          int
	Wickets       int
	Balls         int
	Declared      bool
	AllOut        bool
	Extras        int
}

// PartnershipLine is one partner's perspective of one partnership instance:
// the same stand is stored once per partner, so every instance appears as two
// adjacent rows. Multiple marks a stand resumed after an admin correction.
type PartnershipLine struct {
	LineMeta
	PlayerID      int
	InningsNumber int
	Wicket        int
	Runs          int
	Unbroken      bool
	Multiple      bool
}
