package domain

import (
	"fmt"
	"time"
)

// Venue is a bitmask of home/away/neutral. Zero means no venue restriction.
type Venue int

const (
	VenueHome    Venue = 1
	VenueAway    Venue = 2
	VenueNeutral Venue = 4
	VenueAll     Venue = VenueHome | VenueAway | VenueNeutral
)

func (v Venue) Includes(flag Venue) bool {
	if v == 0 {
		return true
	}
	return v&flag != 0
}

// ResultType classifies how a match ended.
type ResultType int

const (
	ResultUnknown   ResultType = 0
	ResultDecided   ResultType = 1
	ResultDrawn     ResultType = 2
	ResultTied      ResultType = 3
	ResultNoResult  ResultType = 4
	ResultAbandoned ResultType = 5
)

// VictoryType is the mechanism by which a decided match was won.
type VictoryType int

const (
	VictoryUnknown      VictoryType = 0
	VictoryInnings      VictoryType = 1
	VictoryRuns         VictoryType = 2
	VictoryWickets      VictoryType = 3
	VictoryRunRate      VictoryType = 4
	VictoryFewerWickets VictoryType = 5
	VictoryFasterRate   VictoryType = 6
)

// MatchResult is the caller-facing result restriction. Codes 1-4 are the
// "won" variants, 5-8 the "lost" variants, each split by victory mechanism.
// Zero means no restriction.
type MatchResult int

const (
	MatchResultAny          MatchResult = 0
	MatchResultWon          MatchResult = 1
	MatchResultWonInnings   MatchResult = 2
	MatchResultWonRuns      MatchResult = 3
	MatchResultWonWickets   MatchResult = 4
	MatchResultLost         MatchResult = 5
	MatchResultLostInnings  MatchResult = 6
	MatchResultLostRuns     MatchResult = 7
	MatchResultLostWickets  MatchResult = 8
	MatchResultDrawn        MatchResult = 9
	MatchResultTied         MatchResult = 10
	MatchResultNoResult     MatchResult = 11
)

// Dimension selects the grouping axis for a record query.
type Dimension int

const (
	DimensionOverall Dimension = iota
	DimensionSeries
	DimensionSeason
	DimensionYear
	DimensionGrounds
	DimensionHostCountry
	DimensionOpponents
	DimensionInningsByInnings
	DimensionMatchTotals
)

var dimensionNames = map[string]Dimension{
	"overall":          DimensionOverall,
	"series":           DimensionSeries,
	"season":           DimensionSeason,
	"year":             DimensionYear,
	"grounds":          DimensionGrounds,
	"hostcountry":      DimensionHostCountry,
	"opponents":        DimensionOpponents,
	"inningsbyinnings": DimensionInningsByInnings,
	"matchtotals":      DimensionMatchTotals,
}

func ParseDimension(s string) (Dimension, error) {
	if d, ok := dimensionNames[s]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("unknown dimension %q", s)
}

func (d Dimension) String() string {
	for name, v := range dimensionNames {
		if v == d {
			return name
		}
	}
	return "overall"
}

// Grouped reports whether the dimension aggregates lines per entity, as
// opposed to the innings-by-innings and match-totals listing shapes.
func (d Dimension) Grouped() bool {
	return d != DimensionInningsByInnings && d != DimensionMatchTotals
}

// Domain selects the statistical record family.
type Domain int

const (
	DomainBatting Domain = iota
	DomainBowling
	DomainFielding
	DomainTeam
	DomainPartnership
)

var domainNames = map[string]Domain{
	"batting":     DomainBatting,
	"bowling":     DomainBowling,
	"fielding":    DomainFielding,
	"team":        DomainTeam,
	"partnership": DomainPartnership,
}

func ParseDomain(s string) (Domain, error) {
	if d, ok := domainNames[s]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("unknown domain %q", s)
}

func (d Domain) String() string {
	for name, v := range domainNames {
		if v == d {
			return name
		}
	}
	return "batting"
}

// SortOrder enumerates the ranking keys shared across record families. A key
// that does not apply to a family ranks as zero for every row, leaving the
// stable insertion order in place.
type SortOrder int

const (
	SortByRuns SortOrder = iota
	SortByAverage
	SortByStrikeRate
	SortByImpact
	SortByWickets
	SortByEconomy
	SortByMatches
	SortByInnings
	SortByDismissals
	SortByHighest
	SortByName
)

var sortOrderNames = map[string]SortOrder{
	"runs":       SortByRuns,
	"average":    SortByAverage,
	"strikerate": SortByStrikeRate,
	"impact":     SortByImpact,
	"wickets":    SortByWickets,
	"economy":    SortByEconomy,
	"matches":    SortByMatches,
	"innings":    SortByInnings,
	"dismissals": SortByDismissals,
	"highest":    SortByHighest,
	"name":       SortByName,
}

func ParseSortOrder(s string) (SortOrder, error) {
	if o, ok := sortOrderNames[s]; ok {
		return o, nil
	}
	return 0, fmt.Errorf("unknown sort order %q", s)
}

type SortDirection int

const (
	SortDescending SortDirection = iota
	SortAscending
)

type PagingParameters struct {
	StartRow Row
	PageSize int
	Limit    int
}

// Row is a zero-based offset into the ranked result list.
type Row = int

// Sentinel filter tokens that remove the corresponding restriction.
const (
	AllSeasons   = "All Seasons"
	AllTeams     = "All Teams"
	AllGrounds   = "All Grounds"
	AllCountries = "All Countries"
)

// SearchFilter is the validated query input. The validation boundary
// guarantees MatchType is set and MatchSubType defaults to MatchType.
type SearchFilter struct {
	MatchType          int
	MatchSubType       int
	TeamID             int
	OpponentsID        int
	GroundID           int
	HostCountryID      int
	Venue              Venue
	StartDate          time.Time
	EndDate            time.Time
	Season             string
	MatchResult        MatchResult
	QualificationLimit int
	FivesLimit         int
	PartnershipWicket  int
	TeamBattingRecord  bool
	AppendTotal        bool
	Paging             PagingParameters
	SortOrder          SortOrder
	SortDirection      SortDirection
}

// SubType resolves the effective competition code.
func (f SearchFilter) SubType() int {
	if f.MatchSubType != 0 {
		return f.MatchSubType
	}
	return f.MatchType
}

// FiveForThreshold resolves the haul threshold, defaulting to five wickets.
func (f SearchFilter) FiveForThreshold() int {
	if f.FivesLimit > 0 {
		return f.FivesLimit
	}
	return 5
}
