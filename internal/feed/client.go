package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cricket-stats/internal/config"
	"cricket-stats/internal/constants"
	"cricket-stats/internal/domain"

	"github.com/valyala/fasthttp"
)

// Client fetches fixture data from the archive feed for batch imports. The
// feed is only consulted by cricketctl; the query pipeline never reaches out.
type Client struct {
	baseURL string
	client  *fasthttp.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.FeedURL,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         constants.FeedAPITimeout,
			WriteTimeout:        constants.FeedAPITimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

type FixturesResponse struct {
	Data []Fixture `json:"data"`
}

type Fixture struct {
	MatchID       int    `json:"match_id"`
	MatchType     int    `json:"match_type"`
	SubTypes      []int  `json:"sub_types"`
	HomeTeamID    int    `json:"home_team_id"`
	AwayTeamID    int    `json:"away_team_id"`
	GroundID      int    `json:"ground_id"`
	HostCountryID int    `json:"host_country_id"`
	NeutralVenue  bool   `json:"neutral_venue"`
	StartDate     string `json:"start_date"`
	SeriesDate    string `json:"series_date"`
	Season        string `json:"season"`
	WinnerTeamID  int    `json:"winner_team_id"`
	VictoryType   int    `json:"victory_type"`
	ResultType    int    `json:"result_type"`
	ResultString  string `json:"result_string"`
}

// GetFixtures fetches all fixtures for one season token.
func (c *Client) GetFixtures(ctx context.Context, season string) (*FixturesResponse, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("feed URL is not configured")
	}

	url := fmt.Sprintf("%s/fixtures?season=%s", c.baseURL, season)

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	deadline := time.Now().Add(constants.FeedAPITimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := c.client.DoDeadline(req, resp, deadline); err != nil {
		return nil, fmt.Errorf("failed to fetch fixtures: %w", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode())
	}

	var fixtures FixturesResponse
	if err := json.Unmarshal(resp.Body(), &fixtures); err != nil {
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}
	return &fixtures, nil
}

// ToMatchRef converts a feed fixture into the reference model.
func (f Fixture) ToMatchRef() (domain.MatchRef, error) {
	startDate, err := time.Parse("2006-01-02", f.StartDate)
	if err != nil {
		return domain.MatchRef{}, fmt.Errorf("fixture %d has invalid start date %q: %w", f.MatchID, f.StartDate, err)
	}
	return domain.MatchRef{
		MatchID:        f.MatchID,
		MatchType:      f.MatchType,
		SubTypes:       f.SubTypes,
		HomeTeamID:     f.HomeTeamID,
		AwayTeamID:     f.AwayTeamID,
		GroundID:       f.GroundID,
		HostCountryID:  f.HostCountryID,
		NeutralVenue:   f.NeutralVenue,
		StartDate:      startDate,
		SeriesDate:     f.SeriesDate,
		Season:         f.Season,
		MatchStartYear: startDate.Year(),
		WinnerTeamID:   f.WinnerTeamID,
		VictoryType:    domain.VictoryType(f.VictoryType),
		ResultType:     domain.ResultType(f.ResultType),
		ResultString:   f.ResultString,
	}, nil
}
