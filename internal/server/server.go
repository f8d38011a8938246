package server

import (
	"errors"
	"net/http"
	"time"

	"cricket-stats/internal/config"
	"cricket-stats/internal/constants"
	"cricket-stats/internal/domain"
	"cricket-stats/internal/middleware"
	"cricket-stats/internal/service"
	"cricket-stats/internal/stats"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Server is the thin JSON boundary over the stats pipeline. All parameter
// validation happens here; the core receives only well-typed filters.
type Server struct {
	statsSvc *service.StatsService
	frontSvc *service.FrontPageService
	cfg      *config.Config
	logger   zerolog.Logger
}

func NewServer(statsSvc *service.StatsService, frontSvc *service.FrontPageService, cfg *config.Config, logger zerolog.Logger) *Server {
	return &Server{statsSvc: statsSvc, frontSvc: frontSvc, cfg: cfg, logger: logger}
}

// Engine builds the gin router with all routes and middleware attached.
func (s *Server) Engine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(s.logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.POST("/records/:domain/:dimension", s.handleRecords)
	api.GET("/matches/recent", s.handleRecentMatches)
	api.GET("/seasons/decades", s.handleSeasonDecades)
	api.GET("/searches/recent", s.handleRecentSearches)

	return r
}

// searchFilterRequest is the wire form of a record query.
type searchFilterRequest struct {
	MatchType          int    `json:"matchType" binding:"required"`
	MatchSubType       int    `json:"matchSubType"`
	TeamID             int    `json:"teamId"`
	OpponentsID        int    `json:"opponentsId"`
	GroundID           int    `json:"groundId"`
	HostCountryID      int    `json:"hostCountryId"`
	Venue              int    `json:"venue"`
	StartDate          string `json:"startDate"`
	EndDate            string `json:"endDate"`
	Season             string `json:"season"`
	MatchResult        int    `json:"matchResult"`
	QualificationLimit int    `json:"qualificationLimit"`
	FivesLimit         int    `json:"fivesLimit"`
	PartnershipWicket  int    `json:"partnershipWicket"`
	TeamBattingRecord  bool   `json:"isTeamBattingRecord"`
	AppendTotal        bool   `json:"appendTotal"`
	SortOrder          string `json:"sortOrder"`
	SortDirection      string `json:"sortDirection"`
	StartRow           int    `json:"startRow"`
	PageSize           int    `json:"pageSize"`
	Limit              int    `json:"limit"`
}

const wireDateLayout = "2006-01-02"

func (s *Server) buildFilter(req searchFilterRequest, dom domain.Domain) (domain.SearchFilter, error) {
	f := domain.SearchFilter{
		MatchType:          req.MatchType,
		MatchSubType:       req.MatchSubType,
		TeamID:             req.TeamID,
		OpponentsID:        req.OpponentsID,
		GroundID:           req.GroundID,
		HostCountryID:      req.HostCountryID,
		Venue:              domain.Venue(req.Venue),
		Season:             req.Season,
		MatchResult:        domain.MatchResult(req.MatchResult),
		QualificationLimit: req.QualificationLimit,
		FivesLimit:         req.FivesLimit,
		PartnershipWicket:  req.PartnershipWicket,
		TeamBattingRecord:  req.TeamBattingRecord,
		AppendTotal:        req.AppendTotal,
	}

	if req.StartDate != "" {
		t, err := time.Parse(wireDateLayout, req.StartDate)
		if err != nil {
			return f, errors.New("startDate must be YYYY-MM-DD")
		}
		f.StartDate = t
	}
	if req.EndDate != "" {
		t, err := time.Parse(wireDateLayout, req.EndDate)
		if err != nil {
			return f, errors.New("endDate must be YYYY-MM-DD")
		}
		f.EndDate = t
	}
	if req.MatchResult < 0 || req.MatchResult > int(domain.MatchResultNoResult) {
		return f, errors.New("matchResult out of range")
	}

	f.SortOrder = defaultSortOrder(dom)
	if req.SortOrder != "" {
		order, err := domain.ParseSortOrder(req.SortOrder)
		if err != nil {
			return f, err
		}
		f.SortOrder = order
	}
	if req.SortDirection == "asc" {
		f.SortDirection = domain.SortAscending
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = s.cfg.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	f.Paging = domain.PagingParameters{
		StartRow: req.StartRow,
		PageSize: pageSize,
		Limit:    req.Limit,
	}
	return f, nil
}

func defaultSortOrder(dom domain.Domain) domain.SortOrder {
	switch dom {
	case domain.DomainBowling:
		return domain.SortByWickets
	case domain.DomainFielding:
		return domain.SortByDismissals
	}
	return domain.SortByRuns
}

func (s *Server) handleRecords(c *gin.Context) {
	dom, err := domain.ParseDomain(c.Param("domain"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dim, err := domain.ParseDimension(c.Param("dimension"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req searchFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	f, err := s.buildFilter(req, dom)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	var (
		items      any
		totalCount int
	)
	switch dom {
	case domain.DomainBatting:
		items, totalCount, err = s.statsSvc.BattingRecords(ctx, f, dim)
	case domain.DomainBowling:
		items, totalCount, err = s.statsSvc.BowlingRecords(ctx, f, dim)
	case domain.DomainFielding:
		items, totalCount, err = s.statsSvc.FieldingRecords(ctx, f, dim)
	case domain.DomainTeam:
		items, totalCount, err = s.statsSvc.TeamRecords(ctx, f, dim)
	case domain.DomainPartnership:
		items, totalCount, err = s.statsSvc.PartnershipRecords(ctx, f, dim)
	}
	if err != nil {
		if errors.Is(err, stats.ErrAmbiguousDimension) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "record query failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "totalCount": totalCount})
}

func (s *Server) handleRecentMatches(c *gin.Context) {
	recent, err := s.frontSvc.RecentMatches(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load recent matches"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": recent})
}

func (s *Server) handleSeasonDecades(c *gin.Context) {
	decades, err := s.frontSvc.SeasonDecades(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load season index"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"decades": decades})
}

func (s *Server) handleRecentSearches(c *gin.Context) {
	entries, err := s.frontSvc.RecentSearches(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load recent searches"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"searches": entries})
}
