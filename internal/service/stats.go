package service

import (
	"context"
	"fmt"
	"time"

	"cricket-stats/internal/constants"
	"cricket-stats/internal/domain"
	"cricket-stats/internal/repository"
	"cricket-stats/internal/stats"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// StatsService runs the record pipeline per request: load the reference and
// performance datasets, aggregate along the requested dimension, rank and
// paginate. Everything past the loaders is pure and stateless, so concurrent
// requests never share mutable state.
type StatsService struct {
	matchRepo *repository.MatchRepository
	perfRepo  *repository.PerformanceRepository
	names     *repository.NameRepository
	queryLog  *repository.QueryLogRepository
	logger    zerolog.Logger
}

func NewStatsService(
	matchRepo *repository.MatchRepository,
	perfRepo *repository.PerformanceRepository,
	names *repository.NameRepository,
	queryLog *repository.QueryLogRepository,
	logger zerolog.Logger,
) *StatsService {
	return &StatsService{
		matchRepo: matchRepo,
		perfRepo:  perfRepo,
		names:     names,
		queryLog:  queryLog,
		logger:    logger,
	}
}

// referenceData is the per-request snapshot of the match reference set.
type referenceData struct {
	matches []domain.MatchRef
	parts   []domain.Participation
}

func (s *StatsService) loadReference(ctx context.Context, matchType int, withParticipation bool) (referenceData, error) {
	var data referenceData
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data.matches, err = s.matchRepo.Load(gCtx, matchType)
		return err
	})
	if withParticipation {
		g.Go(func() error {
			var err error
			data.parts, err = s.matchRepo.LoadParticipation(gCtx, matchType)
			return err
		})
	}
	g.Go(func() error {
		return s.names.Warm(gCtx)
	})
	if err := g.Wait(); err != nil {
		return referenceData{}, fmt.Errorf("failed to load reference data: %w", err)
	}
	return data, nil
}

func (s *StatsService) BattingRecords(ctx context.Context, f domain.SearchFilter, dim domain.Dimension) ([]domain.BattingRecord, int, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()
	started := time.Now()

	var lines []domain.BattingLine
	data, err := s.loadWith(ctx, f.MatchType, func(gCtx context.Context) error {
		var err error
		lines, err = s.perfRepo.BattingLines(gCtx, f.MatchType)
		return err
	})
	if err != nil {
		return nil, 0, err
	}

	recs, err := stats.AggregateBatting(lines, data.matches, data.parts, f, dim, s.names)
	if err != nil {
		s.logger.Error().Err(err).Msg("batting aggregation failed")
		return nil, 0, err
	}
	page, total := stats.Rank(recs, f.SortOrder, f.SortDirection, f.Paging)

	s.logQuery(domain.DomainBatting, dim, f.MatchType, total, started)
	return page, total, nil
}

func (s *StatsService) BowlingRecords(ctx context.Context, f domain.SearchFilter, dim domain.Dimension) ([]domain.BowlingRecord, int, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()
	started := time.Now()

	var lines []domain.BowlingLine
	data, err := s.loadWith(ctx, f.MatchType, func(gCtx context.Context) error {
		var err error
		lines, err = s.perfRepo.BowlingLines(gCtx, f.MatchType)
		return err
	})
	if err != nil {
		return nil, 0, err
	}

	recs, err := stats.AggregateBowling(lines, data.matches, data.parts, f, dim, s.names)
	if err != nil {
		s.logger.Error().Err(err).Msg("bowling aggregation failed")
		return nil, 0, err
	}
	page, total := stats.Rank(recs, f.SortOrder, f.SortDirection, f.Paging)

	s.logQuery(domain.DomainBowling, dim, f.MatchType, total, started)
	return page, total, nil
}

func (s *StatsService) FieldingRecords(ctx context.Context, f domain.SearchFilter, dim domain.Dimension) ([]domain.FieldingRecord, int, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()
	started := time.Now()

	var lines []domain.FieldingLine
	data, err := s.loadWith(ctx, f.MatchType, func(gCtx context.Context) error {
		var err error
		lines, err = s.perfRepo.FieldingLines(gCtx, f.MatchType)
		return err
	})
	if err != nil {
		return nil, 0, err
	}

	recs, err := stats.AggregateFielding(lines, data.matches, data.parts, f, dim, s.names)
	if err != nil {
		s.logger.Error().Err(err).Msg("fielding aggregation failed")
		return nil, 0, err
	}
	page, total := stats.Rank(recs, f.SortOrder, f.SortDirection, f.Paging)

	s.logQuery(domain.DomainFielding, dim, f.MatchType, total, started)
	return page, total, nil
}

func (s *StatsService) TeamRecords(ctx context.Context, f domain.SearchFilter, dim domain.Dimension) ([]domain.TeamRecord, int, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()
	started := time.Now()

	var (
		teamLines    []domain.TeamLine
		bowlingLines []domain.BowlingLine
	)
	data, err := s.loadWith(ctx, f.MatchType, func(gCtx context.Context) error {
		var err error
		teamLines, err = s.perfRepo.TeamLines(gCtx, f.MatchType)
		return err
	}, func(gCtx context.Context) error {
		if f.TeamBattingRecord {
			return nil
		}
		var err error
		bowlingLines, err = s.perfRepo.BowlingLines(gCtx, f.MatchType)
		return err
	})
	if err != nil {
		return nil, 0, err
	}

	recs, err := stats.AggregateTeam(teamLines, bowlingLines, data.matches, f, dim, s.names)
	if err != nil {
		s.logger.Error().Err(err).Msg("team aggregation failed")
		return nil, 0, err
	}
	page, total := stats.Rank(recs, f.SortOrder, f.SortDirection, f.Paging)

	s.logQuery(domain.DomainTeam, dim, f.MatchType, total, started)
	return page, total, nil
}

func (s *StatsService) PartnershipRecords(ctx context.Context, f domain.SearchFilter, dim domain.Dimension) ([]domain.PartnershipRecord, int, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()
	started := time.Now()

	var lines []domain.PartnershipLine
	data, err := s.loadWith(ctx, f.MatchType, func(gCtx context.Context) error {
		var err error
		lines, err = s.perfRepo.PartnershipLines(gCtx, f.MatchType)
		return err
	})
	if err != nil {
		return nil, 0, err
	}

	recs, err := stats.AggregatePartnership(lines, data.matches, f, dim, s.names)
	if err != nil {
		s.logger.Error().Err(err).Msg("partnership aggregation failed")
		return nil, 0, err
	}
	page, total := stats.Rank(recs, f.SortOrder, f.SortDirection, f.Paging)

	s.logQuery(domain.DomainPartnership, dim, f.MatchType, total, started)
	return page, total, nil
}

// loadWith fetches the reference data and the domain-specific datasets in
// parallel.
func (s *StatsService) loadWith(ctx context.Context, matchType int, loaders ...func(context.Context) error) (referenceData, error) {
	var data referenceData
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data, err = s.loadReference(gCtx, matchType, true)
		return err
	})
	for _, load := range loaders {
		load := load
		g.Go(func() error { return load(gCtx) })
	}
	if err := g.Wait(); err != nil {
		return referenceData{}, err
	}
	return data, nil
}

// logQuery records the search in the background; a failed write is logged
// and dropped, never surfaced to the caller.
func (s *StatsService) logQuery(dom domain.Domain, dim domain.Dimension, matchType, total int, started time.Time) {
	entry := repository.QueryLogEntry{
		Domain:      dom,
		Dimension:   dim,
		MatchType:   matchType,
		ResultCount: total,
		Duration:    time.Since(started),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), constants.DatabaseTimeout)
		defer cancel()
		if err := s.queryLog.Record(ctx, entry); err != nil {
			s.logger.Warn().Err(err).Msg("failed to record query log entry")
		}
	}()
	s.logger.Info().
		Str("domain", dom.String()).
		Str("dimension", dim.String()).
		Int("result_count", total).
		Int64("duration_ms", time.Since(started).Milliseconds()).
		Msg("record query completed")
}
