package service

import (
	"context"

	"cricket-stats/internal/constants"
	"cricket-stats/internal/repository"
	"cricket-stats/internal/stats"

	"github.com/rs/zerolog"
)

// FrontPageService serves the landing-page panels: recent matches with the
// international/secondary double listing removed, the decade index of
// seasons, and the latest executed searches.
type FrontPageService struct {
	matchRepo *repository.MatchRepository
	queryLog  *repository.QueryLogRepository
	logger    zerolog.Logger
}

func NewFrontPageService(matchRepo *repository.MatchRepository, queryLog *repository.QueryLogRepository, logger zerolog.Logger) *FrontPageService {
	return &FrontPageService{matchRepo: matchRepo, queryLog: queryLog, logger: logger}
}

func (s *FrontPageService) RecentMatches(ctx context.Context) ([]stats.RecentMatch, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	recent, err := s.matchRepo.RecentMatches(ctx, constants.RecentMatchesLimit)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load recent matches")
		return nil, err
	}
	deduped := stats.DedupeRecentMatches(recent)
	s.logger.Debug().
		Int("loaded", len(recent)).
		Int("after_dedupe", len(deduped)).
		Msg("recent matches resolved")
	return deduped, nil
}

func (s *FrontPageService) SeasonDecades(ctx context.Context) ([]stats.DecadeGroup, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	seasons, err := s.matchRepo.Seasons(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load seasons")
		return nil, err
	}
	return stats.GroupSeasonsByDecade(seasons), nil
}

func (s *FrontPageService) RecentSearches(ctx context.Context) ([]repository.QueryLogEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	entries, err := s.queryLog.Recent(ctx, constants.RecentSearchLimit)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load recent searches")
		return nil, err
	}
	return entries, nil
}
