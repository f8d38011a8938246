package fx

import (
	"cricket-stats/internal/config"
	"cricket-stats/internal/database"
	"cricket-stats/internal/feed"
	"cricket-stats/internal/logger"
	"cricket-stats/internal/repository"
	"cricket-stats/internal/server"
	"cricket-stats/internal/service"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewMatchRepository),
	fx.Provide(repository.NewPerformanceRepository),
	fx.Provide(repository.NewNameRepository),
	fx.Provide(repository.NewQueryLogRepository),
	// feed client
	fx.Provide(feed.NewClient),
	// svc
	fx.Provide(service.NewStatsService),
	fx.Provide(service.NewFrontPageService),
	// server
	fx.Provide(server.NewServer),
)
