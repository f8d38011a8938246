package constants

import "time"

const (
	RequestTimeout  = 30 * time.Second
	DatabaseTimeout = 5 * time.Second
	FeedAPITimeout  = 10 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
	DBBatchSize       = 100
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	DefaultPageSize    = 50
	MaxPageSize        = 200
	RecentMatchesLimit = 20
	RecentSearchLimit  = 10
)
