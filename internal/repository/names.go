package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"cricket-stats/internal/domain"

	"github.com/rs/zerolog"
)

// NameRepository resolves denormalized display names for the final join step
// of the stats pipeline. The reference tables are small and read-only, so
// they are cached in memory on first use.
type NameRepository struct {
	db     *sql.DB
	logger zerolog.Logger

	once sync.Once
	err  error

	players   map[int]domain.Player
	teams     map[int]string
	grounds   map[int]string
	countries map[int]string
}

func NewNameRepository(sqlDB *sql.DB, logger zerolog.Logger) *NameRepository {
	return &NameRepository{db: sqlDB, logger: logger}
}

// Warm loads the reference tables. Later lookups never touch the database.
func (r *NameRepository) Warm(ctx context.Context) error {
	r.once.Do(func() { r.err = r.load(ctx) })
	return r.err
}

func (r *NameRepository) load(ctx context.Context) error {
	r.players = make(map[int]domain.Player)
	r.teams = make(map[int]string)
	r.grounds = make(map[int]string)
	r.countries = make(map[int]string)

	rows, err := r.db.QueryContext(ctx, `SELECT player_id, full_name, sort_name, debut_year, final_year FROM players`)
	if err != nil {
		return fmt.Errorf("failed to load players: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p domain.Player
		if err := rows.Scan(&p.PlayerID, &p.FullName, &p.SortName, &p.DebutYear, &p.FinalYear); err != nil {
			return fmt.Errorf("failed to scan player: %w", err)
		}
		r.players[p.PlayerID] = p
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate players: %w", err)
	}

	if err := r.loadPairs(ctx, `SELECT team_id, name FROM teams`, r.teams); err != nil {
		return err
	}
	if err := r.loadPairs(ctx, `SELECT ground_id, known_as FROM grounds`, r.grounds); err != nil {
		return err
	}
	if err := r.loadPairs(ctx, `SELECT country_id, name FROM countries`, r.countries); err != nil {
		return err
	}

	r.logger.Info().
		Int("players", len(r.players)).
		Int("teams", len(r.teams)).
		Int("grounds", len(r.grounds)).
		Int("countries", len(r.countries)).
		Msg("name cache warmed")
	return nil
}

func (r *NameRepository) loadPairs(ctx context.Context, query string, into map[int]string) error {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to load names: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			id   int
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return fmt.Errorf("failed to scan name: %w", err)
		}
		into[id] = name
	}
	return rows.Err()
}

func (r *NameRepository) Player(id int) (domain.Player, bool) {
	p, ok := r.players[id]
	return p, ok
}

func (r *NameRepository) TeamName(id int) (string, bool) {
	n, ok := r.teams[id]
	return n, ok
}

func (r *NameRepository) GroundName(id int) (string, bool) {
	n, ok := r.grounds[id]
	return n, ok
}

func (r *NameRepository) CountryName(id int) (string, bool) {
	n, ok := r.countries[id]
	return n, ok
}
