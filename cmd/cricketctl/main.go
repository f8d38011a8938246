package main

import (
	"context"
	"fmt"
	"os"

	"cricket-stats/internal/config"
	"cricket-stats/internal/database"
	"cricket-stats/internal/domain"
	"cricket-stats/internal/feed"
	"cricket-stats/internal/logger"
	"cricket-stats/internal/repository"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cricketctl",
	Short: "administration tool for the cricket stats database",
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE:  runMigrate,
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import fixtures from the archive feed",
	Long: `Fetch fixtures for one or more seasons from the archive feed and
upsert them into the local database. Seasons are passed as positional
arguments using the feed's season tokens, e.g.

  cricketctl import 2019 2019/20`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

var feedURL string

func init() {
	importCmd.Flags().StringVar(&feedURL, "feed-url", "", "override the configured feed URL")
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(importCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runMigrate(cmd *cobra.Command, args []string) error {
	log := logger.New()
	cfg, err := config.Load(log)
	if err != nil {
		return err
	}
	// database.New applies pending migrations as part of opening.
	db, err := database.New(cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Println("migrations applied")
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	log := logger.New()
	cfg, err := config.Load(log)
	if err != nil {
		return err
	}
	if feedURL != "" {
		cfg.FeedURL = feedURL
	}
	db, err := database.New(cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	client := feed.NewClient(cfg)
	matchRepo := repository.NewMatchRepository(db, log)
	ctx := context.Background()

	var total int
	for _, season := range args {
		fixtures, err := client.GetFixtures(ctx, season)
		if err != nil {
			return fmt.Errorf("season %s: %w", season, err)
		}

		refs := make([]domain.MatchRef, 0, len(fixtures.Data))
		for _, fix := range fixtures.Data {
			ref, err := fix.ToMatchRef()
			if err != nil {
				log.Warn().Err(err).Int("match_id", fix.MatchID).Msg("skipping fixture")
				continue
			}
			refs = append(refs, ref)
		}
		if err := matchRepo.UpsertBatch(ctx, refs); err != nil {
			return fmt.Errorf("season %s: %w", season, err)
		}
		fmt.Printf("season %s: imported %d fixtures\n", season, len(refs))
		total += len(refs)
	}
	fmt.Printf("done, %d fixtures total\n", total)
	return nil
}
