package cmd

import (
	"context"
	"fmt"

	"library-sync/core/config"
	"library-sync/core/logger"
	"library-sync/core/notion"
	"library-sync/core/steam"
	"library-sync/feature/library"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var dryRunSync bool

// syncCmd runs one full library sync.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one full library sync",
	Long: `Reconciles the Steam owned-games catalog against the Notion library database.

Creates records for games missing from the database, patches the curated
fields (title, playtime, achievement completion) where they changed, and
leaves matching records untouched. Achievement stats are only fetched for
games whose playtime moved since the last run.

Examples:
  # Full run
  library-sync sync

  # Report what would change without writing
  library-sync sync --dry-run`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Plan actions without writing to the destination")
	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Required credentials are checked before any network call.
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	source := steam.NewClient(cfg.Steam, l)
	dest := notion.NewClient(cfg.Notion)
	service := library.NewService(source, dest, l)

	result, err := service.Run(ctx, dryRunSync)
	if err != nil {
		return fmt.Errorf("sync run failed: %w", err)
	}

	printSyncReport(l, result)
	return nil
}

// printSyncReport prints a formatted run report using the logger.
func printSyncReport(l *zap.Logger, result *library.Result) {
	s := result.Summary

	l.Info("Sync report",
		zap.String("run_id", result.RunID),
		zap.Bool("dry_run", result.DryRun),
		zap.Int("total", s.Total),
		zap.Int("created", s.Created),
		zap.Int("updated", s.Updated),
		zap.Int("skipped", s.Skipped),
		zap.Int("failed", s.Failed),
		zap.Duration("duration", result.Duration),
	)
}
