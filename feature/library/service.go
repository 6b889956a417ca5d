package library

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"library-sync/core/logger"
	"library-sync/core/notion"
	"library-sync/core/reconcile"
)

// SourceClient is the game catalog side of a sync run.
type SourceClient interface {
	// OwnedGames returns the account's full catalog.
	OwnedGames(ctx context.Context) ([]reconcile.Item, error)
	// Completion returns the achievement completion for one app,
	// collapsing every failure to Unknown.
	Completion(ctx context.Context, appID int64) reconcile.Completion
}

// DestClient is the mirrored database side of a sync run.
type DestClient interface {
	// QueryAll reads the full destination record set.
	QueryAll(ctx context.Context) ([]notion.Page, error)
	// CreatePage inserts a new record.
	CreatePage(ctx context.Context, props reconcile.Delta, coverURL string) (*notion.Page, error)
	// UpdatePage patches the properties named in the delta.
	UpdatePage(ctx context.Context, pageID string, delta reconcile.Delta) (*notion.Page, error)
}

// Result is the outcome of one sync run.
type Result struct {
	RunID    string            `json:"run_id"`
	DryRun   bool              `json:"dry_run"`
	Summary  reconcile.Summary `json:"summary"`
	Started  time.Time         `json:"started"`
	Duration time.Duration     `json:"duration"`
}

// Service runs full reconciliation passes between source and destination.
type Service struct {
	source SourceClient
	dest   DestClient
	logger *zap.Logger

	// runMu makes runs single-flight: overlapping HTTP triggers queue up
	// instead of reconciling concurrently.
	runMu sync.Mutex

	mu   sync.Mutex
	last *Result
}

// NewService creates a new library sync service.
func NewService(source SourceClient, dest DestClient, logger *zap.Logger) *Service {
	return &Service{
		source: source,
		dest:   dest,
		logger: logger,
	}
}

// Run executes one full sync pass.
//
// The source catalog and the destination set are fetched concurrently. A
// destination read failure is fatal to the run: reconciliation never runs on
// a partial destination set. A source fetch failure is not: the catalog side
// must never crash a run, so it degrades to an empty catalog and the run
// no-ops. Per-item write failures are logged, counted, and skipped.
//
// With dryRun set, actions are planned and reported but nothing is written.
func (s *Service) Run(ctx context.Context, dryRun bool) (*Result, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	log, runID := logger.WithRunID(s.logger)
	started := time.Now()
	log.Info("Starting library sync", zap.Bool("dry_run", dryRun))

	var (
		items []reconcile.Item
		pages []notion.Page
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fetched, err := s.source.OwnedGames(gctx)
		if err != nil {
			log.Warn("owned games fetch failed, continuing with empty catalog", zap.Error(err))
			return nil
		}
		items = fetched
		return nil
	})
	g.Go(func() error {
		fetched, err := s.dest.QueryAll(gctx)
		if err != nil {
			return fmt.Errorf("reading destination set: %w", err)
		}
		pages = fetched
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info("Fetched both sides",
		zap.Int("source_items", len(items)),
		zap.Int("destination_records", len(pages)),
	)

	records := make([]reconcile.Record, len(pages))
	for i, page := range pages {
		records[i] = page.Record()
	}
	index := reconcile.BuildIndex(records)

	planner := reconcile.NewPlanner(s.source.Completion)
	summary := reconcile.Summary{Total: len(items)}

	for _, item := range items {
		action := planner.Plan(ctx, item, index)
		if action == nil {
			summary.Skipped++
			continue
		}

		if dryRun {
			log.Info("Planned action",
				zap.String("type", string(action.Type)),
				zap.Int64("appid", item.AppID),
				zap.String("name", item.Name),
			)
			summary.Count(action.Type)
			continue
		}

		if err := s.apply(ctx, action); err != nil {
			// One item's failure never aborts the run.
			log.Error("Sync action failed",
				zap.String("type", string(action.Type)),
				zap.Int64("appid", item.AppID),
				zap.String("name", item.Name),
				zap.Error(err),
			)
			summary.Failed++
			continue
		}
		summary.Count(action.Type)
	}

	result := &Result{
		RunID:    runID,
		DryRun:   dryRun,
		Summary:  summary,
		Started:  started,
		Duration: time.Since(started),
	}

	s.mu.Lock()
	s.last = result
	s.mu.Unlock()

	log.Info("Library sync complete",
		zap.Int("total", summary.Total),
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
		zap.Duration("duration", result.Duration),
	)

	return result, nil
}

// apply executes a single planned action against the destination.
func (s *Service) apply(ctx context.Context, action *reconcile.Action) error {
	switch action.Type {
	case reconcile.ActionCreate:
		_, err := s.dest.CreatePage(ctx, action.Delta, notion.CoverURL(action.Item.AppID))
		return err
	case reconcile.ActionUpdate:
		_, err := s.dest.UpdatePage(ctx, action.Handle, action.Delta)
		return err
	default:
		return fmt.Errorf("unknown action type %q", action.Type)
	}
}

// LastResult returns the most recent run outcome, or nil before the first run.
func (s *Service) LastResult() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
