package cmd

import (
	"context"
	"fmt"
	"time"

	"market-sync/core/config"
	"market-sync/core/storage"
	"market-sync/core/sync"
	"market-sync/feature/market"
	"market-sync/feature/ozon"
	"market-sync/feature/runlog"
	"market-sync/feature/supplier"

	"go.uber.org/zap"
)

// target pairs a marketplace client with its batch limits and currency.
type target struct {
	client   sync.Client
	limits   sync.Limits
	currency string
}

// buildTargets assembles the enabled marketplace targets for one run.
func buildTargets(cfg *config.Config) []target {
	var targets []target

	if cfg.Ozon.Enabled && cfg.Ozon.ClientID != "" {
		targets = append(targets, target{
			client:   ozon.NewClient(cfg.Ozon),
			limits:   cfg.Ozon.Limits(),
			currency: cfg.Ozon.Currency,
		})
	}

	if cfg.Market.Enabled && cfg.Market.Token != "" {
		if cfg.Market.FBS.Configured() {
			targets = append(targets, target{
				client:   market.NewClient(cfg.Market, cfg.Market.FBS, "market-fbs"),
				limits:   cfg.Market.Limits(),
				currency: cfg.Market.Currency,
			})
		}
		if cfg.Market.DBS.Configured() {
			targets = append(targets, target{
				client:   market.NewClient(cfg.Market, cfg.Market.DBS, "market-dbs"),
				limits:   cfg.Market.Limits(),
				currency: cfg.Market.Currency,
			})
		}
	}

	return targets
}

// runPipeline fetches the feed once and synchronizes every enabled target.
// A target failure is reported and recorded, then the loop moves on to the
// next target; only a feed failure aborts the whole run.
func runPipeline(ctx context.Context, cfg *config.Config, log *zap.Logger, runID string, store *runlog.Store) error {
	targets := buildTargets(cfg)
	if len(targets) == 0 {
		return fmt.Errorf("no marketplace targets configured")
	}

	var objectStore storage.Client
	if cfg.Feed.Source == supplier.SourceS3 {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		objectStore = client
	}

	source, err := supplier.NewSource(cfg.Feed, objectStore, cfg.Storage.Bucket)
	if err != nil {
		return err
	}

	feed, err := source.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch supplier feed: %w", err)
	}
	log.Info("Supplier feed loaded", zap.Int("records", len(feed)))

	failed := 0
	for _, tgt := range targets {
		started := time.Now()
		result, err := sync.Run(ctx, tgt.client, feed, tgt.limits, tgt.currency, log)

		record := &runlog.Run{
			RunID:      runID,
			Target:     tgt.client.Name(),
			Status:     runlog.StatusOK,
			StartedAt:  started.UTC(),
			DurationMs: time.Since(started).Milliseconds(),
		}

		if err != nil {
			// Report and continue: one marketplace must not block the rest.
			failed++
			log.Error("Marketplace sync failed",
				zap.String("target", tgt.client.Name()),
				zap.Error(err),
			)
			record.Status = runlog.StatusFailed
			record.Error = err.Error()
		} else {
			record.TotalOffers = len(result.All)
			record.ActiveOffers = len(result.Active)
			record.StockBatches = result.StockBatches
			record.PriceBatches = result.PriceBatches
		}

		if store != nil {
			if err := store.Save(ctx, record); err != nil {
				log.Warn("Failed to record run history", zap.Error(err))
			}
		}
	}

	log.Info("Sync run finished",
		zap.Int("targets", len(targets)),
		zap.Int("failed", failed),
	)
	return nil
}
