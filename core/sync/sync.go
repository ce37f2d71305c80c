package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"market-sync/core/reconcile"

	"go.uber.org/zap"
)

var (
	// ErrCatalogFetch wraps a transport failure while paging through the
	// marketplace catalog.
	ErrCatalogFetch = errors.New("catalog fetch failed")

	// ErrDispatch wraps a transport failure while submitting an update
	// batch. Batches dispatched before the failure remain applied.
	ErrDispatch = errors.New("batch dispatch failed")
)

// Client is the marketplace surface the orchestrator depends on. Transport,
// authentication, and wire formats live behind this interface.
type Client interface {
	// Name identifies the marketplace target in logs and run records.
	Name() string

	// FetchCatalogPage returns one page of listed offer identifiers and
	// the cursor for the next page. An empty next cursor ends pagination.
	// The empty cursor requests the first page.
	FetchCatalogPage(ctx context.Context, cursor string) (ids []string, next string, err error)

	// SubmitStockBatch publishes one batch of stock updates.
	SubmitStockBatch(ctx context.Context, batch []reconcile.StockUpdate) error

	// SubmitPriceBatch publishes one batch of price updates.
	SubmitPriceBatch(ctx context.Context, batch []reconcile.PriceUpdate) error
}

// Limits holds the per-marketplace batch size caps. The two endpoints have
// independent limits on every marketplace we integrate with.
type Limits struct {
	// StockBatch is the maximum number of stock updates per request.
	StockBatch int

	// PriceBatch is the maximum number of price updates per request.
	PriceBatch int
}

// Result summarizes one marketplace run.
type Result struct {
	// All is the full stock-update list, covering the entire catalog.
	All []reconcile.StockUpdate

	// Active is the subset of All with a non-zero count.
	Active []reconcile.StockUpdate

	// StockBatches and PriceBatches count the dispatched requests.
	StockBatches int
	PriceBatches int
}

// FetchOfferIDs drives the catalog pagination loop to exhaustion and
// returns the accumulated offer identifiers in page order.
func FetchOfferIDs(ctx context.Context, client Client) ([]string, error) {
	var (
		offerIDs []string
		cursor   string
	)
	for {
		ids, next, err := client.FetchCatalogPage(ctx, cursor)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrCatalogFetch, client.Name(), err)
		}
		offerIDs = append(offerIDs, ids...)
		if next == "" {
			return offerIDs, nil
		}
		cursor = next
	}
}

// Run synchronizes one marketplace with the supplier feed.
//
// It fetches the full catalog, reconciles, partitions stock updates by
// limits.StockBatch and price updates by limits.PriceBatch, and dispatches
// every batch sequentially (stocks first, then prices). The first failure
// aborts the run; there is no rollback of already-dispatched batches.
func Run(ctx context.Context, client Client, feed []reconcile.FeedRecord, limits Limits, currency string, log *zap.Logger) (*Result, error) {
	offerIDs, err := FetchOfferIDs(ctx, client)
	if err != nil {
		return nil, err
	}
	log.Info("Fetched marketplace catalog",
		zap.String("target", client.Name()),
		zap.Int("offers", len(offerIDs)),
	)

	now := time.Now().UTC().Truncate(time.Second)
	stocks, prices, err := reconcile.Reconcile(feed, offerIDs, now, currency)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", client.Name(), err)
	}

	stockBatches, err := reconcile.Partition(stocks, limits.StockBatch)
	if err != nil {
		return nil, fmt.Errorf("%s: stock updates: %w", client.Name(), err)
	}
	priceBatches, err := reconcile.Partition(prices, limits.PriceBatch)
	if err != nil {
		return nil, fmt.Errorf("%s: price updates: %w", client.Name(), err)
	}

	for i, batch := range stockBatches {
		if err := client.SubmitStockBatch(ctx, batch); err != nil {
			return nil, fmt.Errorf("%w: %s: stock batch %d/%d: %w",
				ErrDispatch, client.Name(), i+1, len(stockBatches), err)
		}
	}
	for i, batch := range priceBatches {
		if err := client.SubmitPriceBatch(ctx, batch); err != nil {
			return nil, fmt.Errorf("%w: %s: price batch %d/%d: %w",
				ErrDispatch, client.Name(), i+1, len(priceBatches), err)
		}
	}

	active := make([]reconcile.StockUpdate, 0, len(stocks))
	for _, s := range stocks {
		if s.Count != 0 {
			active = append(active, s)
		}
	}

	log.Info("Marketplace sync complete",
		zap.String("target", client.Name()),
		zap.Int("total_offers", len(stocks)),
		zap.Int("active_offers", len(active)),
		zap.Int("stock_batches", len(stockBatches)),
		zap.Int("price_batches", len(priceBatches)),
	)

	return &Result{
		All:          stocks,
		Active:       active,
		StockBatches: len(stockBatches),
		PriceBatches: len(priceBatches),
	}, nil
}
