// Package sync orchestrates one marketplace synchronization run.
//
// The orchestrator composes the reconcile engine with an abstract
// marketplace Client: it drives the catalog pagination loop, reconciles the
// supplier feed against the fetched offer set, partitions the update lists
// to the marketplace's batch limits, and dispatches every batch in order.
//
// Marketplaces are independent: each run owns its catalog snapshot, limits,
// and client, so callers may process them sequentially or in parallel
// without shared state. Within a run, pagination and dispatch are strictly
// sequential; there are no retries, and batches dispatched before a failure
// stay applied on the marketplace side.
//
// # Usage
//
//	result, err := sync.Run(ctx, client, feed, sync.Limits{StockBatch: 2000, PriceBatch: 500}, "RUR", log)
//	if errors.Is(err, sync.ErrDispatch) {
//	    // batches before the failing one are already applied
//	}
package sync
