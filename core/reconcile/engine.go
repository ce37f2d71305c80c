package reconcile

import (
	"fmt"
	"time"
)

// Reconcile computes the complete update set for one marketplace.
//
// It walks the feed in order; each record whose code is listed in the
// catalog produces a StockUpdate and a PriceUpdate. A catalog offer is
// matched at most once, so duplicate feed codes resolve first-occurrence
// wins. Catalog offers the feed never mentions are appended afterwards as
// zero-count StockUpdates, in catalog order, with no price update.
//
// Every catalog offer appears in the returned stock updates exactly once;
// price updates cover matched offers only. All stock updates share the
// given timestamp. Duplicate IDs within the catalog slice are ignored.
//
// A classification or normalization failure aborts the whole pass: the
// returned lists are nil and the error wraps ErrMalformedQuantity or
// ErrMalformedPrice with the offending code.
func Reconcile(feed []FeedRecord, catalog []string, now time.Time, currency string) ([]StockUpdate, []PriceUpdate, error) {
	// Working set for at-most-once matching. The slice keeps the zero-fill
	// order deterministic.
	remaining := make(map[string]struct{}, len(catalog))
	for _, id := range catalog {
		remaining[id] = struct{}{}
	}

	stocks := make([]StockUpdate, 0, len(remaining))
	prices := make([]PriceUpdate, 0, len(feed))

	for _, record := range feed {
		if _, listed := remaining[record.Code]; !listed {
			continue
		}

		count, err := ClassifyQuantity(record.RawQuantity)
		if err != nil {
			return nil, nil, fmt.Errorf("offer %s: %w", record.Code, err)
		}
		value, err := NormalizePrice(record.RawPrice)
		if err != nil {
			return nil, nil, fmt.Errorf("offer %s: %w", record.Code, err)
		}

		stocks = append(stocks, StockUpdate{OfferID: record.Code, Count: count, UpdatedAt: now})
		prices = append(prices, PriceUpdate{OfferID: record.Code, Value: value, Currency: currency})
		delete(remaining, record.Code)
	}

	// Zero out everything still listed on the marketplace but absent from
	// the feed.
	for _, id := range catalog {
		if _, unmatched := remaining[id]; !unmatched {
			continue
		}
		stocks = append(stocks, StockUpdate{OfferID: id, Count: 0, UpdatedAt: now})
		delete(remaining, id)
	}

	return stocks, prices, nil
}
