// Package reconcile implements the reconciliation and batching engine that
// turns a supplier remnants feed into complete marketplace update sets.
//
// The engine is pure, synchronous data transformation. It has four parts:
//
//  1. Quantity classification: maps the supplier's free-text quantity tokens
//     (">10", "1", plain integers) onto canonical stock counts.
//
//  2. Price normalization: maps the supplier's free-text price strings
//     (e.g. "24'570.00 руб.") onto integer prices.
//
//  3. Reconciliation: walks the feed against a marketplace's catalog,
//     emitting a stock update for every listed offer (real count for matched
//     offers, zero for offers the feed no longer carries) and a price update
//     for matched offers only.
//
//  4. Partitioning: splits update lists into ordered fixed-size batches that
//     respect per-marketplace API limits.
//
// # Ordering
//
// Stock updates preserve feed order for matched offers, followed by catalog
// order for zeroed offers. Partitioning preserves that order across batches.
//
// # Failure Model
//
// A single malformed quantity or price aborts the whole reconciliation for
// that marketplace run. There is no per-record skip-and-continue; a partial
// catalog sync is worse than no sync.
//
// # Usage
//
//	stocks, prices, err := reconcile.Reconcile(feed, catalogIDs, time.Now().UTC(), "RUB")
//	if err != nil {
//	    return err
//	}
//	batches, err := reconcile.Partition(stocks, 2000)
package reconcile
