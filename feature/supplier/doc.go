// Package supplier retrieves and decodes the supplier remnants feed.
//
// The supplier publishes a zip archive containing one xlsx workbook. The
// workbook has a fixed preamble; the data table starts at a configurable
// header row with named columns for product code, quantity, and price.
// Quantity and price cells are passed through as raw text — classification
// happens later in core/reconcile.
//
// Two sources are supported:
//
//   - HTTP: download the archive from the supplier's public URL.
//   - S3: fetch the archive object from a bucket (core/storage), for setups
//     where the supplier drops feeds into object storage.
//
// Feed order is workbook row order, which downstream reconciliation and
// batching preserve.
package supplier
