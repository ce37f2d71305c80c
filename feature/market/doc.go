// Package market integrates the Yandex.Market partner API as a sync target.
//
// The partner account runs two campaigns — FBS and DBS — that differ only in
// campaign and warehouse identifiers, so one Client type serves both: each
// campaign gets its own client instance built from the shared Config plus
// its CampaignConfig.
//
// The client implements core/sync.Client: it pages through
// offer-mapping-entries with the nextPageToken cursor, publishes stock
// batches (warehouse-scoped, with the shared as-of timestamp) via PUT
// offers/stocks, and price batches via POST offer-prices/updates.
// Authentication is a Bearer token.
package market
