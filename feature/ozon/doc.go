// Package ozon integrates the Ozon seller API as a sync target.
//
// The client implements core/sync.Client: it pages through the seller's
// product list with the last_id cursor, and submits stock and price batches
// to the import endpoints. Authentication uses the Client-Id and Api-Key
// headers.
//
// Ozon signals list exhaustion through the total count rather than an empty
// cursor, so the client maps a short or empty page onto an empty next
// cursor for the orchestrator's pagination loop.
//
// Prices go out as digit strings with a fixed "old_price" of "0" and
// auto-actions left in their UNKNOWN state, matching the seller account's
// established integration contract.
package ozon
