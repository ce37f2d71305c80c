// Package runlog records the outcome of sync runs in a database.
//
// Each marketplace target produces one row per run: offer counts, batch
// counts, duration, and the final status. The store is purely
// observational — the sync pipeline never reads it back, so catalog state
// is still fetched fresh every run.
//
// The database connection is optional; when it is absent the sync commands
// simply skip recording.
package runlog
