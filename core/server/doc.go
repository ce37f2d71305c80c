// Package server holds configuration for the optional serve mode.
//
// Serve mode exposes a small HTTP API (trigger a sync run, inspect run
// history) protected by a static API key. The one-shot sync command does
// not use this package.
package server
