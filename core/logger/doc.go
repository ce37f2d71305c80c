// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and per-run correlation.
//
// # Run Correlation
//
// One invocation of the sync pipeline touches the supplier feed and up to
// three marketplace targets. The WithRun helper tags a logger with a fresh
// UUID run ID so that all log entries (and run-history records) of a single
// run can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Starting sync")
//
//	runLog, runID := logger.WithRun(log)
//	runLog.Info("Target complete")
package logger
