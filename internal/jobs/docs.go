// Package jobs provides scheduled background tasks for the bookstore.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance operations.
//
// # Available Jobs
//
// 1. LedgerCompactionJob - Runs every minute to prune duplicate terminal
// status events from the order status ledger
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(compactLedgerHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The compaction job uses the cron expression "0 * * * * *", running at
// the top of every minute. Compaction is maintenance, not correctness:
// readers always resolve the current order state from the latest event,
// so duplicate terminal events never change visible behavior.
//
// # Error Handling
//
// Compaction failures are logged and retried on the next tick. A failed
// job start stops any already running jobs.
package jobs
