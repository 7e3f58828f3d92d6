// Package jobs provides scheduled background tasks for the dispatch engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. PositionEvictionJob - Runs every minute and drops courier positions older than the configured max age
// 2. LedgerAuditJob - Runs every ten minutes and logs clients whose balance differs from their ledger
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(tracker, time.Hour, discrepanciesHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Jobs only log. A failed run is retried on the next tick; a failed job start stops the
// jobs that were already started.
package jobs
