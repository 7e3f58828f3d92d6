package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	positionEvictionJob *PositionEvictionJob
	ledgerAuditJob      *LedgerAuditJob
}

// NewJobManager wires the jobs to the position tracker and the discrepancy query.
func NewJobManager(
	tracker positionEvictor,
	positionMaxAge time.Duration,
	auditHandler discrepancyFinder,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		positionEvictionJob: NewPositionEvictionJob(tracker, positionMaxAge, logger),
		ledgerAuditJob:      NewLedgerAuditJob(auditHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.positionEvictionJob.Start(); err != nil {
		return fmt.Errorf("failed to start position eviction job: %w", err)
	}

	if err := jm.ledgerAuditJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.positionEvictionJob.Stop()
		return fmt.Errorf("failed to start ledger audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.ledgerAuditJob.Stop()
	jm.positionEvictionJob.Stop()
}
