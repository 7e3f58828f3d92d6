package jobs

import (
	"context"
	"log/slog"

	"waterdelivery/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

type discrepancyFinder interface {
	Handle(ctx context.Context, query queries.FindLedgerDiscrepanciesQuery) ([]queries.LedgerDiscrepancyResponse, error)
}

// LedgerAuditJob compares every client's stored balance with the sum of the ledger and
// reports mismatches. It never corrects anything.
// Runs every ten minutes.
type LedgerAuditJob struct {
	handler discrepancyFinder
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewLedgerAuditJob(handler discrepancyFinder, logger *slog.Logger) *LedgerAuditJob {
	return &LedgerAuditJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "ledger_audit_job"),
	}
}

// Start schedules the job.
func (j *LedgerAuditJob) Start() error {
	_, err := j.cron.AddFunc("0 */10 * * * *", func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Ledger audit job started (running every 10 minutes)")
	return nil
}

// Stop stops the job and waits for a running audit to finish.
func (j *LedgerAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Ledger audit job stopped")
}

// run returns how many discrepancies were found, or -1 when the audit failed.
func (j *LedgerAuditJob) run(ctx context.Context) int {
	discrepancies, err := j.handler.Handle(ctx, queries.NewFindLedgerDiscrepanciesQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Ledger audit failed", "error", err)
		return -1
	}

	for _, d := range discrepancies {
		j.logger.WarnContext(ctx, "Client balance does not match ledger",
			"client_id", d.ClientID.String(),
			"client_name", d.Name,
			"balance_debt", d.BalanceDebt.String(),
			"ledger_sum", d.LedgerSum.String(),
		)
	}

	return len(discrepancies)
}
