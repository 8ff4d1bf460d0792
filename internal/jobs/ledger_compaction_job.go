package jobs

import (
	"context"
	"log/slog"

	"bookstore/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// LedgerCompactionJob manages the scheduled cleanup of the order status
// ledger. Concurrent lifecycle calls may race to append the same terminal
// event more than once; the duplicates are harmless but pad the ledger,
// so this job periodically prunes them, keeping the earliest terminal
// event per order.
type LedgerCompactionJob struct {
	handler commands.CompactLedgerCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLedgerCompactionJob creates a new job for ledger compaction.
// Uses CompactLedgerCommandHandler to prune duplicate terminal events
// every minute.
func NewLedgerCompactionJob(handler commands.CompactLedgerCommandHandler, logger *slog.Logger) *LedgerCompactionJob {
	return &LedgerCompactionJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "ledger_compaction_job"),
	}
}

// Start begins the ledger compaction job to run every minute.
func (j *LedgerCompactionJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewCompactLedgerCommand()

		pruned, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Ledger compaction job failed", "error", err)
			return
		}
		if pruned > 0 {
			j.logger.InfoContext(ctx, "Pruned duplicate terminal events", "count", pruned)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Ledger compaction job started (running every minute)")
	return nil
}

// Stop stops the ledger compaction job.
func (j *LedgerCompactionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Ledger compaction job stopped")
}
