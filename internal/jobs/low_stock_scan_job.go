package jobs

import (
	"context"
	"log/slog"

	"commerce/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// LowStockScanJob manages the scheduled scan for depleted products.
// Runs every 5 minutes to record low-stock alerts for products below the
// threshold.
type LowStockScanJob struct {
	handler commands.ScanLowStockCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLowStockScanJob creates a new job for scanning product stock levels.
// Uses ScanLowStockCommandHandler to record alerts for depleted products.
func NewLowStockScanJob(handler commands.ScanLowStockCommandHandler, logger *slog.Logger) *LowStockScanJob {
	return &LowStockScanJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "low_stock_scan_job"),
	}
}

// Start begins the low-stock scan job to run every 5 minutes.
func (j *LowStockScanJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewScanLowStockCommand()

		recorded, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Low stock scan job failed", "error", err)
			return
		}

		if recorded > 0 {
			j.logger.InfoContext(ctx, "Recorded low stock alerts", "alerts", recorded)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock scan job started (running every 5 minutes)")
	return nil
}

// Stop stops the low-stock scan job.
func (j *LowStockScanJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock scan job stopped")
}
