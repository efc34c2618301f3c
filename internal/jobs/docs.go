// Package jobs provides scheduled background tasks for the commerce system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the commerce service.
//
// # Available Jobs
//
// 1. NotificationDispatchJob - Runs every 30 seconds to push pending notifications to the message broker
// 2. LowStockScanJob - Runs every 5 minutes to record alerts for products below the stock threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchHandler, scanHandler, logger)
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
// The dispatch job uses the cron expression "*/30 * * * * *" so recorded
// notifications leave the system within half a minute. The low-stock scan
// uses "0 */5 * * * *" because stock levels move slowly and each scan holds
// a transaction on the products table.
//
// # Error Handling
//
// - Both jobs log failures and retry on the next tick
// - A notification that repeatedly fails to publish stays in failed status and never blocks the queue
// - Failed job starts will stop any already running jobs
package jobs
