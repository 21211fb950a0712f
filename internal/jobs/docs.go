// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the ordering service.
//
// # Available Jobs
//
// 1. CourierDispatchJob - Runs every five seconds to dispatch ready delivery
// orders to available couriers
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignCourierHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The dispatch job ignores expected business errors (nothing to dispatch,
// every courier busy) and logs everything else.
package jobs
