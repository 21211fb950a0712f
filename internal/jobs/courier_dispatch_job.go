package jobs

import (
	"context"
	"errors"
	"log/slog"

	"campuseats/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CourierDispatchJob manages the scheduled dispatch of ready delivery
// orders. Runs every five seconds to match waiting deliveries with
// available couriers.
type CourierDispatchJob struct {
	handler commands.AssignCourierCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCourierDispatchJob creates a new job for dispatching couriers.
// Uses AssignCourierCommandHandler to process dispatch rounds.
func NewCourierDispatchJob(handler commands.AssignCourierCommandHandler, logger *slog.Logger) *CourierDispatchJob {
	return &CourierDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "courier_dispatch_job"),
	}
}

// Start begins the dispatch job.
func (j *CourierDispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignCourierCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoOrderFound) && !errors.Is(err, commands.ErrNoFreeCouriersFound) {
				j.logger.ErrorContext(ctx, "Courier dispatch job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Courier dispatch job started (running every five seconds)")
	return nil
}

// Stop stops the dispatch job.
func (j *CourierDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Courier dispatch job stopped")
}
