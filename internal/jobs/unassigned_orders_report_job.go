package jobs

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// unassignedCounter is satisfied by queries.CountUnassignedOrdersQueryHandler.
type unassignedCounter interface {
	Handle(ctx context.Context, query queries.CountUnassignedOrdersQuery) (int64, error)
}

// UnassignedOrdersReportJob periodically reports placed orders without a
// delivery assignee.
type UnassignedOrdersReportJob struct {
	handler  unassignedCounter
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewUnassignedOrdersReportJob(handler unassignedCounter, schedule string, logger *slog.Logger) *UnassignedOrdersReportJob {
	return &UnassignedOrdersReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "unassigned_orders_report_job"),
	}
}

// Start registers the report on the configured schedule and starts the scheduler.
func (j *UnassignedOrdersReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Unassigned orders report job started", "schedule", j.schedule)
	return nil
}

// Run performs one report.
func (j *UnassignedOrdersReportJob) Run(ctx context.Context) {
	count, err := j.handler.Handle(ctx, queries.NewCountUnassignedOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Unassigned orders report failed", "error", err)
		return
	}

	if count > 0 {
		j.logger.WarnContext(ctx, "Placed orders are waiting for a delivery assignee", "count", count)
		return
	}
	j.logger.DebugContext(ctx, "No unassigned orders")
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *UnassignedOrdersReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Unassigned orders report job stopped")
}
