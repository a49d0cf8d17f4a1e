package jobs

import (
	"fmt"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	unassignedReportJob *UnassignedOrdersReportJob
}

// NewJobManager creates a job manager. An empty reportSchedule leaves the
// unassigned-orders report disabled.
func NewJobManager(
	countUnassignedHandler queries.CountUnassignedOrdersQueryHandler,
	reportSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if reportSchedule != "" {
		jm.unassignedReportJob = NewUnassignedOrdersReportJob(countUnassignedHandler, reportSchedule, logger)
	}
	return jm
}

// StartAll starts all configured jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.unassignedReportJob != nil {
		if err := jm.unassignedReportJob.Start(); err != nil {
			return fmt.Errorf("failed to start unassigned orders report job: %w", err)
		}
	}
	return nil
}

// StopAll stops all running jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.unassignedReportJob != nil {
		jm.unassignedReportJob.Stop()
	}
}
