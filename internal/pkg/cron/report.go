package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/report"
)

// ReportJobs wires the daily report into the in-process scheduler for
// deployments without an external CRON. The HTTP trigger stays authoritative;
// this is the fallback path.
type ReportJobs struct {
	reportSvc report.Service

	mu      sync.Mutex
	lastRun string // YYYY-MM-DD of the last successful run
}

func NewReportJobs(reportSvc report.Service) *ReportJobs {
	return &ReportJobs{reportSvc: reportSvc}
}

func (j *ReportJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("daily_report", 30*time.Minute, j.SendDailyReport)
}

// SendDailyReport runs the daily report once per day, in the 06:00 hour UTC.
// Each run is single-shot: a failure is logged and retried on the next tick,
// a success marks the day done.
func (j *ReportJobs) SendDailyReport(ctx context.Context) error {
	now := time.Now().UTC()
	if now.Hour() != 6 {
		return nil
	}

	today := now.Format("2006-01-02")
	j.mu.Lock()
	alreadyRan := j.lastRun == today
	j.mu.Unlock()
	if alreadyRan {
		return nil
	}

	slog.Info("Cron: Starting daily report job")

	result, err := j.reportSvc.RunDailyReport(ctx)
	if err != nil {
		return err
	}

	j.mu.Lock()
	j.lastRun = today
	j.mu.Unlock()

	slog.Info("Cron: Daily report sent", "date", result.Date, "recipients", result.Recipients)
	return nil
}
