package report

import "context"

// Service defines work report workflows and the daily report job.
type Service interface {
	// Submit files a work report for the authenticated employee.
	Submit(ctx context.Context, req SubmitReportRequest) (WorkReportResponse, error)

	// GetMyReports lists the authenticated employee's reports.
	GetMyReports(ctx context.Context, userID string, filter ReportFilter) (ListReportsResponse, error)

	// ListReports lists reports with filters (admin).
	ListReports(ctx context.Context, filter ReportFilter) (ListReportsResponse, error)

	// Review approves or rejects a submitted report (admin).
	Review(ctx context.Context, req ReviewReportRequest) (WorkReportResponse, error)

	// RunDailyReport assembles yesterday's summary and emails it to the
	// configured admins. Single-shot: no retries, re-running re-sends.
	RunDailyReport(ctx context.Context) (DailyReportResult, error)
}
