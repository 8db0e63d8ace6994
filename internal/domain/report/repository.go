package report

import "context"

// Repository defines work report persistence and the daily aggregate query.
type Repository interface {
	Create(ctx context.Context, wr WorkReport) (WorkReport, error)
	GetByID(ctx context.Context, id string) (WorkReport, error)
	Update(ctx context.Context, wr WorkReport) error
	List(ctx context.Context, filter ReportFilter) ([]WorkReport, int64, error)
	ListByUser(ctx context.Context, userID string, filter ReportFilter) ([]WorkReport, int64, error)

	// GetDailySummary aggregates attendance and report counts for one local
	// day (YYYY-MM-DD). The reporting data source of the daily report job.
	GetDailySummary(ctx context.Context, date string) (DailySummary, error)
}
