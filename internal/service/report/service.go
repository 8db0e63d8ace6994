package report

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/report"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/user"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/database"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/email"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type ReportServiceImpl struct {
	db *database.DB
	report.Repository
	userRepository user.Repository
	emailSender    email.Sender
	adminEmails    []string

	// withTx wraps the status check plus update of a review in one
	// transaction.
	withTx func(ctx context.Context, db *database.DB, fn func(tx pgx.Tx) error) error
}

// NewReportService builds the work report service. adminEmails are the
// configured daily-report recipients; when empty the job falls back to the
// admin users' addresses.
func NewReportService(
	db *database.DB,
	reportRepository report.Repository,
	userRepository user.Repository,
	emailSender email.Sender,
	adminEmails []string,
) report.Service {
	return &ReportServiceImpl{
		db:             db,
		Repository:     reportRepository,
		userRepository: userRepository,
		emailSender:    emailSender,
		adminEmails:    adminEmails,
		withTx:         postgresql.WithTransaction,
	}
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func toReportResponse(wr report.WorkReport) report.WorkReportResponse {
	return report.WorkReportResponse{
		ID:         wr.ID,
		UserID:     wr.UserID,
		UserName:   wr.UserName,
		ShiftID:    wr.ShiftID,
		Content:    wr.Content,
		Status:     wr.Status,
		ReviewedBy: wr.ReviewedBy,
		ReviewedAt: timePtrToString(wr.ReviewedAt),
		ReviewNote: wr.ReviewNote,
		CreatedAt:  wr.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// Submit implements report.Service.
func (r *ReportServiceImpl) Submit(ctx context.Context, req report.SubmitReportRequest) (report.WorkReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.WorkReportResponse{}, err
	}

	created, err := r.Repository.Create(ctx, report.WorkReport{
		UserID:  req.UserID,
		ShiftID: req.ShiftID,
		Content: req.Content,
		Status:  report.StatusSubmitted,
	})
	if err != nil {
		return report.WorkReportResponse{}, fmt.Errorf("failed to submit work report: %w", err)
	}

	return toReportResponse(created), nil
}

// GetMyReports implements report.Service.
func (r *ReportServiceImpl) GetMyReports(ctx context.Context, userID string, filter report.ReportFilter) (report.ListReportsResponse, error) {
	if err := filter.Validate(); err != nil {
		return report.ListReportsResponse{}, err
	}
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	reports, total, err := r.Repository.ListByUser(ctx, userID, filter)
	if err != nil {
		return report.ListReportsResponse{}, fmt.Errorf("failed to list work reports: %w", err)
	}

	return buildListResponse(reports, total, filter.Page, filter.Limit), nil
}

// ListReports implements report.Service.
func (r *ReportServiceImpl) ListReports(ctx context.Context, filter report.ReportFilter) (report.ListReportsResponse, error) {
	if err := filter.Validate(); err != nil {
		return report.ListReportsResponse{}, err
	}
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	reports, total, err := r.Repository.List(ctx, filter)
	if err != nil {
		return report.ListReportsResponse{}, fmt.Errorf("failed to list work reports: %w", err)
	}

	return buildListResponse(reports, total, filter.Page, filter.Limit), nil
}

// Review implements report.Service.
func (r *ReportServiceImpl) Review(ctx context.Context, req report.ReviewReportRequest) (report.WorkReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.WorkReportResponse{}, err
	}

	// Read and update run in one transaction so two concurrent reviews
	// cannot both see the report as still submitted.
	var wr report.WorkReport
	err := r.withTx(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		wr, err = r.Repository.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		if wr.Status != report.StatusSubmitted {
			return report.ErrReportAlreadyProcessed
		}

		now := time.Now()
		wr.Status = req.Status
		wr.ReviewedBy = &req.ReviewerID
		wr.ReviewedAt = &now
		wr.ReviewNote = req.Note

		if err := r.Repository.Update(txCtx, wr); err != nil {
			return fmt.Errorf("failed to review work report: %w", err)
		}
		return nil
	})
	if err != nil {
		return report.WorkReportResponse{}, err
	}

	return toReportResponse(wr), nil
}

// RunDailyReport implements report.Service. The summary covers the previous
// day so a 06:00 trigger reports a complete working day.
func (r *ReportServiceImpl) RunDailyReport(ctx context.Context) (report.DailyReportResult, error) {
	date := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	summary, err := r.Repository.GetDailySummary(ctx, date)
	if err != nil {
		return report.DailyReportResult{}, fmt.Errorf("failed to assemble daily summary: %w", err)
	}

	recipients := r.adminEmails
	if len(recipients) == 0 {
		recipients, err = r.userRepository.ListAdminEmails(ctx)
		if err != nil {
			return report.DailyReportResult{}, fmt.Errorf("failed to resolve report recipients: %w", err)
		}
	}
	if len(recipients) == 0 {
		return report.DailyReportResult{}, report.ErrNoRecipients
	}

	if err := r.emailSender.SendDailyReport(recipients, summary); err != nil {
		return report.DailyReportResult{}, fmt.Errorf("failed to send daily report: %w", err)
	}

	return report.DailyReportResult{Date: date, Recipients: len(recipients)}, nil
}

func buildListResponse(reports []report.WorkReport, total int64, page, limit int) report.ListReportsResponse {
	responses := make([]report.WorkReportResponse, 0, len(reports))
	for _, wr := range reports {
		responses = append(responses, toReportResponse(wr))
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return report.ListReportsResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		Reports:    responses,
	}
}
