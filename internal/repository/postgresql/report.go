package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/report"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.Repository {
	return &reportRepository{db: db}
}

const reportColumns = `
	r.id, r.user_id, r.shift_id, r.content, r.status,
	r.reviewed_by, r.reviewed_at, r.review_note,
	r.created_at, r.updated_at, u.full_name
`

func scanReport(row pgx.Row) (report.WorkReport, error) {
	var wr report.WorkReport
	err := row.Scan(
		&wr.ID, &wr.UserID, &wr.ShiftID, &wr.Content, &wr.Status,
		&wr.ReviewedBy, &wr.ReviewedAt, &wr.ReviewNote,
		&wr.CreatedAt, &wr.UpdatedAt, &wr.UserName,
	)
	return wr, err
}

// Create implements report.Repository.
func (r *reportRepository) Create(ctx context.Context, wr report.WorkReport) (report.WorkReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_reports (user_id, shift_id, content, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, wr.UserID, wr.ShiftID, wr.Content, wr.Status).
		Scan(&wr.ID, &wr.CreatedAt, &wr.UpdatedAt)
	if err != nil {
		return report.WorkReport{}, fmt.Errorf("failed to create work report: %w", err)
	}

	return wr, nil
}

// GetByID implements report.Repository.
func (r *reportRepository) GetByID(ctx context.Context, id string) (report.WorkReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + reportColumns + `
		FROM work_reports r
		JOIN users u ON u.id = r.user_id
		WHERE r.id = $1
	`

	wr, err := scanReport(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return report.WorkReport{}, report.ErrReportNotFound
		}
		return report.WorkReport{}, fmt.Errorf("failed to get work report: %w", err)
	}

	return wr, nil
}

// Update implements report.Repository.
func (r *reportRepository) Update(ctx context.Context, wr report.WorkReport) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_reports
		SET status = $1, reviewed_by = $2, reviewed_at = $3, review_note = $4, updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query, wr.Status, wr.ReviewedBy, wr.ReviewedAt, wr.ReviewNote, wr.ID)
	if err != nil {
		return fmt.Errorf("failed to update work report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return report.ErrReportNotFound
	}

	return nil
}

// List implements report.Repository.
func (r *reportRepository) List(ctx context.Context, filter report.ReportFilter) ([]report.WorkReport, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("r.user_id = $%d", argIdx))
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("r.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("r.created_at >= $%d::date", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("r.created_at < $%d::date + INTERVAL '1 day'", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	countQuery := `
		SELECT COUNT(*)
		FROM work_reports r
		WHERE ` + where

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count work reports: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM work_reports r
		JOIN users u ON u.id = r.user_id
		WHERE %s
		ORDER BY r.created_at DESC
		LIMIT $%d OFFSET $%d
	`, reportColumns, where, argIdx, argIdx+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list work reports: %w", err)
	}
	defer rows.Close()

	var reports []report.WorkReport
	for rows.Next() {
		wr, err := scanReport(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan work report: %w", err)
		}
		reports = append(reports, wr)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate work reports: %w", err)
	}

	return reports, total, nil
}

// ListByUser implements report.Repository.
func (r *reportRepository) ListByUser(ctx context.Context, userID string, filter report.ReportFilter) ([]report.WorkReport, int64, error) {
	filter.UserID = &userID
	return r.List(ctx, filter)
}

// GetDailySummary implements report.Repository.
func (r *reportRepository) GetDailySummary(ctx context.Context, date string) (report.DailySummary, error) {
	q := GetQuerier(ctx, r.db)

	summary := report.DailySummary{Date: date}

	countsQuery := `
		SELECT
			(SELECT COUNT(*) FROM users WHERE role = 'employee'),
			(SELECT COUNT(*) FROM work_shifts WHERE date = $1 AND clock_in IS NOT NULL),
			(SELECT COUNT(*) FROM work_shifts WHERE date = $1 AND status = 'late'),
			(SELECT COUNT(*) FROM work_reports WHERE created_at::date = $1)
	`

	err := q.QueryRow(ctx, countsQuery, date).Scan(
		&summary.TotalEmployees,
		&summary.ClockedIn,
		&summary.Late,
		&summary.ReportsFiled,
	)
	if err != nil {
		return report.DailySummary{}, fmt.Errorf("failed to aggregate daily summary: %w", err)
	}

	summary.Absent = summary.TotalEmployees - summary.ClockedIn
	if summary.Absent < 0 {
		summary.Absent = 0
	}

	// Employees who clocked in but filed no report for the day.
	missingQuery := `
		SELECT u.full_name
		FROM work_shifts s
		JOIN users u ON u.id = s.user_id
		WHERE s.date = $1
		  AND s.clock_in IS NOT NULL
		  AND NOT EXISTS (
			SELECT 1 FROM work_reports r
			WHERE r.user_id = s.user_id AND r.created_at::date = $1
		  )
		ORDER BY u.full_name ASC
	`

	rows, err := q.Query(ctx, missingQuery, date)
	if err != nil {
		return report.DailySummary{}, fmt.Errorf("failed to list missing reports: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return report.DailySummary{}, fmt.Errorf("failed to scan missing report row: %w", err)
		}
		summary.MissingReports = append(summary.MissingReports, name)
	}
	if err := rows.Err(); err != nil {
		return report.DailySummary{}, fmt.Errorf("failed to iterate missing report rows: %w", err)
	}

	return summary, nil
}
