package report

import (
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/validator"
)

// ============= Request DTOs =============

// SubmitReportRequest files a work report, optionally tied to a shift.
type SubmitReportRequest struct {
	ShiftID *string `json:"shift_id"`
	Content string  `json:"content"`

	UserID string `json:"-"`
}

func (r SubmitReportRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{Field: "content", Message: "required"})
	}
	if r.ShiftID != nil && !validator.IsValidUUID(*r.ShiftID) {
		errs = append(errs, validator.ValidationError{Field: "shift_id", Message: "must be a valid UUID"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReviewReportRequest approves or rejects a submitted report.
type ReviewReportRequest struct {
	Status string  `json:"status"`
	Note   *string `json:"note"`

	ID         string `json:"-"`
	ReviewerID string `json:"-"`
}

func (r ReviewReportRequest) Validate() error {
	if !validator.IsInSlice(r.Status, []string{StatusApproved, StatusRejected}) {
		return validator.ValidationErrors{{Field: "status", Message: "must be approved or rejected"}}
	}
	return nil
}

// ReportFilter filters the admin report listing.
type ReportFilter struct {
	UserID    *string
	Status    *string
	StartDate *string
	EndDate   *string
	Page      int
	Limit     int
}

func (f ReportFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.Status != nil && !validator.IsInSlice(*f.Status, []string{StatusSubmitted, StatusApproved, StatusRejected}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "invalid status"})
	}
	for field, v := range map[string]*string{"start_date": f.StartDate, "end_date": f.EndDate} {
		if v != nil {
			if _, ok := validator.IsValidDate(*v); !ok {
				errs = append(errs, validator.ValidationError{Field: field, Message: "must be in YYYY-MM-DD format"})
			}
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ============= Response DTOs =============

type WorkReportResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	UserName   *string `json:"user_name,omitempty"`
	ShiftID    *string `json:"shift_id,omitempty"`
	Content    string  `json:"content"`
	Status     string  `json:"status"`
	ReviewedBy *string `json:"reviewed_by,omitempty"`
	ReviewedAt *string `json:"reviewed_at,omitempty"`
	ReviewNote *string `json:"review_note,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

type ListReportsResponse struct {
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	TotalPages int                  `json:"total_pages"`
	Reports    []WorkReportResponse `json:"reports"`
}

// DailyReportResult is the outcome of one daily-report run.
type DailyReportResult struct {
	Date       string `json:"date"`
	Recipients int    `json:"recipients"`
}
