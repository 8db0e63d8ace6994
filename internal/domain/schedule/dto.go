package schedule

import (
	"time"

	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/validator"
)

// ============= Request DTOs =============

// UpsertScheduleRequest creates or replaces one weekday entry for a user.
type UpsertScheduleRequest struct {
	UserID    string `json:"user_id"`
	Weekday   int    `json:"weekday"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (r UpsertScheduleRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "required"})
	}
	if r.Weekday < 0 || r.Weekday > 6 {
		errs = append(errs, validator.ValidationError{Field: "weekday", Message: ErrInvalidWeekday.Error()})
	}
	start, err := time.Parse("15:04", r.StartTime)
	if err != nil {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be in HH:MM format"})
	}
	end, err := time.Parse("15:04", r.EndTime)
	if err != nil {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be in HH:MM format"})
	}
	if len(errs) == 0 && !start.Before(end) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: ErrInvalidTimeRange.Error()})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ============= Response DTOs =============

type ScheduleResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Weekday   int    `json:"weekday"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type ListSchedulesResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
}
