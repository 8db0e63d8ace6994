package attendance

import (
	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/office"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/validator"
)

// ============= Request DTOs =============

// ClockInRequest carries the clock-in payload. Coordinates are optional:
// geolocation may have been denied in the browser, in which case eligibility
// falls back to the office IP allow-list.
type ClockInRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	// Set by the handler, never from the body.
	UserID   string `json:"-"`
	ClientIP string `json:"-"`
}

func (r ClockInRequest) Validate() error {
	var errs validator.ValidationErrors
	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "latitude and longitude must be provided together"})
	}
	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "must be between -90 and 90"})
	}
	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{Field: "longitude", Message: "must be between -180 and 180"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Coordinate returns the supplied position, or nil when geolocation was
// denied.
func (r ClockInRequest) Coordinate() *office.Coordinate {
	if r.Latitude == nil || r.Longitude == nil {
		return nil
	}
	return &office.Coordinate{Latitude: *r.Latitude, Longitude: *r.Longitude}
}

// ClockOutRequest carries the clock-out payload.
type ClockOutRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	UserID   string `json:"-"`
	ClientIP string `json:"-"`
}

func (r ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "must be between -90 and 90"})
	}
	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{Field: "longitude", Message: "must be between -180 and 180"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ShiftFilter filters the admin shift listing.
type ShiftFilter struct {
	UserID    *string
	Date      *string
	StartDate *string
	EndDate   *string
	Status    *string
	Page      int
	Limit     int
}

func (f ShiftFilter) Validate() error {
	var errs validator.ValidationErrors
	for field, v := range map[string]*string{"date": f.Date, "start_date": f.StartDate, "end_date": f.EndDate} {
		if v != nil {
			if _, ok := validator.IsValidDate(*v); !ok {
				errs = append(errs, validator.ValidationError{Field: field, Message: "must be in YYYY-MM-DD format"})
			}
		}
	}
	if f.Status != nil && !validator.IsInSlice(*f.Status, []string{StatusPresent, StatusLate, StatusAbsent}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "invalid status"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MyShiftFilter filters an employee's own shift history.
type MyShiftFilter struct {
	StartDate *string
	EndDate   *string
	Page      int
	Limit     int
}

func (f MyShiftFilter) Validate() error {
	var errs validator.ValidationErrors
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

type ShiftResponse struct {
	ID                string                   `json:"id"`
	UserID            string                   `json:"user_id"`
	UserName          *string                  `json:"user_name,omitempty"`
	Date              string                   `json:"date"`
	ClockInTime       *string                  `json:"clock_in_time"`
	ClockOutTime      *string                  `json:"clock_out_time"`
	ClockInLatitude   *float64                 `json:"clock_in_latitude,omitempty"`
	ClockInLongitude  *float64                 `json:"clock_in_longitude,omitempty"`
	ClockOutLatitude  *float64                 `json:"clock_out_latitude,omitempty"`
	ClockOutLongitude *float64                 `json:"clock_out_longitude,omitempty"`
	Eligibility       *office.EligibilityResult `json:"eligibility,omitempty"`
	LateMinutes       *int                     `json:"late_minutes,omitempty"`
	WorkedMinutes     *int                     `json:"worked_minutes,omitempty"`
	Status            string                   `json:"status"`
}

type ListShiftsResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Shifts     []ShiftResponse `json:"shifts"`
}
