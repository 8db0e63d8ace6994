package attendance

import (
	"time"
)

// Shift statuses.
const (
	StatusPresent = "present"
	StatusLate    = "late"
	StatusAbsent  = "absent"
)

// Shift is one work day for one employee: a clock-in, optionally a clock-out,
// and the location evidence captured at both moments.
type Shift struct {
	ID                string
	UserID            string
	Date              time.Time
	ClockIn           *time.Time
	ClockOut          *time.Time
	ClockInLatitude   *float64
	ClockInLongitude  *float64
	ClockOutLatitude  *float64
	ClockOutLongitude *float64
	ClockInIP         *string
	ClockOutIP        *string
	// EligibilityReason records how the clock-in passed the location check
	// (ip_allowlist or within_radius).
	EligibilityReason *string
	LateMinutes       *int
	WorkedMinutes     *int
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined for list views
	UserName *string
}
