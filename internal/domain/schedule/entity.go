package schedule

import "time"

// WorkSchedule is one weekly recurring working window for one employee.
// Weekday follows time.Weekday (0 = Sunday). Times are local wall-clock in
// "15:04" form.
type WorkSchedule struct {
	ID        string
	UserID    string
	Weekday   int
	StartTime string
	EndTime   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
