package schedule

import "errors"

var (
	ErrScheduleNotFound = errors.New("work schedule not found")
	ErrInvalidWeekday   = errors.New("weekday must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidTimeRange = errors.New("start time must be before end time")
)
