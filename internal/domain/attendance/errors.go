package attendance

import "errors"

// Attendance domain errors
var (
	// Clock-in errors
	ErrAlreadyClockedIn     = errors.New("you have already clocked in today")
	ErrOutsideAllowedRadius = errors.New("you are outside the allowed radius")
	ErrLocationRequired     = errors.New("location is required to clock in from this network")
	ErrNotClockedIn         = errors.New("you have not clocked in yet")
	ErrAlreadyClockedOut    = errors.New("you have already clocked out")

	// General errors
	ErrShiftNotFound = errors.New("shift not found")
)
