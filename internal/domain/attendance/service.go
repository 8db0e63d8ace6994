package attendance

import (
	"context"
)

// Service defines business logic for attendance operations
type Service interface {
	// ClockIn processes a clock-in after checking location eligibility.
	ClockIn(ctx context.Context, req ClockInRequest) (ShiftResponse, error)

	// ClockOut closes the user's open shift.
	ClockOut(ctx context.Context, req ClockOutRequest) (ShiftResponse, error)

	// GetMyShifts retrieves shift history for the authenticated employee.
	GetMyShifts(ctx context.Context, userID string, filter MyShiftFilter) (ListShiftsResponse, error)

	// ListShifts retrieves shifts with filters (admin).
	ListShifts(ctx context.Context, filter ShiftFilter) (ListShiftsResponse, error)

	// GetShift retrieves a single shift by ID.
	GetShift(ctx context.Context, id string) (ShiftResponse, error)
}
