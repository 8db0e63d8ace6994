package attendance

import (
	"context"
)

// Repository defines data access methods for work shifts.
type Repository interface {
	// Create inserts a new shift row and returns it with joined user fields.
	Create(ctx context.Context, shift Shift) (Shift, error)

	// Update updates an existing shift.
	Update(ctx context.Context, shift Shift) error

	// GetByID retrieves a shift by ID.
	GetByID(ctx context.Context, id string) (Shift, error)

	// GetOpenShift returns the user's open shift (clocked in, not out).
	GetOpenShift(ctx context.Context, userID string) (Shift, error)

	// HasClockedInOn reports whether the user already has a shift for the
	// given local day (YYYY-MM-DD). Used to prevent double clock-in.
	HasClockedInOn(ctx context.Context, userID string, date string) (bool, error)

	// List retrieves shifts with filters and pagination (admin view).
	List(ctx context.Context, filter ShiftFilter) ([]Shift, int64, error)

	// ListByUser retrieves one user's shifts with pagination.
	ListByUser(ctx context.Context, userID string, filter MyShiftFilter) ([]Shift, int64, error)
}
