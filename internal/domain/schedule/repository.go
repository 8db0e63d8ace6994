package schedule

import "context"

type Repository interface {
	// GetForUserDay returns the schedule entry for a user on a weekday, or
	// ErrScheduleNotFound when the user has no schedule that day.
	GetForUserDay(ctx context.Context, userID string, weekday int) (WorkSchedule, error)

	// ListByUser returns all weekday entries for a user.
	ListByUser(ctx context.Context, userID string) ([]WorkSchedule, error)

	// Upsert creates or replaces the entry for (user, weekday).
	Upsert(ctx context.Context, ws WorkSchedule) (WorkSchedule, error)

	// Delete removes the entry for (user, weekday).
	Delete(ctx context.Context, userID string, weekday int) error
}
