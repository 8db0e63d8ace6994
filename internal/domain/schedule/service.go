package schedule

import "context"

type Service interface {
	// GetMySchedule returns the authenticated user's weekly schedule.
	GetMySchedule(ctx context.Context, userID string) (ListSchedulesResponse, error)

	// GetUserSchedule returns any user's weekly schedule (admin).
	GetUserSchedule(ctx context.Context, userID string) (ListSchedulesResponse, error)

	// UpsertSchedule creates or replaces one weekday entry (admin).
	UpsertSchedule(ctx context.Context, req UpsertScheduleRequest) (ScheduleResponse, error)

	// DeleteSchedule removes one weekday entry (admin).
	DeleteSchedule(ctx context.Context, userID string, weekday int) error
}
