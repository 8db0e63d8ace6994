package schedule

import (
	"context"
	"fmt"

	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/schedule"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/database"
)

type ScheduleServiceImpl struct {
	db *database.DB
	schedule.Repository
}

func NewScheduleService(db *database.DB, scheduleRepository schedule.Repository) schedule.Service {
	return &ScheduleServiceImpl{db: db, Repository: scheduleRepository}
}

func toScheduleResponse(ws schedule.WorkSchedule) schedule.ScheduleResponse {
	return schedule.ScheduleResponse{
		ID:        ws.ID,
		UserID:    ws.UserID,
		Weekday:   ws.Weekday,
		StartTime: ws.StartTime,
		EndTime:   ws.EndTime,
	}
}

// GetMySchedule implements schedule.Service.
func (s *ScheduleServiceImpl) GetMySchedule(ctx context.Context, userID string) (schedule.ListSchedulesResponse, error) {
	return s.GetUserSchedule(ctx, userID)
}

// GetUserSchedule implements schedule.Service.
func (s *ScheduleServiceImpl) GetUserSchedule(ctx context.Context, userID string) (schedule.ListSchedulesResponse, error) {
	schedules, err := s.Repository.ListByUser(ctx, userID)
	if err != nil {
		return schedule.ListSchedulesResponse{}, fmt.Errorf("failed to list work schedules: %w", err)
	}

	responses := make([]schedule.ScheduleResponse, 0, len(schedules))
	for _, ws := range schedules {
		responses = append(responses, toScheduleResponse(ws))
	}

	return schedule.ListSchedulesResponse{Schedules: responses}, nil
}

// UpsertSchedule implements schedule.Service.
func (s *ScheduleServiceImpl) UpsertSchedule(ctx context.Context, req schedule.UpsertScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	ws, err := s.Repository.Upsert(ctx, schedule.WorkSchedule{
		UserID:    req.UserID,
		Weekday:   req.Weekday,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to upsert work schedule: %w", err)
	}

	return toScheduleResponse(ws), nil
}

// DeleteSchedule implements schedule.Service.
func (s *ScheduleServiceImpl) DeleteSchedule(ctx context.Context, userID string, weekday int) error {
	if weekday < 0 || weekday > 6 {
		return schedule.ErrInvalidWeekday
	}
	return s.Repository.Delete(ctx, userID, weekday)
}
