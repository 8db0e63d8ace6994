package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/schedule"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/validator"
)

type fakeScheduleRepo struct {
	entries map[string][]schedule.WorkSchedule // keyed by userID
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{entries: make(map[string][]schedule.WorkSchedule)}
}

func (f *fakeScheduleRepo) GetForUserDay(ctx context.Context, userID string, weekday int) (schedule.WorkSchedule, error) {
	for _, ws := range f.entries[userID] {
		if ws.Weekday == weekday {
			return ws, nil
		}
	}
	return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
}

func (f *fakeScheduleRepo) ListByUser(ctx context.Context, userID string) ([]schedule.WorkSchedule, error) {
	return f.entries[userID], nil
}

func (f *fakeScheduleRepo) Upsert(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	existing := f.entries[ws.UserID]
	for i, e := range existing {
		if e.Weekday == ws.Weekday {
			ws.ID = e.ID
			existing[i] = ws
			return ws, nil
		}
	}
	ws.ID = "sched-1"
	f.entries[ws.UserID] = append(existing, ws)
	return ws, nil
}

func (f *fakeScheduleRepo) Delete(ctx context.Context, userID string, weekday int) error {
	existing := f.entries[userID]
	for i, e := range existing {
		if e.Weekday == weekday {
			f.entries[userID] = append(existing[:i], existing[i+1:]...)
			return nil
		}
	}
	return schedule.ErrScheduleNotFound
}

func TestUpsertScheduleReplacesExistingWeekday(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := NewScheduleService(nil, repo)

	_, err := svc.UpsertSchedule(context.Background(), schedule.UpsertScheduleRequest{
		UserID:    "user-1",
		Weekday:   1,
		StartTime: "09:00",
		EndTime:   "18:00",
	})
	require.NoError(t, err)

	resp, err := svc.UpsertSchedule(context.Background(), schedule.UpsertScheduleRequest{
		UserID:    "user-1",
		Weekday:   1,
		StartTime: "08:00",
		EndTime:   "17:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "08:00", resp.StartTime)

	list, err := svc.GetMySchedule(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, list.Schedules, 1)
	assert.Equal(t, "08:00", list.Schedules[0].StartTime)
}

func TestUpsertScheduleRejectsInvertedTimeRange(t *testing.T) {
	svc := NewScheduleService(nil, newFakeScheduleRepo())

	_, err := svc.UpsertSchedule(context.Background(), schedule.UpsertScheduleRequest{
		UserID:    "user-1",
		Weekday:   2,
		StartTime: "18:00",
		EndTime:   "09:00",
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "end_time", verrs[0].Field)
}

func TestDeleteScheduleValidatesWeekday(t *testing.T) {
	svc := NewScheduleService(nil, newFakeScheduleRepo())

	err := svc.DeleteSchedule(context.Background(), "user-1", 7)
	assert.ErrorIs(t, err, schedule.ErrInvalidWeekday)
}

func TestGetMyScheduleEmpty(t *testing.T) {
	svc := NewScheduleService(nil, newFakeScheduleRepo())

	list, err := svc.GetMySchedule(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, list.Schedules)
}
