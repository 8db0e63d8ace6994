package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/schedule"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.Repository {
	return &scheduleRepository{db: db}
}

// GetForUserDay implements schedule.Repository.
func (r *scheduleRepository) GetForUserDay(ctx context.Context, userID string, weekday int) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, weekday, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'),
			   created_at, updated_at
		FROM work_schedules
		WHERE user_id = $1 AND weekday = $2
	`

	var ws schedule.WorkSchedule
	err := q.QueryRow(ctx, query, userID, weekday).Scan(
		&ws.ID, &ws.UserID, &ws.Weekday, &ws.StartTime, &ws.EndTime,
		&ws.CreatedAt, &ws.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	return ws, nil
}

// ListByUser implements schedule.Repository.
func (r *scheduleRepository) ListByUser(ctx context.Context, userID string) ([]schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, weekday, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'),
			   created_at, updated_at
		FROM work_schedules
		WHERE user_id = $1
		ORDER BY weekday ASC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.WorkSchedule
	for rows.Next() {
		var ws schedule.WorkSchedule
		if err := rows.Scan(
			&ws.ID, &ws.UserID, &ws.Weekday, &ws.StartTime, &ws.EndTime,
			&ws.CreatedAt, &ws.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan work schedule: %w", err)
		}
		schedules = append(schedules, ws)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate work schedules: %w", err)
	}

	return schedules, nil
}

// Upsert implements schedule.Repository.
func (r *scheduleRepository) Upsert(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_schedules (user_id, weekday, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, weekday)
		DO UPDATE SET start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, ws.UserID, ws.Weekday, ws.StartTime, ws.EndTime).
		Scan(&ws.ID, &ws.CreatedAt, &ws.UpdatedAt)
	if err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to upsert work schedule: %w", err)
	}

	return ws, nil
}

// Delete implements schedule.Repository.
func (r *scheduleRepository) Delete(ctx context.Context, userID string, weekday int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM work_schedules WHERE user_id = $1 AND weekday = $2`, userID, weekday)
	if err != nil {
		return fmt.Errorf("failed to delete work schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}

	return nil
}
