package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/attendance"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const shiftColumns = `
	s.id, s.user_id, s.date, s.clock_in, s.clock_out,
	s.clock_in_latitude, s.clock_in_longitude,
	s.clock_out_latitude, s.clock_out_longitude,
	s.clock_in_ip, s.clock_out_ip, s.eligibility_reason,
	s.late_minutes, s.worked_minutes, s.status,
	s.created_at, s.updated_at, u.full_name
`

func scanShift(row pgx.Row) (attendance.Shift, error) {
	var s attendance.Shift
	err := row.Scan(
		&s.ID, &s.UserID, &s.Date, &s.ClockIn, &s.ClockOut,
		&s.ClockInLatitude, &s.ClockInLongitude,
		&s.ClockOutLatitude, &s.ClockOutLongitude,
		&s.ClockInIP, &s.ClockOutIP, &s.EligibilityReason,
		&s.LateMinutes, &s.WorkedMinutes, &s.Status,
		&s.CreatedAt, &s.UpdatedAt, &s.UserName,
	)
	return s, err
}

// Create implements attendance.Repository.
func (a *attendanceRepository) Create(ctx context.Context, shift attendance.Shift) (attendance.Shift, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO work_shifts (
			user_id, date, clock_in,
			clock_in_latitude, clock_in_longitude, clock_in_ip,
			eligibility_reason, late_minutes, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		shift.UserID,
		shift.Date,
		shift.ClockIn,
		shift.ClockInLatitude,
		shift.ClockInLongitude,
		shift.ClockInIP,
		shift.EligibilityReason,
		shift.LateMinutes,
		shift.Status,
	).Scan(&shift.ID, &shift.CreatedAt, &shift.UpdatedAt)

	if err != nil {
		return attendance.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return shift, nil
}

// Update implements attendance.Repository.
func (a *attendanceRepository) Update(ctx context.Context, shift attendance.Shift) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE work_shifts
		SET clock_out = $1, clock_out_latitude = $2, clock_out_longitude = $3,
			clock_out_ip = $4, worked_minutes = $5, status = $6, updated_at = NOW()
		WHERE id = $7
	`

	tag, err := q.Exec(ctx, query,
		shift.ClockOut,
		shift.ClockOutLatitude,
		shift.ClockOutLongitude,
		shift.ClockOutIP,
		shift.WorkedMinutes,
		shift.Status,
		shift.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrShiftNotFound
	}

	return nil
}

// GetByID implements attendance.Repository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Shift, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM work_shifts s
		JOIN users u ON u.id = s.user_id
		WHERE s.id = $1
	`

	s, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Shift{}, attendance.ErrShiftNotFound
		}
		return attendance.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return s, nil
}

// GetOpenShift implements attendance.Repository.
func (a *attendanceRepository) GetOpenShift(ctx context.Context, userID string) (attendance.Shift, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM work_shifts s
		JOIN users u ON u.id = s.user_id
		WHERE s.user_id = $1
		  AND s.clock_in IS NOT NULL
		  AND s.clock_out IS NULL
		ORDER BY s.clock_in DESC
		LIMIT 1
	`

	s, err := scanShift(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Shift{}, attendance.ErrShiftNotFound
		}
		return attendance.Shift{}, fmt.Errorf("failed to get open shift: %w", err)
	}

	return s, nil
}

// HasClockedInOn implements attendance.Repository.
func (a *attendanceRepository) HasClockedInOn(ctx context.Context, userID string, date string) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM work_shifts
			WHERE user_id = $1 AND date = $2 AND clock_in IS NOT NULL
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, userID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check clock-in for date: %w", err)
	}

	return exists, nil
}

// List implements attendance.Repository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.ShiftFilter) ([]attendance.Shift, int64, error) {
	q := GetQuerier(ctx, a.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("s.user_id = $%d", argIdx))
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.Date != nil {
		conditions = append(conditions, fmt.Sprintf("s.date = $%d", argIdx))
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("s.date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("s.date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("s.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	countQuery := `
		SELECT COUNT(*)
		FROM work_shifts s
		WHERE ` + where

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count shifts: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM work_shifts s
		JOIN users u ON u.id = s.user_id
		WHERE %s
		ORDER BY s.date DESC, s.clock_in DESC NULLS LAST
		LIMIT $%d OFFSET $%d
	`, shiftColumns, where, argIdx, argIdx+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []attendance.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate shifts: %w", err)
	}

	return shifts, total, nil
}

// ListByUser implements attendance.Repository.
func (a *attendanceRepository) ListByUser(ctx context.Context, userID string, filter attendance.MyShiftFilter) ([]attendance.Shift, int64, error) {
	shiftFilter := attendance.ShiftFilter{
		UserID:    &userID,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
		Page:      filter.Page,
		Limit:     filter.Limit,
	}
	return a.List(ctx, shiftFilter)
}
