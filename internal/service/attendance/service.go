package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/attendance"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/notification"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/office"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/schedule"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/settings"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/database"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.Repository
	scheduleRepository  schedule.Repository
	settingsService     settings.Service
	notificationService notification.Service

	// withTx wraps the duplicate-check plus insert in one transaction.
	withTx func(ctx context.Context, db *database.DB, fn func(tx pgx.Tx) error) error
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepository attendance.Repository,
	scheduleRepository schedule.Repository,
	settingsService settings.Service,
	notificationService notification.Service,
) attendance.Service {
	return &AttendanceServiceImpl{
		db:                  db,
		Repository:          attendanceRepository,
		scheduleRepository:  scheduleRepository,
		settingsService:     settingsService,
		notificationService: notificationService,
		withTx:              postgresql.WithTransaction,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func toShiftResponse(s attendance.Shift, eligibility *office.EligibilityResult) attendance.ShiftResponse {
	if eligibility == nil && s.EligibilityReason != nil {
		eligibility = &office.EligibilityResult{Eligible: true, Reason: *s.EligibilityReason}
	}
	return attendance.ShiftResponse{
		ID:                s.ID,
		UserID:            s.UserID,
		UserName:          s.UserName,
		Date:              s.Date.Format("2006-01-02"),
		ClockInTime:       timePtrToString(s.ClockIn),
		ClockOutTime:      timePtrToString(s.ClockOut),
		ClockInLatitude:   s.ClockInLatitude,
		ClockInLongitude:  s.ClockInLongitude,
		ClockOutLatitude:  s.ClockOutLatitude,
		ClockOutLongitude: s.ClockOutLongitude,
		Eligibility:       eligibility,
		LateMinutes:       s.LateMinutes,
		WorkedMinutes:     s.WorkedMinutes,
		Status:            s.Status,
	}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// ClockIn implements attendance.Service.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ShiftResponse{}, err
	}

	now := time.Now()
	today := now.Format("2006-01-02")

	officeSettings, err := a.settingsService.Current(ctx)
	if err != nil {
		return attendance.ShiftResponse{}, fmt.Errorf("failed to load office settings: %w", err)
	}

	eligibility := office.CheckEligibility(officeSettings, req.Coordinate(), req.ClientIP)
	if !eligibility.Eligible {
		if eligibility.Reason == office.ReasonNoLocation {
			return attendance.ShiftResponse{}, attendance.ErrLocationRequired
		}
		return attendance.ShiftResponse{}, attendance.ErrOutsideAllowedRadius
	}

	status := attendance.StatusPresent
	lateMinutes := 0
	ws, err := a.scheduleRepository.GetForUserDay(ctx, req.UserID, int(now.Weekday()))
	if err == nil {
		if start, parseErr := time.Parse("15:04", ws.StartTime); parseErr == nil {
			scheduledIn := time.Date(now.Year(), now.Month(), now.Day(), start.Hour(), start.Minute(), 0, 0, now.Location())
			if now.After(scheduledIn) {
				lateMinutes = int(math.Floor(now.Sub(scheduledIn).Minutes()))
				if lateMinutes > 0 {
					status = attendance.StatusLate
				}
			}
		}
	} else if !errors.Is(err, schedule.ErrScheduleNotFound) {
		return attendance.ShiftResponse{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	date, _ := time.Parse("2006-01-02", today)
	shift := attendance.Shift{
		UserID:            req.UserID,
		Date:              date,
		ClockIn:           &now,
		ClockInLatitude:   req.Latitude,
		ClockInLongitude:  req.Longitude,
		EligibilityReason: &eligibility.Reason,
		LateMinutes:       &lateMinutes,
		Status:            status,
	}
	if req.ClientIP != "" {
		shift.ClockInIP = &req.ClientIP
	}

	// The duplicate check and the insert run in one transaction so two
	// concurrent clock-ins cannot both pass the check.
	var created attendance.Shift
	err = a.withTx(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		hasClockedIn, err := a.Repository.HasClockedInOn(txCtx, req.UserID, today)
		if err != nil {
			return fmt.Errorf("failed to check existing clock-in: %w", err)
		}
		if hasClockedIn {
			return attendance.ErrAlreadyClockedIn
		}

		created, err = a.Repository.Create(txCtx, shift)
		if err != nil {
			return fmt.Errorf("failed to create shift: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.ShiftResponse{}, err
	}

	return toShiftResponse(created, &eligibility), nil
}

// ClockOut implements attendance.Service.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ShiftResponse{}, err
	}

	now := time.Now()

	shift, err := a.Repository.GetOpenShift(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, attendance.ErrShiftNotFound) {
			hasClockedIn, checkErr := a.Repository.HasClockedInOn(ctx, req.UserID, now.Format("2006-01-02"))
			if checkErr == nil && hasClockedIn {
				return attendance.ShiftResponse{}, attendance.ErrAlreadyClockedOut
			}
			return attendance.ShiftResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.ShiftResponse{}, fmt.Errorf("failed to get open shift: %w", err)
	}

	workedMinutes := 0
	if shift.ClockIn != nil {
		workedMinutes = int(math.Floor(now.Sub(*shift.ClockIn).Minutes()))
		if workedMinutes < 0 {
			workedMinutes = 0
		}
	}

	shift.ClockOut = &now
	shift.ClockOutLatitude = req.Latitude
	shift.ClockOutLongitude = req.Longitude
	shift.WorkedMinutes = &workedMinutes
	if req.ClientIP != "" {
		shift.ClockOutIP = &req.ClientIP
	}

	if err := a.Repository.Update(ctx, shift); err != nil {
		return attendance.ShiftResponse{}, fmt.Errorf("failed to update shift: %w", err)
	}

	// Remind the employee to file the day's work report. Push failures are
	// logged inside the notification service and never fail the clock-out.
	a.notificationService.SendToUser(ctx, shift.UserID, shift.ID,
		"Work report reminder",
		"You have clocked out. Don't forget to submit today's work report.",
	)

	return toShiftResponse(shift, nil), nil
}

// GetMyShifts implements attendance.Service.
func (a *AttendanceServiceImpl) GetMyShifts(ctx context.Context, userID string, filter attendance.MyShiftFilter) (attendance.ListShiftsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListShiftsResponse{}, err
	}
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	shifts, total, err := a.Repository.ListByUser(ctx, userID, filter)
	if err != nil {
		return attendance.ListShiftsResponse{}, fmt.Errorf("failed to list shifts: %w", err)
	}

	return buildListResponse(shifts, total, filter.Page, filter.Limit), nil
}

// ListShifts implements attendance.Service.
func (a *AttendanceServiceImpl) ListShifts(ctx context.Context, filter attendance.ShiftFilter) (attendance.ListShiftsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListShiftsResponse{}, err
	}
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	shifts, total, err := a.Repository.List(ctx, filter)
	if err != nil {
		return attendance.ListShiftsResponse{}, fmt.Errorf("failed to list shifts: %w", err)
	}

	return buildListResponse(shifts, total, filter.Page, filter.Limit), nil
}

// GetShift implements attendance.Service.
func (a *AttendanceServiceImpl) GetShift(ctx context.Context, id string) (attendance.ShiftResponse, error) {
	shift, err := a.Repository.GetByID(ctx, id)
	if err != nil {
		return attendance.ShiftResponse{}, err
	}
	return toShiftResponse(shift, nil), nil
}

func buildListResponse(shifts []attendance.Shift, total int64, page, limit int) attendance.ListShiftsResponse {
	responses := make([]attendance.ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		responses = append(responses, toShiftResponse(s, nil))
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return attendance.ListShiftsResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		Shifts:     responses,
	}
}
