package response

import (
	"errors"
	"net/http"

	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/attendance"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/auth"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/notification"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/report"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/schedule"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/settings"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/user"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrCaptchaRejected):
		Unauthorized(w, "CAPTCHA verification failed")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "You have already clocked in today")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "You have already clocked out")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "You have not clocked in yet")
	case errors.Is(err, attendance.ErrOutsideAllowedRadius):
		Forbidden(w, "You are outside the allowed radius")
	case errors.Is(err, attendance.ErrLocationRequired):
		Forbidden(w, "Location is required to clock in from this network")
	case errors.Is(err, attendance.ErrShiftNotFound):
		NotFound(w, "Shift not found")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Work schedule not found")
	case errors.Is(err, schedule.ErrInvalidWeekday):
		BadRequest(w, err.Error(), nil)

	// Notification domain errors
	case errors.Is(err, notification.ErrInvalidType):
		BadRequest(w, "Invalid notification type", nil)
	case errors.Is(err, notification.ErrTokenNotFound):
		NotFound(w, "Device token not found")

	// Report domain errors
	case errors.Is(err, report.ErrReportNotFound):
		NotFound(w, "Work report not found")
	case errors.Is(err, report.ErrReportAlreadyProcessed):
		Conflict(w, "Work report has already been reviewed")

	// Settings domain errors
	case errors.Is(err, settings.ErrSettingsNotFound):
		NotFound(w, "Office settings not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
