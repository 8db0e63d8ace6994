package notification

import (
	"time"

	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/validator"
)

// ============= Request DTOs =============

// ClickRequest acknowledges a notification for a shift. Type is optional:
// when absent, every unacknowledged log for the (user, shift) pair is
// acknowledged regardless of type.
type ClickRequest struct {
	ShiftID string `json:"shift_id"`
	Type    string `json:"type"`
}

func (r ClickRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{Field: "shift_id", Message: "required"})
	}
	if r.Type != "" && !IsValidType(Type(r.Type)) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: ErrInvalidType.Error()})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RegisterTokenRequest stores an FCM registration token for the caller.
type RegisterTokenRequest struct {
	Token string `json:"token"`
}

func (r RegisterTokenRequest) Validate() error {
	if validator.IsEmpty(r.Token) {
		return validator.ValidationErrors{{Field: "token", Message: "required"}}
	}
	return nil
}

// ============= Response DTOs =============

type LogResponse struct {
	ID        string     `json:"id"`
	ShiftID   string     `json:"shift_id"`
	Type      Type       `json:"type"`
	SentAt    time.Time  `json:"sent_at"`
	ClickedAt *time.Time `json:"clicked_at,omitempty"`
}
