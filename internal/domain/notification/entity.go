package notification

import (
	"time"
)

// Type distinguishes how a notification reached the employee.
type Type string

const (
	// TypeLocal is a notification shown by the page itself while open.
	TypeLocal Type = "local"
	// TypeServerPush is a push message delivered through FCM.
	TypeServerPush Type = "server_push"
)

// AllTypes returns the known notification types.
func AllTypes() []Type {
	return []Type{TypeLocal, TypeServerPush}
}

// IsValidType reports whether t names a known notification type.
func IsValidType(t Type) bool {
	return t == TypeLocal || t == TypeServerPush
}

// Log records that a notification was dispatched for a shift, and later that
// the recipient clicked it. Uniqueness over (user, shift) is deliberately not
// enforced: one row per type may exist for the same pair.
type Log struct {
	ID        string
	UserID    string
	ShiftID   string
	Type      Type
	SentAt    time.Time
	ClickedAt *time.Time
}

// DeviceToken is one FCM registration token belonging to a user. A user may
// hold several (one per browser/device).
type DeviceToken struct {
	UserID    string
	Token     string
	CreatedAt time.Time
}
