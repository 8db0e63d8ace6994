package user

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)

	// ListAdminEmails returns the email addresses of all admin users,
	// fallback recipients for the daily report when none are configured.
	ListAdminEmails(ctx context.Context) ([]string, error)
}
