package settings

import (
	"context"

	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/office"
)

// Repository persists the single office settings row.
type Repository interface {
	// Get returns the stored office settings, or ErrSettingsNotFound when
	// the row was never seeded.
	Get(ctx context.Context) (office.Office, error)

	// Save upserts the office settings row.
	Save(ctx context.Context, o office.Office) error
}
