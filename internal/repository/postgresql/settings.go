package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/office"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/settings"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.Repository {
	return &settingsRepository{db: db}
}

// Get implements settings.Repository. The table holds at most one row,
// pinned to id = 1.
func (r *settingsRepository) Get(ctx context.Context) (office.Office, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT latitude, longitude, radius_meters, allowed_ips
		FROM office_settings
		WHERE id = 1
	`

	var o office.Office
	err := q.QueryRow(ctx, query).Scan(&o.Latitude, &o.Longitude, &o.RadiusMeters, &o.AllowedIPs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return office.Office{}, settings.ErrSettingsNotFound
		}
		return office.Office{}, fmt.Errorf("failed to get office settings: %w", err)
	}

	return o, nil
}

// Save implements settings.Repository.
func (r *settingsRepository) Save(ctx context.Context, o office.Office) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO office_settings (id, latitude, longitude, radius_meters, allowed_ips)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id)
		DO UPDATE SET latitude = EXCLUDED.latitude, longitude = EXCLUDED.longitude,
					  radius_meters = EXCLUDED.radius_meters, allowed_ips = EXCLUDED.allowed_ips,
					  updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, o.Latitude, o.Longitude, o.RadiusMeters, o.AllowedIPs); err != nil {
		return fmt.Errorf("failed to save office settings: %w", err)
	}

	return nil
}
