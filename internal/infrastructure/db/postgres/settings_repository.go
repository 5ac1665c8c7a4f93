package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/campusdesk/grievance-system/internal/core/domain"
)

// SettingsRepository holds the singleton site configuration row.
type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the configuration, creating it with defaults on first access.
func (r *SettingsRepository) Get(ctx context.Context) (*domain.SiteSettings, error) {
	settings := domain.DefaultSiteSettings()
	err := r.db.WithContext(ctx).
		Where(domain.SiteSettings{ID: settings.ID}).
		Attrs(settings).
		FirstOrCreate(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *SettingsRepository) Update(ctx context.Context, s *domain.SiteSettings) error {
	// Full-record replacement; booleans must be written even when false.
	return r.db.WithContext(ctx).Model(s).
		Select("MaintenanceMode", "AllowRegistration", "EmailAlerts").
		Updates(s).Error
}
