package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campusdesk/grievance-system/internal/core/domain"
	"github.com/campusdesk/grievance-system/internal/core/ports"
)

// SettingsService reads and replaces the global site configuration record.
type SettingsService struct {
	settings ports.SettingsRepository
	logger   zerolog.Logger
}

func NewSettingsService(settings ports.SettingsRepository, logger zerolog.Logger) *SettingsService {
	return &SettingsService{settings: settings, logger: logger}
}

func (s *SettingsService) Get(ctx context.Context) (*domain.SiteSettings, error) {
	return s.settings.Get(ctx)
}

// Update replaces the whole record. Updates are full-record writes so the
// singleton never needs partial-field locking.
func (s *SettingsService) Update(ctx context.Context, in domain.SiteSettings) (*domain.SiteSettings, error) {
	current, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	current.MaintenanceMode = in.MaintenanceMode
	current.AllowRegistration = in.AllowRegistration
	current.EmailAlerts = in.EmailAlerts

	if err := s.settings.Update(ctx, current); err != nil {
		return nil, err
	}

	s.logger.Info().
		Bool("maintenance_mode", current.MaintenanceMode).
		Bool("allow_registration", current.AllowRegistration).
		Bool("email_alerts", current.EmailAlerts).
		Msg("site settings updated")

	return current, nil
}
