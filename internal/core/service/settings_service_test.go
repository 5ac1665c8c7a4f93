package service

import (
	"context"
	"testing"

	"github.com/campusdesk/grievance-system/internal/core/domain"
)

func TestSettingsGetDefaults(t *testing.T) {
	svc := NewSettingsService(newStubSettingsRepo(), discardLogger)

	got, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.MaintenanceMode {
		t.Error("maintenance mode should default to off")
	}
	if !got.AllowRegistration || !got.EmailAlerts {
		t.Errorf("settings = %+v, registration and alerts should default to on", got)
	}
}

func TestSettingsUpdateReplacesAllToggles(t *testing.T) {
	repo := newStubSettingsRepo()
	svc := NewSettingsService(repo, discardLogger)

	got, err := svc.Update(context.Background(), domain.SiteSettings{
		MaintenanceMode:   true,
		AllowRegistration: false,
		EmailAlerts:       false,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	// All three booleans are written even when false.
	if !got.MaintenanceMode || got.AllowRegistration || got.EmailAlerts {
		t.Errorf("settings = %+v, want maintenance on and the other toggles off", got)
	}
	if repo.settings.AllowRegistration {
		t.Error("false value not persisted for allow_registration")
	}
}
