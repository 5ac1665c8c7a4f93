package ports

import (
	"context"
	"io"

	"github.com/campusdesk/grievance-system/internal/core/domain"
)

// DashboardStats aggregates the counters shown on the admin dashboard.
// ResolveRate is the floor of resolved/total as an integer percentage
// string ("0%" when no grievances exist).
type DashboardStats struct {
	Grievances  int64  `json:"grievances"`
	Pending     int64  `json:"pending"`
	Resolved    int64  `json:"resolved"`
	Escalated   int64  `json:"escalated"`
	Students    int64  `json:"students"`
	Authorities int64  `json:"authorities"`
	ResolveRate string `json:"resolve_rate"`
}

// StatsService computes dashboard counters.
type StatsService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

// SettingsService reads and replaces the global site configuration.
type SettingsService interface {
	Get(ctx context.Context) (*domain.SiteSettings, error)
	Update(ctx context.Context, s domain.SiteSettings) (*domain.SiteSettings, error)
}

// ImageStore persists uploaded images on a file medium and returns the
// stored path. Kind partitions uploads (profile pics, evidence, resolution
// photos) into separate directories.
type ImageStore interface {
	Save(kind, filename string, r io.Reader) (string, error)
}
