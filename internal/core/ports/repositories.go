package ports

import (
	"context"

	"github.com/campusdesk/grievance-system/internal/core/domain"
)

// UserRepository covers credential lookups and single-user mutations.
type UserRepository interface {
	// FindByUsername is an exact, case-sensitive match.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// StudentRepository persists student profiles together with their owning
// users. CreateWithUser and DeleteWithUser run as single transactions so a
// failure can never leave an orphaned credential or profile.
type StudentRepository interface {
	CreateWithUser(ctx context.Context, user *domain.User, profile *domain.StudentProfile) error
	// FindByStudentID matches the canonical (upper-cased) identifier and
	// preloads the owning user.
	FindByStudentID(ctx context.Context, studentID string) (*domain.StudentProfile, error)
	List(ctx context.Context) ([]*domain.StudentProfile, error)
	Update(ctx context.Context, profile *domain.StudentProfile) error
	DeleteWithUser(ctx context.Context, profile *domain.StudentProfile) error
	Count(ctx context.Context) (int64, error)
}

// AuthorityRepository is the staff-side counterpart of StudentRepository.
type AuthorityRepository interface {
	CreateWithUser(ctx context.Context, user *domain.User, profile *domain.AuthorityProfile) error
	FindByEmployeeID(ctx context.Context, employeeID string) (*domain.AuthorityProfile, error)
	// FindByUsername resolves the profile through its owning user's
	// username, used to derive the caller's designation.
	FindByUsername(ctx context.Context, username string) (*domain.AuthorityProfile, error)
	List(ctx context.Context) ([]*domain.AuthorityProfile, error)
	Update(ctx context.Context, profile *domain.AuthorityProfile) error
	DeleteWithUser(ctx context.Context, profile *domain.AuthorityProfile) error
	Count(ctx context.Context) (int64, error)
}

// GrievanceRepository persists complaints. All list methods return newest
// first by creation time and preload the owning student and its user.
type GrievanceRepository interface {
	Create(ctx context.Context, g *domain.Grievance) error
	FindByID(ctx context.Context, id uint) (*domain.Grievance, error)
	ListAll(ctx context.Context) ([]*domain.Grievance, error)
	ListByStudentProfile(ctx context.Context, profileID uint) ([]*domain.Grievance, error)
	ListByHandler(ctx context.Context, designation string) ([]*domain.Grievance, error)
	Update(ctx context.Context, g *domain.Grievance) error
	Delete(ctx context.Context, id uint) error
	CountByStatus(ctx context.Context) (total, pending, resolved, escalated int64, err error)
}

// SettingsRepository holds the global configuration singleton. Get lazily
// creates the record with defaults when it does not exist yet.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SiteSettings, error)
	Update(ctx context.Context, s *domain.SiteSettings) error
}
