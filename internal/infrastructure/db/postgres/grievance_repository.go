package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/campusdesk/grievance-system/internal/core/domain"
)

// GrievanceRepository implements ports.GrievanceRepository on gorm.
type GrievanceRepository struct {
	db *gorm.DB
}

func NewGrievanceRepository(db *gorm.DB) *GrievanceRepository {
	return &GrievanceRepository{db: db}
}

func (r *GrievanceRepository) Create(ctx context.Context, g *domain.Grievance) error {
	return r.db.WithContext(ctx).Omit("Student").Create(g).Error
}

func (r *GrievanceRepository) FindByID(ctx context.Context, id uint) (*domain.Grievance, error) {
	var g domain.Grievance
	err := r.db.WithContext(ctx).Preload("Student").Preload("Student.User").First(&g, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGrievanceNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *GrievanceRepository) ListAll(ctx context.Context) ([]*domain.Grievance, error) {
	return r.list(ctx, r.db)
}

func (r *GrievanceRepository) ListByStudentProfile(ctx context.Context, profileID uint) ([]*domain.Grievance, error) {
	return r.list(ctx, r.db.Where("student_profile_id = ?", profileID))
}

func (r *GrievanceRepository) ListByHandler(ctx context.Context, designation string) ([]*domain.Grievance, error) {
	return r.list(ctx, r.db.Where("current_handler_designation = ?", designation))
}

func (r *GrievanceRepository) list(ctx context.Context, scope *gorm.DB) ([]*domain.Grievance, error) {
	var rows []*domain.Grievance
	err := scope.WithContext(ctx).
		Preload("Student").Preload("Student.User").
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GrievanceRepository) Update(ctx context.Context, g *domain.Grievance) error {
	return r.db.WithContext(ctx).Omit("Student").Save(g).Error
}

func (r *GrievanceRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Grievance{}, id).Error
}

func (r *GrievanceRepository) CountByStatus(ctx context.Context) (total, pending, resolved, escalated int64, err error) {
	// Fresh query per count: gorm chains share statement state otherwise.
	model := func() *gorm.DB { return r.db.WithContext(ctx).Model(&domain.Grievance{}) }
	if err = model().Count(&total).Error; err != nil {
		return
	}
	if err = model().Where("status = ?", domain.StatusPending).Count(&pending).Error; err != nil {
		return
	}
	if err = model().Where("status = ?", domain.StatusResolved).Count(&resolved).Error; err != nil {
		return
	}
	err = model().Where("status = ?", domain.StatusEscalated).Count(&escalated).Error
	return
}
