package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/campusdesk/grievance-system/internal/core/domain"
)

// StudentRepository implements ports.StudentRepository on gorm.
type StudentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// CreateWithUser inserts the credential and the profile in one transaction
// so a failed profile write can never leave an orphaned user.
func (r *StudentRepository) CreateWithUser(ctx context.Context, user *domain.User, profile *domain.StudentProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return translateDuplicate(err)
		}
		profile.UserID = user.ID
		if err := tx.Create(profile).Error; err != nil {
			return translateDuplicate(err)
		}
		return nil
	})
}

func (r *StudentRepository) FindByStudentID(ctx context.Context, studentID string) (*domain.StudentProfile, error) {
	var profile domain.StudentProfile
	err := r.db.WithContext(ctx).Preload("User").Where("student_id = ?", studentID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *StudentRepository) List(ctx context.Context) ([]*domain.StudentProfile, error) {
	var profiles []*domain.StudentProfile
	if err := r.db.WithContext(ctx).Preload("User").Order("student_id").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// Update saves the profile and its loaded user together.
func (r *StudentRepository) Update(ctx context.Context, profile *domain.StudentProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&profile.User).Error; err != nil {
			return err
		}
		return tx.Omit("User").Save(profile).Error
	})
}

// DeleteWithUser removes the profile, its grievances, and the owning user
// as one logical transaction regardless of storage-engine cascade support.
func (r *StudentRepository) DeleteWithUser(ctx context.Context, profile *domain.StudentProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_profile_id = ?", profile.ID).Delete(&domain.Grievance{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&domain.StudentProfile{}, profile.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.User{}, profile.UserID).Error
	})
}

func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.StudentProfile{}).Count(&count).Error
	return count, err
}
