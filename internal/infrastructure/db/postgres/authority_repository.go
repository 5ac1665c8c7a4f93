package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/campusdesk/grievance-system/internal/core/domain"
)

// AuthorityRepository implements ports.AuthorityRepository on gorm.
type AuthorityRepository struct {
	db *gorm.DB
}

func NewAuthorityRepository(db *gorm.DB) *AuthorityRepository {
	return &AuthorityRepository{db: db}
}

func (r *AuthorityRepository) CreateWithUser(ctx context.Context, user *domain.User, profile *domain.AuthorityProfile) error {
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

func (r *AuthorityRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*domain.AuthorityProfile, error) {
	var profile domain.AuthorityProfile
	err := r.db.WithContext(ctx).Preload("User").Where("employee_id = ?", employeeID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAuthorityNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// FindByUsername joins through the owning user so a caller's designation
// can be derived from their login identity.
func (r *AuthorityRepository) FindByUsername(ctx context.Context, username string) (*domain.AuthorityProfile, error) {
	var profile domain.AuthorityProfile
	err := r.db.WithContext(ctx).Preload("User").
		Joins("JOIN users ON users.id = authority_profiles.user_id").
		Where("users.username = ?", username).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAuthorityNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *AuthorityRepository) List(ctx context.Context) ([]*domain.AuthorityProfile, error) {
	var profiles []*domain.AuthorityProfile
	if err := r.db.WithContext(ctx).Preload("User").Order("employee_id").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *AuthorityRepository) Update(ctx context.Context, profile *domain.AuthorityProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&profile.User).Error; err != nil {
			return err
		}
		return tx.Omit("User").Save(profile).Error
	})
}

func (r *AuthorityRepository) DeleteWithUser(ctx context.Context, profile *domain.AuthorityProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.AuthorityProfile{}, profile.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.User{}, profile.UserID).Error
	})
}

func (r *AuthorityRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.AuthorityProfile{}).Count(&count).Error
	return count, err
}
