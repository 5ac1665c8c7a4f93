package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/campusdesk/grievance-system/internal/core/domain"
)

// translateDuplicate converts gorm's unique-violation error into the domain
// sentinel so the API layer can answer 409 without knowing about gorm.
func translateDuplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrUserExists
	}
	return err
}
