package postgres

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/campusdesk/grievance-system/internal/core/domain"
)

// Connect opens the database, migrates the schema, and seeds the initial
// superuser when the user table is empty.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("postgres migrate: %w", err)
	}
	if err := seed(db); err != nil {
		return nil, fmt.Errorf("postgres seed: %w", err)
	}

	return db, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.StudentProfile{},
		&domain.AuthorityProfile{},
		&domain.Grievance{},
		&domain.SiteSettings{},
	)
}

// seed inserts a superuser admin account on an empty database so the site
// is reachable before any registration happens.
func seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	if err := db.Create(&domain.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Name:         "Site Administrator",
		IsSuperuser:  true,
	}).Error; err != nil {
		return fmt.Errorf("create seed admin: %w", err)
	}

	return nil
}
