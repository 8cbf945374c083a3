package admin

import (
	"context"
	"errors"

	"travel-admin/feature/admin/models"

	"gorm.io/gorm"
)

// Repository is the credential store for the single admin record.
// It is an explicit capability so it can be substituted in tests.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new credential repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the admin table if needed.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&models.Admin{})
}

// Get returns the admin credential record, or nil when none exists yet.
func (r *Repository) Get(ctx context.Context) (*models.Admin, error) {
	var a models.Admin
	err := r.db.WithContext(ctx).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create stores the initial credential record.
func (r *Repository) Create(ctx context.Context, a *models.Admin) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// UpdatePassword overwrites the stored password hash.
func (r *Repository) UpdatePassword(ctx context.Context, id uint, hash string) error {
	return r.db.WithContext(ctx).Model(&models.Admin{}).
		Where("id = ?", id).
		Update("password", hash).Error
}
