package enquiries

import (
	"context"
	"time"

	"travel-admin/core/httperr"
	"travel-admin/feature/enquiries/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles enquiry operations.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new enquiry service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Migrate creates the enquiry table if needed.
func (s *Service) Migrate() error {
	return s.db.AutoMigrate(&models.Enquiry{})
}

// Create persists a new enquiry.
func (s *Service) Create(ctx context.Context, e *models.Enquiry) error {
	var missing []string
	if e.Name == "" {
		missing = append(missing, "name")
	}
	if e.Email == "" {
		missing = append(missing, "email")
	}
	if e.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return httperr.Validation(missing...)
	}

	return s.db.WithContext(ctx).Create(e).Error
}

// List returns all enquiries, newest first.
func (s *Service) List(ctx context.Context) ([]models.Enquiry, error) {
	var out []models.Enquiry
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Monthly buckets enquiries by calendar month (1-12) regardless of year
// and labels each bucket with the month name.
func (s *Service) Monthly(ctx context.Context) ([]models.MonthlyCount, error) {
	var stamps []time.Time
	if err := s.db.WithContext(ctx).Model(&models.Enquiry{}).Pluck("created_at", &stamps).Error; err != nil {
		return nil, err
	}

	var counts [12]int
	for _, ts := range stamps {
		counts[int(ts.Month())-1]++
	}

	out := make([]models.MonthlyCount, 12)
	for i := range out {
		out[i] = models.MonthlyCount{
			Month: time.Month(i + 1).String(),
			Count: counts[i],
		}
	}
	return out, nil
}
