package admin

import (
	"context"
	"fmt"
	"time"

	"travel-admin/core/httperr"
	"travel-admin/core/server"
	"travel-admin/feature/admin/models"
	enquirymodels "travel-admin/feature/enquiries/models"
	flightmodels "travel-admin/feature/flights/models"
	hotelmodels "travel-admin/feature/hotels/models"
	packagemodels "travel-admin/feature/packages/models"
	visamodels "travel-admin/feature/visas/models"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service handles the admin credential gate and dashboard summaries.
type Service struct {
	repo   *Repository
	db     *gorm.DB
	cfg    server.Config
	logger *zap.Logger
}

// NewService creates a new admin service.
func NewService(db *gorm.DB, cfg server.Config, logger *zap.Logger) *Service {
	return &Service{repo: NewRepository(db), db: db, cfg: cfg, logger: logger}
}

// Migrate creates the admin table if needed.
func (s *Service) Migrate() error {
	return s.repo.Migrate()
}

// Seed creates the admin credential once if absent. The seeded password is
// stored as a bcrypt hash.
func (s *Service) Seed(ctx context.Context) error {
	existing, err := s.repo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to read admin credential: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	a := &models.Admin{Username: s.cfg.AdminUsername, Password: string(hash)}
	if err := s.repo.Create(ctx, a); err != nil {
		return fmt.Errorf("failed to seed admin credential: %w", err)
	}

	s.logger.Info("Seeded admin credential", zap.String("username", a.Username))
	return nil
}

// Login verifies the credentials and issues a time-limited signed session
// token whose payload carries only the admin identifier.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	a, err := s.repo.Get(ctx)
	if err != nil {
		return "", err
	}
	if a == nil || a.Username != username {
		return "", httperr.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)) != nil {
		return "", httperr.ErrUnauthorized
	}

	ttl := time.Duration(s.cfg.TokenTTLHours) * time.Hour
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprint(a.ID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}

// ChangePassword verifies the old password and overwrites the stored hash.
// Outstanding session tokens stay valid until they expire.
func (s *Service) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if newPassword == "" {
		return httperr.Validation("newPassword")
	}

	a, err := s.repo.Get(ctx)
	if err != nil {
		return err
	}
	if a == nil {
		return httperr.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(oldPassword)) != nil {
		return httperr.ErrUnauthorized
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	return s.repo.UpdatePassword(ctx, a.ID, string(hash))
}

// Stats returns per-entity record totals.
func (s *Service) Stats(ctx context.Context) (*models.Stats, error) {
	var out models.Stats

	counts := []struct {
		model any
		dst   *int64
	}{
		{&packagemodels.Package{}, &out.Packages},
		{&hotelmodels.Hotel{}, &out.Hotels},
		{&visamodels.Visa{}, &out.Visas},
		{&flightmodels.Flight{}, &out.Flights},
		{&enquirymodels.Enquiry{}, &out.Enquiries},
	}
	for _, c := range counts {
		if err := s.db.WithContext(ctx).Model(c.model).Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return &out, nil
}
