package flights

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"travel-admin/core/httperr"
	"travel-admin/core/images"
	"travel-admin/feature/flights/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// assetFolder is the object-store folder for airline logos.
const assetFolder = "flights"

// Service handles flight operations.
type Service struct {
	db       *gorm.DB
	uploader *images.Uploader
	logger   *zap.Logger
}

// NewService creates a new flight service.
func NewService(db *gorm.DB, uploader *images.Uploader, logger *zap.Logger) *Service {
	return &Service{db: db, uploader: uploader, logger: logger}
}

// Migrate creates the flight table if needed.
func (s *Service) Migrate() error {
	return s.db.AutoMigrate(&models.Flight{})
}

// Input carries the writable flight fields plus the logo mutation intent.
type Input struct {
	Airline      string
	FlightNumber string
	Origin       string
	Destination  string
	DepartureAt  time.Time
	ArrivalAt    time.Time
	Price        float64
	SeatClass    string
	// RetainedLogo is the existing logo URL to keep, empty to drop it.
	RetainedLogo string
	// File is the freshly uploaded logo, nil when absent.
	File *multipart.FileHeader
}

// List returns all flights.
func (s *Service) List(ctx context.Context) ([]models.Flight, error) {
	var out []models.Flight
	if err := s.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one flight by id.
func (s *Service) Get(ctx context.Context, id uint) (*models.Flight, error) {
	var f models.Flight
	err := s.db.WithContext(ctx).First(&f, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Search filters flights by case-insensitive substring on origin and
// destination, optionally narrowed to departures on one calendar day.
// A zero date applies no day filter.
func (s *Service) Search(ctx context.Context, from, to string, date time.Time) ([]models.Flight, error) {
	q := s.db.WithContext(ctx).Model(&models.Flight{})
	if from != "" {
		q = q.Where("LOWER(origin) LIKE ?", "%"+strings.ToLower(from)+"%")
	}
	if to != "" {
		q = q.Where("LOWER(destination) LIKE ?", "%"+strings.ToLower(to)+"%")
	}
	if !date.IsZero() {
		day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		q = q.Where("departure_at >= ? AND departure_at < ?", day, day.AddDate(0, 0, 1))
	}

	var out []models.Flight
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Create validates required fields, stores the uploaded logo, and persists
// the record.
func (s *Service) Create(ctx context.Context, in Input) (*models.Flight, error) {
	var missing []string
	if in.Airline == "" {
		missing = append(missing, "airline")
	}
	if in.FlightNumber == "" {
		missing = append(missing, "flightNumber")
	}
	if in.Origin == "" {
		missing = append(missing, "origin")
	}
	if in.Destination == "" {
		missing = append(missing, "destination")
	}
	if len(missing) > 0 {
		return nil, httperr.Validation(missing...)
	}

	uploaded, err := s.uploadOne(ctx, in.File)
	if err != nil {
		return nil, err
	}
	newSet, _ := images.Reconcile(nil, nil, uploaded, 1)

	f := &models.Flight{
		Airline:      in.Airline,
		FlightNumber: in.FlightNumber,
		Origin:       in.Origin,
		Destination:  in.Destination,
		DepartureAt:  in.DepartureAt,
		ArrivalAt:    in.ArrivalAt,
		Price:        in.Price,
		SeatClass:    in.SeatClass,
		Logo:         first(newSet),
	}
	if err := s.db.WithContext(ctx).Create(f).Error; err != nil {
		return nil, err
	}
	return f, nil
}

// Update reconciles the logo, purges the orphan if replaced or dropped,
// and persists the merged record.
func (s *Service) Update(ctx context.Context, id uint, in Input) (*models.Flight, error) {
	f, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	uploaded, err := s.uploadOne(ctx, in.File)
	if err != nil {
		return nil, err
	}

	retained := asSet(in.RetainedLogo)
	if len(uploaded) > 0 {
		retained = nil
	}
	newSet, orphaned := images.Reconcile(asSet(f.Logo), retained, uploaded, 1)

	f.Airline = in.Airline
	f.FlightNumber = in.FlightNumber
	f.Origin = in.Origin
	f.Destination = in.Destination
	f.DepartureAt = in.DepartureAt
	f.ArrivalAt = in.ArrivalAt
	f.Price = in.Price
	f.SeatClass = in.SeatClass
	f.Logo = first(newSet)

	if err := s.db.WithContext(ctx).Save(f).Error; err != nil {
		return nil, err
	}

	s.uploader.Purge(ctx, orphaned)
	return f, nil
}

// Delete purges the flight's logo and removes the record.
func (s *Service) Delete(ctx context.Context, id uint) error {
	f, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	s.uploader.Purge(ctx, asSet(f.Logo))
	return s.db.WithContext(ctx).Delete(&models.Flight{}, id).Error
}

func (s *Service) uploadOne(ctx context.Context, fh *multipart.FileHeader) ([]string, error) {
	if fh == nil {
		return nil, nil
	}
	url, err := s.uploader.Upload(ctx, assetFolder, fh)
	if err != nil {
		return nil, err
	}
	return []string{url}, nil
}

func asSet(ref string) []string {
	if ref == "" {
		return nil
	}
	return []string{ref}
}

func first(set []string) string {
	if len(set) == 0 {
		return ""
	}
	return set[0]
}
