package hotels

import (
	"context"
	"errors"
	"mime/multipart"

	"travel-admin/core/httperr"
	"travel-admin/core/images"
	"travel-admin/feature/hotels/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// maxImages bounds the hotel image list.
const maxImages = 10

// assetFolder is the object-store folder for hotel images.
const assetFolder = "hotels"

// Service handles hotel operations.
type Service struct {
	db       *gorm.DB
	uploader *images.Uploader
	logger   *zap.Logger
}

// NewService creates a new hotel service.
func NewService(db *gorm.DB, uploader *images.Uploader, logger *zap.Logger) *Service {
	return &Service{db: db, uploader: uploader, logger: logger}
}

// Migrate creates the hotel table if needed.
func (s *Service) Migrate() error {
	return s.db.AutoMigrate(&models.Hotel{})
}

// Input carries the writable hotel fields plus the image mutation intent.
type Input struct {
	Name          string
	Description   string
	Location      string
	PricePerNight float64
	Rating        float64
	Amenities     []string
	// RetainedImages is the subset of existing image URLs to keep.
	RetainedImages []string
	// Files are freshly uploaded images.
	Files []*multipart.FileHeader
}

// List returns all hotels.
func (s *Service) List(ctx context.Context) ([]models.Hotel, error) {
	var out []models.Hotel
	if err := s.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one hotel by id.
func (s *Service) Get(ctx context.Context, id uint) (*models.Hotel, error) {
	var h models.Hotel
	err := s.db.WithContext(ctx).First(&h, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// Create validates required fields, stores the uploaded images, and
// persists the record.
func (s *Service) Create(ctx context.Context, in Input) (*models.Hotel, error) {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Location == "" {
		missing = append(missing, "location")
	}
	if in.PricePerNight <= 0 {
		missing = append(missing, "pricePerNight")
	}
	if len(missing) > 0 {
		return nil, httperr.Validation(missing...)
	}

	uploaded, err := s.uploader.UploadAll(ctx, assetFolder, in.Files)
	if err != nil {
		return nil, err
	}
	imgs, _ := images.Reconcile(nil, nil, uploaded, maxImages)

	h := &models.Hotel{
		Name:          in.Name,
		Description:   in.Description,
		Location:      in.Location,
		PricePerNight: in.PricePerNight,
		Rating:        in.Rating,
		Amenities:     in.Amenities,
		Images:        imgs,
	}
	if err := s.db.WithContext(ctx).Create(h).Error; err != nil {
		return nil, err
	}
	return h, nil
}

// Update reconciles the image list against the caller's retained subset and
// new uploads, purges orphans, and persists the merged record.
func (s *Service) Update(ctx context.Context, id uint, in Input) (*models.Hotel, error) {
	h, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	uploaded, err := s.uploader.UploadAll(ctx, assetFolder, in.Files)
	if err != nil {
		return nil, err
	}
	newSet, orphaned := images.Reconcile(h.Images, in.RetainedImages, uploaded, maxImages)

	h.Name = in.Name
	h.Description = in.Description
	h.Location = in.Location
	h.PricePerNight = in.PricePerNight
	h.Rating = in.Rating
	h.Amenities = in.Amenities
	h.Images = newSet

	if err := s.db.WithContext(ctx).Save(h).Error; err != nil {
		return nil, err
	}

	s.uploader.Purge(ctx, orphaned)
	return h, nil
}

// Delete purges all of the hotel's images and removes the record. The
// record removal succeeds even when some remote deletions fail.
func (s *Service) Delete(ctx context.Context, id uint) error {
	h, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	s.uploader.Purge(ctx, h.Images)
	return s.db.WithContext(ctx).Delete(&models.Hotel{}, id).Error
}
