package visas

import (
	"context"
	"errors"
	"mime/multipart"

	"travel-admin/core/httperr"
	"travel-admin/core/images"
	"travel-admin/feature/visas/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// assetFolder is the object-store folder for visa images.
const assetFolder = "visas"

// Service handles visa operations.
type Service struct {
	db       *gorm.DB
	uploader *images.Uploader
	logger   *zap.Logger
}

// NewService creates a new visa service.
func NewService(db *gorm.DB, uploader *images.Uploader, logger *zap.Logger) *Service {
	return &Service{db: db, uploader: uploader, logger: logger}
}

// Migrate creates the visa table if needed.
func (s *Service) Migrate() error {
	return s.db.AutoMigrate(&models.Visa{})
}

// Input carries the writable visa fields plus the image mutation intent.
type Input struct {
	Country           string
	VisaType          string
	Description       string
	Price             float64
	ProcessingTime    string
	RequiredDocuments []string
	// RetainedImage is the existing image URL to keep, empty to drop it.
	RetainedImage string
	// File is the freshly uploaded image, nil when absent.
	File *multipart.FileHeader
}

// List returns all visas.
func (s *Service) List(ctx context.Context) ([]models.Visa, error) {
	var out []models.Visa
	if err := s.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one visa by id.
func (s *Service) Get(ctx context.Context, id uint) (*models.Visa, error) {
	var v models.Visa
	err := s.db.WithContext(ctx).First(&v, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Create validates required fields, stores the uploaded image, and persists
// the record.
func (s *Service) Create(ctx context.Context, in Input) (*models.Visa, error) {
	var missing []string
	if in.Country == "" {
		missing = append(missing, "country")
	}
	if in.VisaType == "" {
		missing = append(missing, "visaType")
	}
	if in.Price <= 0 {
		missing = append(missing, "price")
	}
	if len(missing) > 0 {
		return nil, httperr.Validation(missing...)
	}

	uploaded, err := s.uploadOne(ctx, in.File)
	if err != nil {
		return nil, err
	}
	newSet, _ := images.Reconcile(nil, nil, uploaded, 1)

	v := &models.Visa{
		Country:           in.Country,
		VisaType:          in.VisaType,
		Description:       in.Description,
		Price:             in.Price,
		ProcessingTime:    in.ProcessingTime,
		RequiredDocuments: in.RequiredDocuments,
		Image:             first(newSet),
	}
	if err := s.db.WithContext(ctx).Create(v).Error; err != nil {
		return nil, err
	}
	return v, nil
}

// Update reconciles the single-image set, purges the orphan if the image
// was replaced or dropped, and persists the merged record.
func (s *Service) Update(ctx context.Context, id uint, in Input) (*models.Visa, error) {
	v, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	uploaded, err := s.uploadOne(ctx, in.File)
	if err != nil {
		return nil, err
	}

	// A fresh upload takes the single slot, so retained is dropped when a
	// new file arrives.
	retained := asSet(in.RetainedImage)
	if len(uploaded) > 0 {
		retained = nil
	}
	newSet, orphaned := images.Reconcile(asSet(v.Image), retained, uploaded, 1)

	v.Country = in.Country
	v.VisaType = in.VisaType
	v.Description = in.Description
	v.Price = in.Price
	v.ProcessingTime = in.ProcessingTime
	v.RequiredDocuments = in.RequiredDocuments
	v.Image = first(newSet)

	if err := s.db.WithContext(ctx).Save(v).Error; err != nil {
		return nil, err
	}

	s.uploader.Purge(ctx, orphaned)
	return v, nil
}

// Delete purges the visa's image and removes the record.
func (s *Service) Delete(ctx context.Context, id uint) error {
	v, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	s.uploader.Purge(ctx, asSet(v.Image))
	return s.db.WithContext(ctx).Delete(&models.Visa{}, id).Error
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
