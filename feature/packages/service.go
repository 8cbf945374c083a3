package packages

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"travel-admin/core/httperr"
	"travel-admin/core/images"
	"travel-admin/feature/packages/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// maxImages bounds the package image gallery.
const maxImages = 10

// assetFolder is the object-store folder for package images.
const assetFolder = "destinations"

// Service handles travel package operations.
type Service struct {
	db       *gorm.DB
	uploader *images.Uploader
	logger   *zap.Logger
}

// NewService creates a new package service.
func NewService(db *gorm.DB, uploader *images.Uploader, logger *zap.Logger) *Service {
	return &Service{db: db, uploader: uploader, logger: logger}
}

// Migrate creates the package table if needed.
func (s *Service) Migrate() error {
	return s.db.AutoMigrate(&models.Package{})
}

// ActivityInput is the per-activity slice of an update request. ImageCount
// declares how many files of the flat activity upload batch belong to this
// activity.
type ActivityInput struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	ExistingImages []string `json:"existingImages"`
	ImageCount     int      `json:"imageCount"`
}

// Input carries the writable package fields plus the image mutation intent
// for all three image sets.
type Input struct {
	Title       string
	Description string
	Location    string
	Category    string
	Price       float64
	Days        int
	Nights      int
	Featured    bool
	Activities  []ActivityInput
	// RetainedThumbnail is the existing thumbnail URL to keep, empty to
	// drop it.
	RetainedThumbnail string
	// RetainedImages is the subset of existing gallery URLs to keep.
	RetainedImages []string
	// Thumbnail is a freshly uploaded thumbnail, nil when absent.
	Thumbnail *multipart.FileHeader
	// Files are freshly uploaded gallery images.
	Files []*multipart.FileHeader
	// ActivityFiles is the flat upload batch consumed by the activities
	// in itinerary order.
	ActivityFiles []*multipart.FileHeader
}

// SearchFilter narrows the public package search.
type SearchFilter struct {
	Title    string
	MinPrice float64
	MaxPrice float64
	Days     int
}

// List returns all packages.
func (s *Service) List(ctx context.Context) ([]models.Package, error) {
	var out []models.Package
	if err := s.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one package by id.
func (s *Service) Get(ctx context.Context, id uint) (*models.Package, error) {
	var p models.Package
	err := s.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Search filters packages by a case-insensitive title substring plus
// optional price bounds and duration. When the narrowed query matches
// nothing the price and duration filters are dropped and the title-only
// results are returned instead.
func (s *Service) Search(ctx context.Context, f SearchFilter) ([]models.Package, error) {
	out, err := s.search(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(out) > 0 || (f.MinPrice <= 0 && f.MaxPrice <= 0 && f.Days <= 0) {
		return out, nil
	}
	return s.search(ctx, SearchFilter{Title: f.Title})
}

func (s *Service) search(ctx context.Context, f SearchFilter) ([]models.Package, error) {
	q := s.db.WithContext(ctx).Model(&models.Package{})
	if f.Title != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(f.Title)+"%")
	}
	if f.MinPrice > 0 {
		q = q.Where("price >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("price <= ?", f.MaxPrice)
	}
	if f.Days > 0 {
		q = q.Where("days = ?", f.Days)
	}

	var out []models.Package
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Prices returns the distinct package prices in ascending order.
func (s *Service) Prices(ctx context.Context) ([]float64, error) {
	var out []float64
	err := s.db.WithContext(ctx).Model(&models.Package{}).
		Distinct("price").Order("price ASC").Pluck("price", &out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create validates the required fields, stores all uploaded assets, and
// persists the record. Activity uploads are consumed from the flat batch
// in itinerary order.
func (s *Service) Create(ctx context.Context, in Input) (*models.Package, error) {
	var missing []string
	if in.Title == "" {
		missing = append(missing, "title")
	}
	if in.Description == "" {
		missing = append(missing, "description")
	}
	if in.Price <= 0 {
		missing = append(missing, "price")
	}
	if in.Days <= 0 {
		missing = append(missing, "days")
	}
	if len(missing) > 0 {
		return nil, httperr.Validation(missing...)
	}

	thumb, err := s.uploadOne(ctx, in.Thumbnail)
	if err != nil {
		return nil, err
	}
	uploaded, err := s.uploader.UploadAll(ctx, assetFolder, in.Files)
	if err != nil {
		return nil, err
	}
	activities, _, err := s.reconcileActivities(ctx, nil, in)
	if err != nil {
		return nil, err
	}

	thumbSet, _ := images.Reconcile(nil, nil, thumb, 1)
	imgs, _ := images.Reconcile(nil, nil, uploaded, maxImages)

	p := &models.Package{
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Category:    in.Category,
		Price:       in.Price,
		Days:        in.Days,
		Nights:      in.Nights,
		Featured:    in.Featured,
		Thumbnail:   first(thumbSet),
		Images:      imgs,
		Activities:  activities,
	}
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// Update reconciles the thumbnail, the gallery, and every activity's image
// set, purges the union of orphans, and persists the merged record.
func (s *Service) Update(ctx context.Context, id uint, in Input) (*models.Package, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	thumb, err := s.uploadOne(ctx, in.Thumbnail)
	if err != nil {
		return nil, err
	}
	uploaded, err := s.uploader.UploadAll(ctx, assetFolder, in.Files)
	if err != nil {
		return nil, err
	}

	retainedThumb := asSet(in.RetainedThumbnail)
	if len(thumb) > 0 {
		retainedThumb = nil
	}
	thumbSet, thumbOrphans := images.Reconcile(asSet(p.Thumbnail), retainedThumb, thumb, 1)
	imgs, imgOrphans := images.Reconcile(p.Images, in.RetainedImages, uploaded, maxImages)

	activities, actOrphans, err := s.reconcileActivities(ctx, p.Activities, in)
	if err != nil {
		return nil, err
	}

	p.Title = in.Title
	p.Description = in.Description
	p.Location = in.Location
	p.Category = in.Category
	p.Price = in.Price
	p.Days = in.Days
	p.Nights = in.Nights
	p.Featured = in.Featured
	p.Thumbnail = first(thumbSet)
	p.Images = imgs
	p.Activities = activities

	if err := s.db.WithContext(ctx).Save(p).Error; err != nil {
		return nil, err
	}

	var orphans []string
	orphans = append(orphans, thumbOrphans...)
	orphans = append(orphans, imgOrphans...)
	orphans = append(orphans, actOrphans...)
	s.uploader.Purge(ctx, orphans)
	return p, nil
}

// Delete purges every image across all of the package's sets and removes
// the record. The record removal succeeds even when some remote deletions
// fail.
func (s *Service) Delete(ctx context.Context, id uint) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	refs := asSet(p.Thumbnail)
	refs = append(refs, p.Images...)
	for _, a := range p.Activities {
		refs = append(refs, a.Images...)
	}
	s.uploader.Purge(ctx, refs)

	return s.db.WithContext(ctx).Delete(&models.Package{}, id).Error
}

// reconcileActivities runs the reconciler once per incoming activity,
// feeding each one its slice of the flat upload batch. Activities present
// on the persisted record but absent from the request have their whole
// image set orphaned.
func (s *Service) reconcileActivities(ctx context.Context, current []models.Activity, in Input) ([]models.Activity, []string, error) {
	counts := make([]int, len(in.Activities))
	for i, a := range in.Activities {
		counts[i] = a.ImageCount
	}
	groups := images.SplitBatch(counts, in.ActivityFiles)

	activities := make([]models.Activity, 0, len(in.Activities))
	var orphans []string
	for i, a := range in.Activities {
		uploaded, err := s.uploader.UploadAll(ctx, assetFolder, groups[i])
		if err != nil {
			return nil, nil, err
		}

		var existing []string
		if i < len(current) {
			existing = current[i].Images
		}
		set, orphaned := images.Reconcile(existing, a.ExistingImages, uploaded, 0)
		orphans = append(orphans, orphaned...)
		activities = append(activities, models.Activity{
			Title:       a.Title,
			Description: a.Description,
			Images:      set,
		})
	}
	for i := len(in.Activities); i < len(current); i++ {
		_, orphaned := images.Reconcile(current[i].Images, nil, nil, 0)
		orphans = append(orphans, orphaned...)
	}
	return activities, orphans, nil
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
