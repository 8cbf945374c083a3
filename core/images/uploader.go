package images

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"travel-admin/core/storage"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// uploadPrefix is the key prefix under which all entity assets live.
// The version segment is part of the public URL contract; PublicID strips it.
const uploadPrefix = "upload/v1"

// Uploader stores entity images in the remote object store and purges
// orphaned ones.
type Uploader struct {
	client storage.Client
	cfg    storage.Config
	logger *zap.Logger
}

// NewUploader creates a new Uploader.
func NewUploader(client storage.Client, cfg storage.Config, logger *zap.Logger) *Uploader {
	return &Uploader{client: client, cfg: cfg, logger: logger}
}

// Upload stores one multipart file under the given folder and returns its
// public URL.
func (u *Uploader) Upload(ctx context.Context, folder string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload %q: %w", fh.Filename, err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	name := strings.ReplaceAll(uuid.NewString(), "-", "")
	key := fmt.Sprintf("%s/%s/%s%s", uploadPrefix, folder, name, ext)

	opts := minio.PutObjectOptions{ContentType: fh.Header.Get("Content-Type")}
	if _, err := u.client.PutObject(ctx, u.cfg.Bucket, key, src, fh.Size, opts); err != nil {
		return "", fmt.Errorf("failed to upload %q: %w", fh.Filename, err)
	}

	return u.cfg.BaseURL() + "/" + key, nil
}

// UploadAll stores a batch of files in order and returns their URLs.
// A failed upload aborts the batch; already stored files are kept.
func (u *Uploader) UploadAll(ctx context.Context, folder string, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := u.Upload(ctx, folder, fh)
		if err != nil {
			return urls, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
