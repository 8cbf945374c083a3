package hotels

import (
	"bytes"
	"context"
	"mime/multipart"
	"strings"
	"testing"

	"travel-admin/core/database"
	"travel-admin/core/httperr"
	"travel-admin/core/images"
	"travel-admin/core/storage"
	"travel-admin/core/storage/mocks"
	"travel-admin/feature/hotels/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*Service, *mocks.Client) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	mockClient := new(mocks.Client)
	up := images.NewUploader(mockClient, storage.Config{Endpoint: "localhost:9000", Bucket: "travel-assets"}, zap.NewNop())

	svc := NewService(db, up, zap.NewNop())
	require.NoError(t, svc.Migrate())
	return svc, mockClient
}

// fileHeader builds a real multipart.FileHeader whose content can be opened.
func fileHeader(t *testing.T, name string) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("images", name)
	require.NoError(t, err)
	_, err = fw.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	return form.File["images"][0]
}

func TestService_Create(t *testing.T) {
	svc, mockClient := newTestService(t)
	ctx := context.Background()

	t.Run("Missing Fields", func(t *testing.T) {
		_, err := svc.Create(ctx, Input{Description: "only description"})
		var verr *httperr.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.ElementsMatch(t, []string{"name", "location", "pricePerNight"}, verr.Missing)
	})

	t.Run("With Upload", func(t *testing.T) {
		mockClient.On("PutObject", mock.Anything, "travel-assets", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil)

		h, err := svc.Create(ctx, Input{
			Name:          "Sea View",
			Location:      "Goa",
			PricePerNight: 4500,
			Files:         []*multipart.FileHeader{fileHeader(t, "front.jpg")},
		})
		require.NoError(t, err)
		require.Len(t, h.Images, 1)
		assert.True(t, strings.HasPrefix(h.Images[0], "http://localhost:9000/travel-assets/upload/v1/hotels/"))
		assert.True(t, strings.HasSuffix(h.Images[0], ".jpg"))
	})
}

func TestService_Update_RetainsAndAppends(t *testing.T) {
	svc, mockClient := newTestService(t)
	ctx := context.Background()

	seed := models.Hotel{
		Name:          "Sea View",
		Location:      "Goa",
		PricePerNight: 4500,
		Images:        []string{"u1", "u2"},
	}
	require.NoError(t, svc.db.Create(&seed).Error)

	mockClient.On("PutObject", mock.Anything, "travel-assets", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	h, err := svc.Update(ctx, seed.ID, Input{
		Name:           "Sea View",
		Location:       "Goa",
		PricePerNight:  4700,
		RetainedImages: []string{"u1", "u2"},
		Files:          []*multipart.FileHeader{fileHeader(t, "pool.jpg")},
	})
	require.NoError(t, err)

	require.Len(t, h.Images, 3)
	assert.Equal(t, "u1", h.Images[0])
	assert.Equal(t, "u2", h.Images[1])
	assert.Contains(t, h.Images[2], "/upload/v1/hotels/")

	// Both originals were retained, so nothing is orphaned and no remote
	// deletion is attempted ("u1"/"u2" would be skipped anyway, but the
	// purge must receive an empty set).
	mockClient.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
	mockClient.AssertNotCalled(t, "RemoveObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Update_PurgesOrphans(t *testing.T) {
	svc, mockClient := newTestService(t)
	ctx := context.Background()

	orphanURL := "http://localhost:9000/travel-assets/upload/v1/hotels/old.jpg"
	seed := models.Hotel{Name: "Sea View", Location: "Goa", PricePerNight: 4500, Images: []string{orphanURL, "keep"}}
	require.NoError(t, svc.db.Create(&seed).Error)

	mockClient.On("ListObjects", mock.Anything, "travel-assets", mock.Anything).
		Return(func(ctx context.Context, bucket string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
			ch := make(chan minio.ObjectInfo, 1)
			ch <- minio.ObjectInfo{Key: "upload/v1/hotels/old.jpg"}
			close(ch)
			return ch
		})
	mockClient.On("RemoveObject", mock.Anything, "travel-assets", "upload/v1/hotels/old.jpg", mock.Anything).
		Return(nil)

	h, err := svc.Update(ctx, seed.ID, Input{
		Name:           "Sea View",
		Location:       "Goa",
		PricePerNight:  4500,
		RetainedImages: []string{"keep"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"keep"}, h.Images)

	mockClient.AssertCalled(t, "RemoveObject", mock.Anything, "travel-assets", "upload/v1/hotels/old.jpg", mock.Anything)
}

func TestService_Delete(t *testing.T) {
	svc, mockClient := newTestService(t)
	ctx := context.Background()

	t.Run("Not Found", func(t *testing.T) {
		err := svc.Delete(ctx, 999)
		assert.ErrorIs(t, err, httperr.ErrNotFound)
	})

	t.Run("Removes Record Despite Purge Failure", func(t *testing.T) {
		url := "http://localhost:9000/travel-assets/upload/v1/hotels/gone.jpg"
		seed := models.Hotel{Name: "Sea View", Location: "Goa", PricePerNight: 4500, Images: []string{url}}
		require.NoError(t, svc.db.Create(&seed).Error)

		mockClient.On("ListObjects", mock.Anything, "travel-assets", mock.Anything).
			Return(func(ctx context.Context, bucket string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
				ch := make(chan minio.ObjectInfo, 1)
				ch <- minio.ObjectInfo{Err: assert.AnError}
				close(ch)
				return ch
			})

		err := svc.Delete(ctx, seed.ID)
		assert.NoError(t, err)

		_, err = svc.Get(ctx, seed.ID)
		assert.ErrorIs(t, err, httperr.ErrNotFound)
	})
}
