package flights

import (
	"context"
	"testing"
	"time"

	"travel-admin/core/database"
	"travel-admin/core/httperr"
	"travel-admin/core/images"
	"travel-admin/core/storage"
	"travel-admin/core/storage/mocks"
	"travel-admin/feature/flights/models"

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

func seedFlights(t *testing.T, svc *Service) {
	t.Helper()
	seed := []models.Flight{
		{Airline: "IndiGo", FlightNumber: "6E101", Origin: "Delhi", Destination: "Goa",
			DepartureAt: time.Date(2026, 9, 14, 8, 30, 0, 0, time.UTC)},
		{Airline: "Vistara", FlightNumber: "UK205", Origin: "Mumbai", Destination: "Goa",
			DepartureAt: time.Date(2026, 9, 15, 11, 0, 0, 0, time.UTC)},
		{Airline: "IndiGo", FlightNumber: "6E404", Origin: "Delhi", Destination: "Kochi",
			DepartureAt: time.Date(2026, 9, 14, 19, 45, 0, 0, time.UTC)},
	}
	for i := range seed {
		require.NoError(t, svc.db.Create(&seed[i]).Error)
	}
}

func TestService_Search(t *testing.T) {
	svc, _ := newTestService(t)
	seedFlights(t, svc)
	ctx := context.Background()

	t.Run("By Destination", func(t *testing.T) {
		out, err := svc.Search(ctx, "", "goa", time.Time{})
		require.NoError(t, err)
		assert.Len(t, out, 2)
	})

	t.Run("By Origin And Destination", func(t *testing.T) {
		out, err := svc.Search(ctx, "delhi", "goa", time.Time{})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "6E101", out[0].FlightNumber)
	})

	t.Run("By Departure Date", func(t *testing.T) {
		out, err := svc.Search(ctx, "", "", time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.ElementsMatch(t, []string{"6E101", "6E404"},
			[]string{out[0].FlightNumber, out[1].FlightNumber})
	})

	t.Run("Destination And Date", func(t *testing.T) {
		out, err := svc.Search(ctx, "", "goa", time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "UK205", out[0].FlightNumber)
	})

	t.Run("No Filters Returns All", func(t *testing.T) {
		out, err := svc.Search(ctx, "", "", time.Time{})
		require.NoError(t, err)
		assert.Len(t, out, 3)
	})

	t.Run("No Match", func(t *testing.T) {
		out, err := svc.Search(ctx, "", "paris", time.Time{})
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestService_Create_Validation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), Input{Airline: "IndiGo"})
	var verr *httperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"flightNumber", "origin", "destination"}, verr.Missing)
}

func TestService_Update_DroppingLogoPurgesIt(t *testing.T) {
	svc, mockClient := newTestService(t)
	ctx := context.Background()

	url := "http://localhost:9000/travel-assets/upload/v1/flights/old-logo.png"
	seed := models.Flight{
		Airline:      "IndiGo",
		FlightNumber: "6E101",
		Origin:       "Delhi",
		Destination:  "Goa",
		Logo:         url,
	}
	require.NoError(t, svc.db.Create(&seed).Error)

	mockClient.On("ListObjects", mock.Anything, "travel-assets", mock.Anything).
		Return(nil)

	f, err := svc.Update(ctx, seed.ID, Input{
		Airline:      "IndiGo",
		FlightNumber: "6E101",
		Origin:       "Delhi",
		Destination:  "Goa",
		// RetainedLogo left empty: the logo is dropped.
	})
	require.NoError(t, err)
	assert.Empty(t, f.Logo)

	mockClient.AssertCalled(t, "ListObjects", mock.Anything, "travel-assets", mock.Anything)
}

func TestService_Update_RetainedLogoIsKept(t *testing.T) {
	svc, mockClient := newTestService(t)
	ctx := context.Background()

	url := "http://localhost:9000/travel-assets/upload/v1/flights/logo.png"
	seed := models.Flight{
		Airline:      "Vistara",
		FlightNumber: "UK205",
		Origin:       "Mumbai",
		Destination:  "Goa",
		Logo:         url,
	}
	require.NoError(t, svc.db.Create(&seed).Error)

	f, err := svc.Update(ctx, seed.ID, Input{
		Airline:      "Vistara",
		FlightNumber: "UK205",
		Origin:       "Mumbai",
		Destination:  "Goa",
		RetainedLogo: url,
	})
	require.NoError(t, err)
	assert.Equal(t, url, f.Logo)

	mockClient.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Get_NotFound(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Get(context.Background(), 7)
	assert.ErrorIs(t, err, httperr.ErrNotFound)
}
