package admin

import (
	"context"
	"regexp"
	"testing"

	"travel-admin/core/database"
	"travel-admin/core/httperr"
	"travel-admin/core/server"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func testConfig() server.Config {
	return server.Config{
		Port:          "8080",
		JwtSecret:     "test-secret",
		TokenTTLHours: 24,
		AdminUsername: "admin",
		AdminPassword: "initial-password",
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	svc := NewService(db, testConfig(), zap.NewNop())
	require.NoError(t, svc.Migrate())
	return svc
}

func TestService_Seed(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))

	a, err := svc.repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "admin", a.Username)
	// The stored value is a hash, never the configured plaintext.
	assert.NotEqual(t, "initial-password", a.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(a.Password), []byte("initial-password")))

	// Seeding again is a no-op.
	require.NoError(t, svc.Seed(ctx))
	var count int64
	require.NoError(t, svc.db.Model(a).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestService_Login(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.Seed(ctx))

	t.Run("Valid Credentials", func(t *testing.T) {
		token, err := svc.Login(ctx, "admin", "initial-password")
		require.NoError(t, err)

		parsed, err := jwt.Parse(token, func(*jwt.Token) (any, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		assert.True(t, parsed.Valid)

		sub, err := parsed.Claims.GetSubject()
		require.NoError(t, err)
		assert.Equal(t, "1", sub)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		_, err := svc.Login(ctx, "admin", "guess")
		assert.ErrorIs(t, err, httperr.ErrUnauthorized)
	})

	t.Run("Unknown Username", func(t *testing.T) {
		_, err := svc.Login(ctx, "root", "initial-password")
		assert.ErrorIs(t, err, httperr.ErrUnauthorized)
	})
}

func TestService_ChangePassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.Seed(ctx))

	t.Run("Missing New Password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, "initial-password", "")
		var verr *httperr.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"newPassword"}, verr.Missing)
	})

	t.Run("Wrong Old Password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, "guess", "next-password")
		assert.ErrorIs(t, err, httperr.ErrUnauthorized)
	})

	t.Run("Rotates Credential", func(t *testing.T) {
		require.NoError(t, svc.ChangePassword(ctx, "initial-password", "next-password"))

		_, err := svc.Login(ctx, "admin", "initial-password")
		assert.ErrorIs(t, err, httperr.ErrUnauthorized)

		_, err = svc.Login(ctx, "admin", "next-password")
		assert.NoError(t, err)
	})
}

// setupMockDB wires a gorm session onto a sqlmock connection so query
// shapes can be asserted without a live server.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestService_Stats(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, testConfig(), zap.NewNop())

	for _, tc := range []struct {
		table string
		count int64
	}{
		{"packages", 12},
		{"hotels", 7},
		{"visas", 3},
		{"flights", 9},
		{"enquiries", 41},
	} {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `" + tc.table + "`")).
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(tc.count))
	}

	out, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 12, out.Packages)
	assert.EqualValues(t, 7, out.Hotels)
	assert.EqualValues(t, 3, out.Visas)
	assert.EqualValues(t, 9, out.Flights)
	assert.EqualValues(t, 41, out.Enquiries)
	assert.NoError(t, mock.ExpectationsWereMet())
}
