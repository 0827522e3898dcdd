package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahadevaelectronics/repair-api/internal/models"
	"github.com/mahadevaelectronics/repair-api/internal/repository"
)

type fakeAdminStore struct {
	admins map[string]*models.AdminUser
}

func (s *fakeAdminStore) FindByEmail(_ context.Context, email string) (*models.AdminUser, error) {
	if admin, ok := s.admins[email]; ok {
		return admin, nil
	}
	return nil, repository.ErrNotFound
}

func newTestStore(t *testing.T, email, password string, active bool) *fakeAdminStore {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	return &fakeAdminStore{admins: map[string]*models.AdminUser{
		email: {ID: 1, Email: email, PasswordHash: hash, IsActive: active},
	}}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, CheckPassword("s3cret", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

func TestAuthenticateSuccess(t *testing.T) {
	store := newTestStore(t, "admin@mahadeva.com", "admin123", true)
	svc := NewService(store, "test-secret", 30*time.Minute)

	admin, err := svc.Authenticate(context.Background(), "admin@mahadeva.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, uint(1), admin.ID)
	assert.Equal(t, "admin@mahadeva.com", admin.Email)
}

func TestAuthenticateFailuresAreUniform(t *testing.T) {
	store := newTestStore(t, "admin@mahadeva.com", "admin123", true)
	svc := NewService(store, "test-secret", 30*time.Minute)

	_, wrongPassword := svc.Authenticate(context.Background(), "admin@mahadeva.com", "nope")
	_, unknownEmail := svc.Authenticate(context.Background(), "ghost@mahadeva.com", "admin123")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownEmail)
}

func TestAuthenticateInactiveAdmin(t *testing.T) {
	store := newTestStore(t, "admin@mahadeva.com", "admin123", false)
	svc := NewService(store, "test-secret", 30*time.Minute)

	_, err := svc.Authenticate(context.Background(), "admin@mahadeva.com", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenRoundTrip(t *testing.T) {
	svc := NewService(nil, "test-secret", 30*time.Minute)
	admin := &models.AdminUser{ID: 7, Email: "admin@mahadeva.com"}

	token, err := svc.IssueToken(admin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), subject)
}

func TestTokenExpiry(t *testing.T) {
	svc := NewService(nil, "test-secret", -time.Second)
	admin := &models.AdminUser{ID: 7}

	token, err := svc.IssueToken(admin)
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewService(nil, "secret-a", 30*time.Minute)
	verifier := NewService(nil, "secret-b", 30*time.Minute)

	token, err := issuer.IssueToken(&models.AdminUser{ID: 1})
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.Error(t, err)
}
