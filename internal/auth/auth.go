package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/mahadevaelectronics/repair-api/internal/models"
)

// ErrInvalidCredentials covers every authentication failure: unknown email,
// wrong password, inactive account. Callers never learn which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

type AdminStore interface {
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
}

type Service struct {
	admins AdminStore
	secret []byte
	ttl    time.Duration
}

func NewService(admins AdminStore, secret string, ttl time.Duration) *Service {
	return &Service{
		admins: admins,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.AdminUser, error) {
	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !admin.IsActive {
		return nil, ErrInvalidCredentials
	}
	if !CheckPassword(password, admin.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

// --------- JWT ---------

func (s *Service) IssueToken(admin *models.AdminUser) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": admin.ID,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken verifies signature and expiry and returns the admin id from the
// subject claim.
func (s *Service) ParseToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidCredentials
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, ErrInvalidCredentials
	}

	return uint(sub), nil
}
