package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ecommerce_backend/internal/models"
	"ecommerce_backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTTL   = time.Hour
	bcryptCost = 12
)

// Domain errors for auth flows.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingFields      = errors.New("username, password and email are required")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService registers identities and issues/verifies signed tokens.
// Tokens are stateless: validity is determined purely by signature and
// expiry, so logout is a client-side concern.
type AuthService struct {
	users      repository.Users
	signingKey []byte
}

func NewAuthService(users repository.Users, signingKey string) *AuthService {
	return &AuthService{users: users, signingKey: []byte(signingKey)}
}

// Claims defines the JWT payload; the subject user id travels under "id".
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"id"`
}

// Register hashes the password and creates a new identity.
func (s *AuthService) Register(ctx context.Context, username, password, email string) (models.User, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" {
		return models.User{}, ErrMissingFields
	}
	hash, err := hashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	return s.users.Create(ctx, models.User{
		Username:     username,
		PasswordHash: hash,
		Email:        email,
	})
}

// Login validates credentials and returns the stored identity plus a
// signed token expiring one hour from issuance. No token is issued on a
// credential mismatch.
func (s *AuthService) Login(ctx context.Context, username, password string) (models.User, string, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return models.User{}, "", err
	}
	if u == nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(u.ID)
	if err != nil {
		return models.User{}, "", err
	}
	return *u, token, nil
}

// ParseToken verifies signature and expiry and returns the subject user id.
func (s *AuthService) ParseToken(accessToken string) (int, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}

func (s *AuthService) issueToken(userID int) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return token.SignedString(s.signingKey)
}

func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", ErrMissingFields
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
