package auth

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	apperrors "fitness-tracker/internal/errors"
	"fitness-tracker/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "fitness-tracker"

// Sessions issues and validates signed session tokens. Passwords are stored
// in plaintext on the user record, so sign-in compares them directly.
type Sessions struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

func NewSessions(secret string, ttl time.Duration) *Sessions {
	return &Sessions{
		secretKey: []byte(secret),
		ttl:       ttl,
		now:       time.Now,
	}
}

func (s *Sessions) SignIn(user *models.User, password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		slog.Warn("Invalid sign-in attempt", "user", user.Username)
		return "", apperrors.New(apperrors.CodeInvalidCredentials, "invalid username or password")
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   user.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// Validate checks tokenString and returns the username it was issued to.
func (s *Sessions) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))

	if err != nil || !token.Valid {
		return "", apperrors.Wrap(apperrors.CodeInvalidToken, "invalid or expired token", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", apperrors.New(apperrors.CodeInvalidToken, "token has no subject")
	}
	return claims.Subject, nil
}
