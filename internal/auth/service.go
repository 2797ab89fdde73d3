package auth

import (
	"fmt"
	"time"

	"github.com/evandev76/event-organizer-app/internal/config"
	apperrors "github.com/evandev76/event-organizer-app/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`

	jwt.RegisteredClaims `swaggerignore:"true"`
}

// AuthService issues and validates JWT tokens
type AuthService struct {
	secret []byte
	ttl    time.Duration
}

// NewAuthService creates a new auth service from configuration
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{
		secret: []byte(cfg.JWTSecret),
		ttl:    time.Duration(cfg.JWTTTLHours) * time.Hour,
	}
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(userID uuid.UUID, displayName string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:      userID.String(),
		DisplayName: displayName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   userID.String(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	if _, err := uuid.Parse(claims.UserID); err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
