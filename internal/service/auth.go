package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"

	"github.com/aidar/team-dao/internal/domain"
)

// Claims represents JWT claims
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// AuthService handles JWT issuance and validation.
// Identity is asserted by the token holder; there is no user registry.
type AuthService struct {
	jwtSecret string
	jwtExpiry time.Duration
	clock     clockwork.Clock
}

// NewAuthService creates a new AuthService
func NewAuthService(jwtSecret string, jwtExpiry time.Duration, clock clockwork.Clock) *AuthService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &AuthService{
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
		clock:     clock,
	}
}

// Login generates a JWT token for a user
func (s *AuthService) Login(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", domain.ErrUnauthorized
	}
	if err := domain.ValidateIdentity(userID); err != nil {
		return "", err
	}

	now := s.clock.Now()

	// Create claims
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	// Create token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// Sign token
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates a JWT token and returns claims
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	}, jwt.WithTimeFunc(s.clock.Now))

	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" || domain.ValidateIdentity(claims.UserID) != nil {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}
