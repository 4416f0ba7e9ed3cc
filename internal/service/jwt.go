package service

import (
	"errors"
	"time"

	"availit-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and validates the bearer tokens handed out at login.
// Validity is solely signature + expiry + username match; there is no
// revocation list.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

func NewTokenService(secret string, expiry time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Claims represents JWT custom claims
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken produces a signed, time-bounded token embedding the
// user's username and role.
func (s *TokenService) GenerateToken(user *models.User) (string, error) {
	claims := Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ExtractUsername decodes and verifies the token, returning the embedded
// username. Any malformed, tampered or expired token yields ErrInvalidToken.
func (s *TokenService) ExtractUsername(tokenString string) (string, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// ValidateToken additionally confirms the token was issued to the candidate
// user.
func (s *TokenService) ValidateToken(tokenString string, user *models.User) bool {
	claims, err := s.parse(tokenString)
	if err != nil {
		return false
	}
	return claims.Subject == user.Username
}

func (s *TokenService) parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
