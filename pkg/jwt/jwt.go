package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenKind string

const (
	AccessToken  TokenKind = "access"
	RefreshToken TokenKind = "refresh"
)

type Claims struct {
	UserID string    `json:"user_id"`
	Kind   TokenKind `json:"kind"`
	jwt.RegisteredClaims
}

// Service issues and validates the access/refresh token pair. The
// refresh token is additionally persisted on the user record, so a
// valid signature alone is not enough to rotate a session.
type Service struct {
	secretKey  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewService(secretKey string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		secretKey:  []byte(secretKey),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *Service) GenerateToken(userID string, kind TokenKind) (string, error) {
	ttl := s.accessTTL
	if kind == RefreshToken {
		ttl = s.refreshTTL
	}

	claims := &Claims{
		UserID: userID,
		Kind:   kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// GeneratePair issues a fresh access/refresh token pair for the user.
func (s *Service) GeneratePair(userID string) (accessToken, refreshToken string, err error) {
	accessToken, err = s.GenerateToken(userID, AccessToken)
	if err != nil {
		return "", "", err
	}
	refreshToken, err = s.GenerateToken(userID, RefreshToken)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func (s *Service) ValidateToken(tokenString string, kind TokenKind) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Kind != kind {
		return nil, fmt.Errorf("unexpected token kind %q", claims.Kind)
	}

	return claims, nil
}
