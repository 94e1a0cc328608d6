package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"stayops/internal/shared/authorization"
	"stayops/internal/shared/biztime"
)

// Claims carries the identity of a logged-in actor. One token shape serves
// all three actor types; Role tells them apart.
type Claims struct {
	ActorID uint                    `json:"actor_id"`
	Email   string                  `json:"email"`
	Name    string                  `json:"name"`
	Role    authorization.ActorRole `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret      []byte
	expiryHours int
}

func NewJWTService(secret string, expiryHours int) *JWTService {
	if expiryHours <= 0 {
		expiryHours = 24
	}
	return &JWTService{
		secret:      []byte(secret),
		expiryHours: expiryHours,
	}
}

// Generate signs a token for the given actor.
func (s *JWTService) Generate(actorID uint, email, name string, role authorization.ActorRole) (string, error) {
	now := biztime.NowUTC()
	exp := now.Add(time.Duration(s.expiryHours) * time.Hour)

	claims := &Claims{
		ActorID: actorID,
		Email:   email,
		Name:    name,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a token string, returning its claims.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// ExpiryHours returns the configured token lifetime in hours.
func (s *JWTService) ExpiryHours() int {
	return s.expiryHours
}
