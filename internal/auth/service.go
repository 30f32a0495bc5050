package auth

import (
	"fmt"
	"time"

	"device-checkout-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "device-checkout-backend"

// AuthClaims represents JWT token claims. Tokens are issued by the identity provider;
// this service only verifies them.
type AuthClaims struct {
	UserID               string `json:"user_id" example:"6f1c2a7e-8d3b-4c55-9a0e-2b7f4e1d9c10"`
	Role                 string `json:"role" example:"manager"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// Identity is the resolved caller of a request
type Identity struct {
	UserID uuid.UUID
	Role   models.UserRole
}

// TokenService signs and verifies HS256 bearer tokens
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a token service using secret
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: 12 * time.Hour, now: time.Now}
}

// GenerateJWT creates a token for identity. Used by the seed script to hand out development tokens.
func (s *TokenService) GenerateJWT(identity Identity) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID: identity.UserID.String(),
		Role:   string(identity.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   identity.UserID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates a token and resolves the identity it carries
func (s *TokenService) ValidateJWT(tokenString string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user_id claim: %w", err)
	}
	role := models.UserRole(claims.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role claim %q", claims.Role)
	}
	return &Identity{UserID: userID, Role: role}, nil
}
