package services

import (
	"errors"
	"fmt"
	"hrms-http-service/config"
	"hrms-http-service/models"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// tokenLifetime is how long an issued session token stays valid.
const tokenLifetime = 24 * time.Hour

// InterfaceJWTService defines the JWT service interface
type InterfaceJWTService interface {
	GenerateToken(admin *models.Admin) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	ExtractClaims(tokenString string) (*JWTClaims, error)
}

// JWTService provides JWT related services
type JWTService struct {
	secretKey string
	issuer    string
}

// JWTClaims is the explicit session value carried by every token: the
// subject admin, their role, and the registered expiry/jti fields.
type JWTClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg *config.Config) InterfaceJWTService {
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "hrms-http-service",
	}
}

// GenerateToken issues a signed session token for an admin. The jti claim
// identifies the token in the logout blacklist.
func (s *JWTService) GenerateToken(admin *models.Admin) (string, error) {
	now := time.Now()
	claims := &JWTClaims{
		UserID:   admin.ID,
		Username: admin.Username,
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken validates a JWT token
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// ExtractClaims extracts the session claims from a token
func (s *JWTService) ExtractClaims(tokenString string) (*JWTClaims, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
