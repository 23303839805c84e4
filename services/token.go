package services

import (
	"fmt"
	"strings"
	"time"

	"learnify/config"
	"learnify/models"

	"github.com/golang-jwt/jwt/v4"
)

// Identity carries the authenticated subject for downstream handlers.
type Identity struct {
	UserID uint   `json:"userId"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Email  string `json:"email"`
}

// TokenService issues and verifies signed identity tokens. The signing
// key is loaded once at startup and never mutated afterwards.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

// Tokens is the process-wide token service, set once in main.
var Tokens *TokenService

// NewTokenService builds a token service from a signing secret and expiry.
func NewTokenService(secret []byte, expiry time.Duration) *TokenService {
	return &TokenService{secret: secret, expiry: expiry}
}

// InitTokens installs the global token service from application config.
func InitTokens(cfg *config.Config) {
	Tokens = NewTokenService([]byte(cfg.JWTKey), time.Duration(cfg.TokenExpiryHours)*time.Hour)
}

// Issue generates a signed JWT for the user, valid for the configured expiry
func (t *TokenService) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"userId": user.ID,
		"name":   user.Name,
		"role":   user.Role,
		"email":  user.Email,
		"iat":    now.Unix(),
		"exp":    now.Add(t.expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks signature and expiry and decodes the identity. Malformed,
// tampered and expired tokens all collapse to ErrInvalidToken.
func (t *TokenService) Verify(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Check if the token method is valid
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return nil, ErrInvalidToken
	}

	// JWT numeric claims decode as float64
	userID, ok := claims["userId"].(float64)
	if !ok || userID <= 0 {
		return nil, ErrInvalidToken
	}

	identity := &Identity{UserID: uint(userID)}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}
	if role, ok := claims["role"].(string); ok {
		identity.Role = role
	}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}

	return identity, nil
}

// Authenticate maps a raw Authorization header value to an identity.
// The expected shape is "Bearer <token>".
func (t *TokenService) Authenticate(authHeader string) (*Identity, error) {
	if authHeader == "" {
		return nil, ErrMissingCredential
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, ErrMalformedCredential
	}

	tokenString := strings.TrimSpace(authHeader[len("Bearer "):])
	if tokenString == "" {
		return nil, ErrMalformedCredential
	}

	return t.Verify(tokenString)
}
