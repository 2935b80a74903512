package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"glassjoke/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = time.Hour

// Domain errors for auth flows.
var (
	ErrAuthDisabled  = errors.New("operator auth is disabled")
	ErrInvalidSecret = errors.New("invalid operator secret")
	ErrInvalidToken  = errors.New("invalid token")
)

// AuthService guards the API with one shared operator secret. The bcrypt hash
// of the secret lives in config; there is no user store.
type AuthService struct {
	secretHash string
	signingKey []byte
	tokenTTL   time.Duration
	now        func() time.Time
}

func NewAuthService(cfg config.Auth) *AuthService {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &AuthService{
		secretHash: strings.TrimSpace(cfg.SecretHash),
		signingKey: []byte(cfg.SigningKey),
		tokenTTL:   ttl,
		now:        time.Now,
	}
}

// Enabled reports whether a secret hash is configured.
func (s *AuthService) Enabled() bool {
	return s.secretHash != ""
}

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	Operator string `json:"operator"`
}

// IssueToken checks secret and returns a signed JWT naming operator.
func (s *AuthService) IssueToken(operator, secret string) (string, error) {
	if !s.Enabled() {
		return "", ErrAuthDisabled
	}
	operator = strings.TrimSpace(operator)
	if operator == "" {
		return "", errors.New("operator is empty")
	}
	if err := verifySecret(s.secretHash, secret); err != nil {
		return "", ErrInvalidSecret
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   operator,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Operator: operator,
	})
	return token.SignedString(s.signingKey)
}

// ParseToken parses JWT and returns the operator name
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Operator == "" {
		return "", ErrInvalidToken
	}
	return claims.Operator, nil
}

// HashSecret returns the bcrypt hash to put in auth.secret_hash.
func HashSecret(secret string) (string, error) {
	if strings.TrimSpace(secret) == "" {
		return "", errors.New("secret is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}
	return string(hash), nil
}

// helper: verify secret against hash
func verifySecret(hash, secret string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
}
