package service

import (
	"errors"
	"fmt"
	"time"

	"recipehub/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenTTL = 30 * time.Minute

// TokenConfig is built once at startup. Verification never reads the environment.
type TokenConfig struct {
	Secret     []byte
	Issuer     string
	DefaultTTL time.Duration
	// Now is the single clock used to issue and verify; defaults to UTC wall time
	Now func() time.Time
}

func NewTokenConfig(cfg *config.Config) TokenConfig {
	return TokenConfig{
		Secret:     []byte(cfg.JWTSecret),
		Issuer:     cfg.JWTIssuer,
		DefaultTTL: cfg.AccessTokenTTL,
	}
}

// IssuedToken is a signed token with the timestamps written into its claims.
type IssuedToken struct {
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// ExpiresIn is the lifetime measured on the clock that issued the token.
func (t IssuedToken) ExpiresIn() time.Duration {
	return t.ExpiresAt.Sub(t.IssuedAt)
}

type TokenService interface {
	// Issue signs a token for subject. ttl <= 0 selects the configured default.
	Issue(subject string, ttl time.Duration) (IssuedToken, error)
	// Verify returns the subject or one of the ErrToken* errors.
	Verify(token string) (string, error)
}

type tokenService struct {
	secret     []byte
	issuer     string
	defaultTTL time.Duration
	now        func() time.Time
}

func NewTokenService(cfg TokenConfig) TokenService {
	s := &tokenService{
		secret:     cfg.Secret,
		issuer:     cfg.Issuer,
		defaultTTL: cfg.DefaultTTL,
		now:        cfg.Now,
	}
	if s.defaultTTL <= 0 {
		s.defaultTTL = defaultTokenTTL
	}
	if s.now == nil {
		s.now = func() time.Time { return time.Now().UTC() }
	}
	return s
}

func (s *tokenService) Issue(subject string, ttl time.Duration) (IssuedToken, error) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	// JWT timestamps are whole seconds
	issuedAt := s.now().UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(ttl)

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return IssuedToken{}, fmt.Errorf("sign token: %w", err)
	}
	return IssuedToken{Token: signed, IssuedAt: issuedAt, ExpiresAt: expiresAt}, nil
}

func (s *tokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrTokenSignatureInvalid
		default:
			return "", ErrTokenMalformed
		}
	}

	if claims.Subject == "" {
		return "", ErrTokenMissingSubject
	}
	return claims.Subject, nil
}
