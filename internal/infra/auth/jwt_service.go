// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"crewdesk/config"
	"crewdesk/internal/domain/service"
)

// jwtService is a concrete implementation of the SessionService interface
// using the JWT standard. Both session tokens and pending-workflow tokens
// are HS256-signed with the same secret; they are kept apart by a "type"
// claim that parsing always checks.
type jwtService struct {
	secret     string
	sessionTTL time.Duration
	now        func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.SessionService, error) {
	if cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtService{
		secret:     cfg.Session.Secret,
		sessionTTL: cfg.Session.TTL,
		now:        time.Now,
	}, nil
}

// IssueSession creates a signed session token for the identity.
func (s *jwtService) IssueSession(identity service.Identity) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":   identity.UserID,
		"name":  identity.Name,
		"email": identity.Email,
		"type":  "session",
		"iat":   now.Unix(),
		"exp":   now.Add(s.sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "sign session token")
	}

	return signed, nil
}

// ParseSession verifies a session token and returns its identity.
func (s *jwtService) ParseSession(tokenString string) (*service.Identity, error) {
	claims, err := s.parse(tokenString, "session")
	if err != nil {
		return nil, err
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, errors.New("user id missing from token")
	}
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)

	return &service.Identity{
		UserID: int(sub),
		Name:   name,
		Email:  email,
	}, nil
}

// SessionTTL returns the configured session lifetime.
func (s *jwtService) SessionTTL() time.Duration {
	return s.sessionTTL
}

// IssuePending creates a signed token carrying a payload for the given
// workflow purpose.
func (s *jwtService) IssuePending(purpose, payload string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"type":    "pending",
		"purpose": purpose,
		"payload": payload,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "sign pending token")
	}

	return signed, nil
}

// ParsePending verifies a pending token for the given purpose and returns
// its payload. A token issued for a different purpose is rejected even
// when its signature is valid.
func (s *jwtService) ParsePending(purpose, tokenString string) (string, error) {
	claims, err := s.parse(tokenString, "pending")
	if err != nil {
		return "", err
	}

	if got, _ := claims["purpose"].(string); got != purpose {
		return "", errors.New("token purpose mismatch")
	}
	payload, ok := claims["payload"].(string)
	if !ok {
		return "", errors.New("payload missing from token")
	}

	return payload, nil
}

func (s *jwtService) parse(tokenString, wantType string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims format")
	}
	if got, _ := claims["type"].(string); got != wantType {
		return nil, errors.New("unexpected token type")
	}

	return claims, nil
}
