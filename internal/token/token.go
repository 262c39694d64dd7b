// Package token mints and validates the stateless bearer tokens used by
// the API. Tokens are HS256-signed JWTs carrying the account's username
// and role; there is no server-side session store, so a token remains
// valid until its natural expiry.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTTL = time.Hour

// Claims are the identity fields extracted from a verified token.
type Claims struct {
	Username string
	Role     string
}

// Service issues and verifies session tokens. The signing secret is
// immutable after construction.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New builds a Service. The secret is mandatory: an empty value means
// the process is misconfigured and must not start.
func New(secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret is required")
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue returns a signed token for the given account identity.
func (s *Service) Issue(username, role string) (string, error) {
	now := s.now().UTC()
	claims := jwt.MapClaims{
		"sub":  username,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify reports whether tok carries a valid signature and has not
// expired. It is safe on arbitrary input: malformed tokens, wrong
// algorithms, and parse failures all yield false, never a panic.
func (s *Service) Verify(tok string) bool {
	_, err := s.parse(tok)
	return err == nil
}

// Extract returns the identity claims from tok. The auth middleware
// calls Verify first; Extract re-parses so that a forged token can
// never leak claims even if a caller skips that contract.
func (s *Service) Extract(tok string) (Claims, error) {
	claims, err := s.parse(tok)
	if err != nil {
		return Claims{}, err
	}
	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	return Claims{Username: sub, Role: role}, nil
}

func (s *Service) parse(tok string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
