// Package api - Admin authentication.
// A single admin account configured via environment: bcrypt password hash and
// HMAC-signed JWT access tokens. No refresh tokens, no user store.
package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"archcost/internal/config"
	"archcost/internal/errors"
)

// Authenticator issues and verifies admin access tokens
type Authenticator struct {
	cfg config.AdminConfig
}

// NewAuthenticator creates an authenticator from the admin configuration
func NewAuthenticator(cfg config.AdminConfig) *Authenticator {
	return &Authenticator{cfg: cfg}
}

// Configured reports whether admin login is possible. Without a password hash
// and a signing secret the admin endpoints always reject.
func (a *Authenticator) Configured() bool {
	return a.cfg.PasswordHash != "" && a.cfg.JWTSecret != ""
}

// Login verifies credentials and issues a signed access token
func (a *Authenticator) Login(username, password string) (string, int, error) {
	if !a.Configured() {
		return "", 0, errors.Auth("admin authentication is not configured")
	}
	if username != a.cfg.Username {
		return "", 0, errors.Auth("invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.cfg.PasswordHash), []byte(password)); err != nil {
		return "", 0, errors.Auth("invalid username or password")
	}

	ttl := time.Duration(a.cfg.TokenTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 60 * time.Minute
	}

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		Issuer:    "archcost",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.cfg.JWTSecret))
	if err != nil {
		return "", 0, errors.Internal("failed to sign access token", err)
	}
	return token, int(ttl.Seconds()), nil
}

// Verify parses and validates a token, returning its subject
func (a *Authenticator) Verify(tokenString string) (string, error) {
	if !a.Configured() {
		return "", errors.Auth("admin authentication is not configured")
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(a.cfg.JWTSecret), nil
		},
		jwt.WithIssuer("archcost"),
	)
	if err != nil {
		return "", errors.Wrap(errors.TypeAuth, "invalid token", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", errors.Auth("invalid token")
	}
	return claims.Subject, nil
}

// requireAuth wraps a handler with bearer token verification
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			s.writeError(w, "AUTH_ERROR", "missing bearer token", http.StatusUnauthorized)
			return
		}
		if _, err := s.auth.Verify(token); err != nil {
			s.writeError(w, "AUTH_ERROR", "invalid or expired token", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}
