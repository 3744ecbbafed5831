package service

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mvdcruz/invitation-rsvp/internal/domain"
)

// Role labels what a bearer token is allowed to do.
type Role string

const (
	// RoleGuest identifies an anonymous invitation visitor. Guests may
	// submit RSVPs and nothing else.
	RoleGuest Role = "guest"
	// RoleAdmin identifies a dashboard session. Admins may additionally
	// read, stream, export, and delete records.
	RoleAdmin Role = "admin"
)

// Identity is the verified subject of a bearer token.
type Identity struct {
	UserID string
	Role   Role
}

// sessionClaims is the JWT payload for both token kinds.
type sessionClaims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// AuthService issues and verifies the two token kinds the app knows:
// anonymous guest identities and admin dashboard sessions. Both are signed
// HMAC JWTs; the secret and the admin password never leave the server.
type AuthService struct {
	secret        []byte
	adminPassword string
	ttl           time.Duration
}

// NewAuthService constructs an AuthService.
func NewAuthService(secret, adminPassword string, ttl time.Duration) *AuthService {
	return &AuthService{
		secret:        []byte(secret),
		adminPassword: adminPassword,
		ttl:           ttl,
	}
}

// Anonymous issues a fresh guest identity. This is the single startup
// attempt the invitation page makes; there is no retry and no state kept
// server-side — the token itself is the identity.
func (s *AuthService) Anonymous() (token string, userID string, err error) {
	userID = uuid.NewString()
	token, err = s.sign(userID, RoleGuest)
	if err != nil {
		return "", "", fmt.Errorf("service.AuthService.Anonymous: %w", err)
	}
	return token, userID, nil
}

// AdminLogin exchanges the shared dashboard secret for an admin session
// token. The compare is constant-time; a mismatch yields ErrUnauthorized
// with no hint about which part was wrong.
func (s *AuthService) AdminLogin(password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) != 1 {
		return "", fmt.Errorf("service.AuthService.AdminLogin: %w", domain.ErrUnauthorized)
	}
	token, err := s.sign(uuid.NewString(), RoleAdmin)
	if err != nil {
		return "", fmt.Errorf("service.AuthService.AdminLogin: %w", err)
	}
	return token, nil
}

// Verify parses and validates a bearer token. Any failure — bad signature,
// wrong signing method, expiry — comes back as ErrUnauthorized.
func (s *AuthService) Verify(token string) (Identity, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Identity{}, fmt.Errorf("service.AuthService.Verify: %w", domain.ErrUnauthorized)
	}
	if claims.Role != RoleGuest && claims.Role != RoleAdmin {
		return Identity{}, fmt.Errorf("service.AuthService.Verify: %w", domain.ErrUnauthorized)
	}
	return Identity{UserID: claims.Subject, Role: claims.Role}, nil
}

func (s *AuthService) sign(subject string, role Role) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
