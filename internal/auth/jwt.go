// Package auth signs and verifies the bearer tokens that carry a
// principal's user, organization and role.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrEmptyToken is returned for an empty bearer value.
var ErrEmptyToken = errors.New("token is empty")

// Claims is the verified content of an access token. OrganizationID is
// uuid.Nil when the token has no org claim.
type Claims struct {
	UserID         uuid.UUID
	OrganizationID uuid.UUID
	Role           string
	ExpiresAt      time.Time
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Org  string `json:"org,omitempty"`
	Role string `json:"role,omitempty"`
}

// JWTManager issues and verifies HS256 access tokens for one issuer.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	parser *jwt.Parser
}

// NewJWTManager creates a JWTManager. Config validation guarantees secret
// is at least 32 bytes.
func NewJWTManager(secret, issuer string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithLeeway(5*time.Second),
		),
	}
}

// GenerateAccessToken signs a token for userID valid for the configured TTL.
func (m *JWTManager) GenerateAccessToken(userID, orgID uuid.UUID, role string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Org:  orgID.String(),
		Role: role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken verifies signature, issuer and expiry and returns the
// token's claims.
func (m *JWTManager) ValidateAccessToken(raw string) (Claims, error) {
	if raw == "" {
		return Claims{}, ErrEmptyToken
	}

	var tc tokenClaims
	if _, err := m.parser.ParseWithClaims(raw, &tc, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}); err != nil {
		return Claims{}, fmt.Errorf("parse access token: %w", err)
	}

	userID, err := uuid.Parse(tc.Subject)
	if err != nil {
		return Claims{}, fmt.Errorf("token subject is not a uuid: %w", err)
	}

	out := Claims{UserID: userID, Role: tc.Role}
	if tc.ExpiresAt != nil {
		out.ExpiresAt = tc.ExpiresAt.Time
	}
	if tc.Org != "" {
		if out.OrganizationID, err = uuid.Parse(tc.Org); err != nil {
			return Claims{}, fmt.Errorf("token org is not a uuid: %w", err)
		}
	}
	return out, nil
}
