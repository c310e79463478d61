package auth

import (
	"errors"
	"fmt"
	"time"

	"gig-hire/internal/gigerrors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by session tokens
type Claims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Verifier maps a credential to the authenticated actor identifier
type Verifier interface {
	Verify(credential string) (string, error)
}

// JWTAuthority issues and verifies HS256 session tokens
type JWTAuthority struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTAuthority creates an authority signing with secret
func NewJWTAuthority(secret, issuer string, ttl time.Duration) *JWTAuthority {
	return &JWTAuthority{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs a token for actorID valid for the configured TTL
func (a *JWTAuthority) Issue(actorID, name string) (string, error) {
	if actorID == "" {
		return "", fmt.Errorf("issue token: %w - empty actor id", gigerrors.ErrValidation)
	}

	now := a.now()
	claims := Claims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actorID,
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// Verify checks signature, issuer and expiry and returns the token subject
func (a *JWTAuthority) Verify(credential string) (string, error) {
	if credential == "" {
		return "", fmt.Errorf("verify: %w - missing credential", gigerrors.ErrUnauthenticated)
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(credential, claims, func(t *jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(a.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("verify: %w - token expired", gigerrors.ErrUnauthenticated)
		}
		return "", fmt.Errorf("verify: %w - %v", gigerrors.ErrUnauthenticated, err)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("verify: %w - token has no subject", gigerrors.ErrUnauthenticated)
	}
	return claims.Subject, nil
}
