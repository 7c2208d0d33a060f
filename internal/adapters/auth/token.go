package auth

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"devevent/internal/domain"
)

// OrganizerRole is the role claim required to manage events.
const OrganizerRole = "organizer"

type organizerClaims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles"`
}

type jwtAuthority struct {
	secret []byte
}

// NewJWTIssuer returns a TokenIssuer that signs organizer JWTs with HS256.
func NewJWTIssuer(secret string) domain.TokenIssuer {
	return &jwtAuthority{secret: []byte(secret)}
}

// NewJWTVerifier returns a TokenVerifier that accepts HS256 JWTs signed with secret and
// carrying the organizer role.
func NewJWTVerifier(secret string) domain.TokenVerifier {
	return &jwtAuthority{secret: []byte(secret)}
}

func (a *jwtAuthority) Issue(subject string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := organizerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Roles: []string{OrganizerRole},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (a *jwtAuthority) Verify(tokenString string) (string, error) {
	claims := &organizerClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	if !slices.Contains(claims.Roles, OrganizerRole) {
		return "", errors.New("token lacks organizer role")
	}
	return claims.Subject, nil
}
