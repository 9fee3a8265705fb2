// Package auth issues and checks short-lived re-authentication tokens required by sensitive actions.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const reauthAudience = "reauth"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid re-auth token")
	ErrIdentityMismatch   = errors.New("re-auth token issued for another user")
)

type UserGetter interface {
	GetUser(ctx context.Context, username string) (entities.User, error)
}

type Token struct {
	Value     string
	ExpiresAt time.Time
}

type Reauthenticator struct {
	users  UserGetter
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewReauthenticator(users UserGetter, secret string, ttl time.Duration) *Reauthenticator {
	return &Reauthenticator{
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// IssueToken checks the password again and returns a token proving the current identity.
func (a *Reauthenticator) IssueToken(ctx context.Context, username, password string) (Token, error) {
	user, err := a.users.GetUser(ctx, username)
	if errors.Is(err, entities.ErrUserNotFound) {
		return Token{}, &entities.AuthenticationError{Err: ErrInvalidCredentials}
	}
	if err != nil {
		return Token{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Token{}, &entities.AuthenticationError{Err: ErrInvalidCredentials}
	}

	now := a.now()
	expiresAt := now.Add(a.ttl)
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   user.Username,
		Audience:  jwt.ClaimStrings{reauthAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return Token{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return Token{Value: signed, ExpiresAt: expiresAt}, nil
}

// Reauthenticate verifies that proof is a valid, unexpired token issued to username.
func (a *Reauthenticator) Reauthenticate(_ context.Context, username, proof string) error {
	if proof == "" {
		return &entities.AuthenticationError{Err: ErrInvalidToken}
	}

	var claims jwt.RegisteredClaims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(proof, &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	})
	if err != nil {
		return &entities.AuthenticationError{Err: fmt.Errorf("%w: %v", ErrInvalidToken, err)}
	}

	if !claims.VerifyAudience(reauthAudience, true) {
		return &entities.AuthenticationError{Err: ErrInvalidToken}
	}
	if claims.Subject != username {
		return &entities.AuthenticationError{Err: ErrIdentityMismatch}
	}
	return nil
}

// HashPassword is used when seeding operator accounts.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
