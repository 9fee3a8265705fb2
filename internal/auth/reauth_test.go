package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsers map[string]entities.User

func (s stubUsers) GetUser(_ context.Context, username string) (entities.User, error) {
	u, ok := s[username]
	if !ok {
		return entities.User{}, entities.ErrUserNotFound
	}
	return u, nil
}

func newTestReauthenticator(t *testing.T) *Reauthenticator {
	hash, err := HashPassword("secret-pass")
	require.NoError(t, err)

	users := stubUsers{"alice": {Username: "alice", PasswordHash: hash}}
	return NewReauthenticator(users, "test-signing-key", time.Minute)
}

func TestReauthenticator_IssueToken(t *testing.T) {
	a := newTestReauthenticator(t)

	testCases := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "ok", username: "alice", password: "secret-pass"},
		{name: "wrong password", username: "alice", password: "nope", wantErr: ErrInvalidCredentials},
		{name: "unknown user", username: "bob", password: "secret-pass", wantErr: ErrInvalidCredentials},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := a.IssueToken(context.Background(), tc.username, tc.password)
			if tc.wantErr != nil {
				var authErr *entities.AuthenticationError
				require.True(t, errors.As(err, &authErr))
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, token.Value)
			assert.True(t, token.ExpiresAt.After(time.Now()))
		})
	}
}

func TestReauthenticator_Reauthenticate(t *testing.T) {
	a := newTestReauthenticator(t)

	token, err := a.IssueToken(context.Background(), "alice", "secret-pass")
	require.NoError(t, err)

	expired := newTestReauthenticator(t)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expiredToken, err := expired.IssueToken(context.Background(), "alice", "secret-pass")
	require.NoError(t, err)

	other := NewReauthenticator(stubUsers{}, "other-key", time.Minute)

	testCases := []struct {
		name     string
		verifier *Reauthenticator
		username string
		proof    string
		wantErr  error
	}{
		{name: "ok", verifier: a, username: "alice", proof: token.Value},
		{name: "empty proof", verifier: a, username: "alice", proof: "", wantErr: ErrInvalidToken},
		{name: "garbage", verifier: a, username: "alice", proof: "not-a-token", wantErr: ErrInvalidToken},
		{name: "other user", verifier: a, username: "bob", proof: token.Value, wantErr: ErrIdentityMismatch},
		{name: "expired", verifier: a, username: "alice", proof: expiredToken.Value, wantErr: ErrInvalidToken},
		{name: "foreign signature", verifier: other, username: "alice", proof: token.Value, wantErr: ErrInvalidToken},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.verifier.Reauthenticate(context.Background(), tc.username, tc.proof)
			if tc.wantErr != nil {
				var authErr *entities.AuthenticationError
				require.True(t, errors.As(err, &authErr))
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
