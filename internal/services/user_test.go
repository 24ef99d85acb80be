package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasknest/apiserver/internal/auth"
	"github.com/tasknest/apiserver/internal/store"
	"github.com/tasknest/apiserver/types"
)

func TestRegisterHashesPassword(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemUserRepository()
	svc := NewUserService(repo)

	user, err := svc.Register(ctx, "a@x.com", "Alice", "pw")
	require.NoError(t, err)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "pw", user.PasswordHash)
	assert.True(t, auth.CheckPassword(user.PasswordHash, "pw"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemUserRepository()
	svc := NewUserService(repo)

	_, err := svc.Register(ctx, "a@x.com", "Alice", "pw")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "a@x.com", "Imposter", "other-pw")
	assert.ErrorIs(t, err, store.ErrEmailTaken)

	// The first registration still authenticates.
	user, err := svc.Authenticate(ctx, "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.FullName)
}

func TestAuthenticateCollapsesFailureCauses(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemUserRepository()
	svc := NewUserService(repo)

	_, err := svc.Register(ctx, "a@x.com", "Alice", "pw")
	require.NoError(t, err)

	// Unknown email and wrong password yield the identical error.
	_, unknownErr := svc.Authenticate(ctx, "nobody@x.com", "pw")
	_, wrongPwErr := svc.Authenticate(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPwErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr, wrongPwErr)
}

func TestAuthenticateInactiveUser(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemUserRepository()
	svc := NewUserService(repo)

	hash, err := auth.HashPassword("pw")
	require.NoError(t, err)
	_, err = repo.Create(ctx, types.User{Email: "a@x.com", PasswordHash: hash, IsActive: false})
	require.NoError(t, err)

	// A correct password on an inactive account reports the account
	// state, never a credential failure.
	_, err = svc.Authenticate(ctx, "a@x.com", "pw")
	assert.ErrorIs(t, err, ErrInactiveUser)

	// A wrong password on the same account stays indistinct.
	_, err = svc.Authenticate(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemUserRepository()
	svc := NewUserService(repo)

	user, err := svc.Register(ctx, "a@x.com", "Alice", "pw")
	require.NoError(t, err)

	email := "alice@x.com"
	updated, err := svc.UpdateProfile(ctx, user.ID, types.UserPatch{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", updated.Email)
	assert.Equal(t, "Alice", updated.FullName)

	_, err = svc.UpdateProfile(ctx, 999, types.UserPatch{Email: &email})
	assert.ErrorIs(t, err, store.ErrNotFound)
}
