package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"webmart-io/store/pkg/kv"
	"webmart-io/store/pkg/models"
)

func TestLoginAcceptsWellFormedCredentials(t *testing.T) {
	as := NewAuthService(kv.NewMemory())
	ctx := context.Background()

	user, err := as.Login(ctx, " Maya.Chen@Example.com ", "hunter2hunter2")
	require.NoError(t, err)

	assert.Equal(t, "maya.chen@example.com", user.Email)
	assert.Equal(t, "Maya Chen", user.Name)
	assert.True(t, user.Verified)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2hunter2")))
}

func TestLoginRejectsBadInput(t *testing.T) {
	as := NewAuthService(kv.NewMemory())
	ctx := context.Background()

	_, err := as.Login(ctx, "not-an-email", "hunter2hunter2")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = as.Login(ctx, "maya@example.com", "short")
	assert.ErrorIs(t, err, ErrBadCredentials)

	assert.Nil(t, as.Current(ctx))
}

func TestSignupRequiresName(t *testing.T) {
	as := NewAuthService(kv.NewMemory())
	ctx := context.Background()

	_, err := as.Signup(ctx, " a ", "maya@example.com", "hunter2hunter2")
	assert.ErrorIs(t, err, ErrBadCredentials)

	user, err := as.Signup(ctx, "Maya", "maya@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, "maya@example.com", user.Email)
}

func TestSessionPersistsAcrossServices(t *testing.T) {
	store := kv.NewMemory()
	ctx := context.Background()

	first := NewAuthService(store)
	user, err := first.Login(ctx, "jordan_lee@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, "Jordan Lee", user.Name)

	// A fresh service over the same store sees the session.
	second := NewAuthService(store)
	current := second.Current(ctx)
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)
}

func TestLogoutNotifiesSubscribers(t *testing.T) {
	as := NewAuthService(kv.NewMemory())
	ctx := context.Background()

	var events []*models.User
	as.Subscribe(func(u *models.User) { events = append(events, u) })

	_, err := as.Login(ctx, "maya@example.com", "hunter2hunter2")
	require.NoError(t, err)
	as.Logout(ctx)

	require.Len(t, events, 2)
	assert.NotNil(t, events[0])
	assert.Nil(t, events[1])
	assert.Nil(t, as.Current(ctx))
}
