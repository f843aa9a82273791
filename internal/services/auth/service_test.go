package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kursusapp/kursus/internal/model"
	"github.com/kursusapp/kursus/internal/session"
	"github.com/kursusapp/kursus/internal/storage/memory"
)

func newService(t *testing.T) (*Service, *memory.Storage) {
	t.Helper()
	store := memory.New()
	return New(store, session.NewMemoryStore(), DefaultConfig()), store
}

func TestRegister(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "admin", "rahasia")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	saved, err := store.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "rahasia", saved.Password)
}

func TestRegisterUsernameTaken(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "admin", "rahasia")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "admin", "lain")
	assert.ErrorIs(t, err, model.ErrUsernameExists)

	count, err := store.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLogin(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "admin", "rahasia")
	require.NoError(t, err)

	sess, err := svc.Login(ctx, "admin", "rahasia")
	require.NoError(t, err)
	assert.Equal(t, "admin", sess.Username)
	assert.NotEmpty(t, sess.Token)

	validated, err := svc.ValidateSession(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.UserID, validated.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "admin", "rahasia")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "admin", "salah")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Login(context.Background(), "nobody", "apa saja")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateSessionUnknownToken(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.ValidateSession(context.Background(), "sess_bogus")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestInvalidateSession(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "admin", "rahasia")
	require.NoError(t, err)
	sess, err := svc.Login(ctx, "admin", "rahasia")
	require.NoError(t, err)

	svc.InvalidateSession(ctx, sess.Token)

	_, err = svc.ValidateSession(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionExpiry(t *testing.T) {
	store := memory.New()
	svc := New(store, session.NewMemoryStore(), Config{SessionDuration: -time.Minute})
	ctx := context.Background()

	_, err := svc.Register(ctx, "admin", "rahasia")
	require.NoError(t, err)
	sess, err := svc.Login(ctx, "admin", "rahasia")
	require.NoError(t, err)

	_, err = svc.ValidateSession(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestGetUser(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "admin", "rahasia")
	require.NoError(t, err)
	sess, err := svc.Login(ctx, "admin", "rahasia")
	require.NoError(t, err)

	user, err := svc.GetUser(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}
