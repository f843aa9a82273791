// Package session provides persistence for authenticated sessions,
// keyed by opaque token.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/kursusapp/kursus/internal/model"
)

// ErrNotFound is returned when a token has no live session,
// including sessions that have expired.
var ErrNotFound = errors.New("session not found")

// Session binds a client token to a user id until it expires
type Session struct {
	Token     string       `json:"token"`
	UserID    model.UserID `json:"user_id"`
	Username  string       `json:"username"`
	CreatedAt time.Time    `json:"created_at"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// Store defines the interface for session persistence
type Store interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}
