package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/kursusapp/kursus/internal/model"
	"github.com/kursusapp/kursus/internal/session"
	"github.com/kursusapp/kursus/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
)

// Service handles authentication and session management
type Service struct {
	store    storage.Store
	sessions session.Store

	sessionDuration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// New creates a new auth Service
func New(store storage.Store, sessions session.Store, cfg Config) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		store:           store,
		sessions:        sessions,
		sessionDuration: cfg.SessionDuration,
	}
}

// SessionDuration returns the configured session lifetime.
func (s *Service) SessionDuration() time.Duration {
	return s.sessionDuration
}

// Register creates a staff account. The new user is not logged in;
// the caller sends them to the login page.
func (s *Service) Register(ctx context.Context, username, password string) (*model.User, error) {
	_, err := s.store.GetUserByUsername(ctx, username)
	if err == nil {
		return nil, model.ErrUsernameExists
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	user := &model.User{
		Username:  username,
		Password:  password,
		CreatedAt: time.Now(),
	}

	if err := s.store.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and creates a session
func (s *Service) Login(ctx context.Context, username, password string) (*session.Session, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// TODO: passwords are stored and compared in plaintext, inherited from
	// the system this replaces. Moving to bcrypt needs a migration plan
	// for existing rows.
	if password != user.Password {
		return nil, ErrInvalidCredentials
	}

	return s.createSession(ctx, user)
}

// ValidateSession checks if a session token is valid and returns the session
func (s *Service) ValidateSession(ctx context.Context, token string) (*session.Session, error) {
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}

	if time.Now().After(sess.ExpiresAt) {
		_ = s.sessions.Delete(ctx, token)
		return nil, ErrInvalidSession
	}

	return sess, nil
}

// InvalidateSession removes a session
func (s *Service) InvalidateSession(ctx context.Context, token string) {
	_ = s.sessions.Delete(ctx, token)
}

// GetUser returns the user for a session token
func (s *Service) GetUser(ctx context.Context, token string) (*model.User, error) {
	sess, err := s.ValidateSession(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.store.GetUser(ctx, sess.UserID)
}

// createSession creates a new session for a user
func (s *Service) createSession(ctx context.Context, user *model.User) (*session.Session, error) {
	now := time.Now()

	sess := &session.Session{
		Token:     generateToken(),
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}

	return sess, nil
}

// generateToken generates a random session token
func generateToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return "sess_" + base64.RawURLEncoding.EncodeToString(b)
}
