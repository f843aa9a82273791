package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisStoreSuite struct {
	suite.Suite
	mini  *miniredis.Miniredis
	store *RedisStore
	ctx   context.Context
}

func TestRedisStoreSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.store = NewRedisStoreWithClient(client)
	s.ctx = context.Background()
}

func (s *RedisStoreSuite) TearDownTest() {
	if s.store != nil {
		_ = s.store.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *RedisStoreSuite) session(token string) *Session {
	now := time.Now()
	return &Session{
		Token:     token,
		UserID:    1,
		Username:  "admin",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func (s *RedisStoreSuite) TestSaveAndGet() {
	sess := s.session("sess_abc")

	err := s.store.Save(s.ctx, sess)
	s.Require().NoError(err)

	retrieved, err := s.store.Get(s.ctx, "sess_abc")
	s.Require().NoError(err)
	s.Equal(sess.UserID, retrieved.UserID)
	s.Equal(sess.Username, retrieved.Username)
}

func (s *RedisStoreSuite) TestGetNotFound() {
	_, err := s.store.Get(s.ctx, "sess_missing")
	s.ErrorIs(err, ErrNotFound)
}

func (s *RedisStoreSuite) TestDelete() {
	sess := s.session("sess_abc")
	_ = s.store.Save(s.ctx, sess)

	err := s.store.Delete(s.ctx, "sess_abc")
	s.Require().NoError(err)

	_, err = s.store.Get(s.ctx, "sess_abc")
	s.ErrorIs(err, ErrNotFound)
}

func (s *RedisStoreSuite) TestSaveSetsTTL() {
	sess := s.session("sess_abc")
	_ = s.store.Save(s.ctx, sess)

	ttl := s.mini.TTL(sessionKey("sess_abc"))
	s.True(ttl > 0, "session key should have TTL")
}

func (s *RedisStoreSuite) TestExpiredSessionIsGone() {
	sess := s.session("sess_abc")
	_ = s.store.Save(s.ctx, sess)

	s.mini.FastForward(2 * time.Hour)

	_, err := s.store.Get(s.ctx, "sess_abc")
	s.ErrorIs(err, ErrNotFound)
}
