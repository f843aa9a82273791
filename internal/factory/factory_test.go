package factory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kursusapp/kursus/internal/factory"
	"github.com/kursusapp/kursus/internal/model"
)

func TestNewDefaultsToMemory(t *testing.T) {
	app, err := factory.New(context.Background(), factory.Config{})
	require.NoError(t, err)
	defer app.Close()

	// Exercise the wired components end to end
	_, err = app.AuthService.Register(context.Background(), "budi", "rahasia")
	require.NoError(t, err)

	sess, err := app.AuthService.Login(context.Background(), "budi", "rahasia")
	require.NoError(t, err)
	assert.Equal(t, "budi", sess.Username)

	c := &model.Course{
		Name:        "Siti Aminah",
		Email:       "siti@example.com",
		PhoneNumber: 81234567890,
		Gender:      model.GenderFemale,
		Subject:     "Matematika",
	}
	require.NoError(t, app.CourseController.Create(context.Background(), c))

	got, err := app.CourseController.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Siti Aminah", got.Name)
}

func TestNewRejectsUnknownBackends(t *testing.T) {
	_, err := factory.New(context.Background(), factory.Config{StorageType: "cassandra"})
	assert.Error(t, err)

	_, err = factory.New(context.Background(), factory.Config{SessionStoreType: "memcached"})
	assert.Error(t, err)
}

func TestNewRedisSessionsRequireConfig(t *testing.T) {
	_, err := factory.New(context.Background(), factory.Config{SessionStoreType: factory.SessionStoreRedis})
	assert.Error(t, err)
}
