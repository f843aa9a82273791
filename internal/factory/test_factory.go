package factory

import (
	"time"

	"github.com/kursusapp/kursus/internal/services/auth"
	"github.com/kursusapp/kursus/internal/session"
	"github.com/kursusapp/kursus/internal/storage/memory"
)

// NewTestApp creates an App backed by in-memory stores for testing
func NewTestApp() *App {
	return newWithDependencies(
		memory.New(),
		session.NewMemoryStore(),
		auth.Config{SessionDuration: time.Hour},
	)
}
