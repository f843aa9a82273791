package storage

import (
	"context"

	"github.com/kursusapp/kursus/internal/model"
)

// Store defines the interface for data persistence.
//
// Absence is a normal outcome: lookups return model.ErrUserNotFound /
// model.ErrCourseNotFound rather than a backend error. Mutations are
// atomic per operation; a failed write leaves previously committed
// state unchanged.
type Store interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CountUsers(ctx context.Context) (int, error)

	// Course operations
	CreateCourse(ctx context.Context, course *model.Course) error
	GetCourse(ctx context.Context, id model.CourseID) (*model.Course, error)
	UpdateCourse(ctx context.Context, course *model.Course) error
	DeleteCourse(ctx context.Context, id model.CourseID) error
	ListCourses(ctx context.Context) ([]*model.Course, error)
	// SearchCoursesByName performs a case-insensitive substring match
	// against the course name. No matches is an empty slice, not an error.
	SearchCoursesByName(ctx context.Context, term string) ([]*model.Course, error)
}
