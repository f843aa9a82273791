package course

import (
	"context"
	"time"

	"github.com/kursusapp/kursus/internal/model"
	"github.com/kursusapp/kursus/internal/storage"
)

// Controller manages course enrollment records
type Controller struct {
	store storage.Store
}

// NewController creates a new course Controller
func NewController(store storage.Store) *Controller {
	return &Controller{store: store}
}

// Create persists a new validated course record
func (c *Controller) Create(ctx context.Context, course *model.Course) error {
	now := time.Now()
	course.CreatedAt = now
	course.UpdatedAt = now
	return c.store.CreateCourse(ctx, course)
}

// Get returns a course by id
func (c *Controller) Get(ctx context.Context, id model.CourseID) (*model.Course, error) {
	return c.store.GetCourse(ctx, id)
}

// Update overwrites an existing course's fields
func (c *Controller) Update(ctx context.Context, course *model.Course) error {
	course.UpdatedAt = time.Now()
	return c.store.UpdateCourse(ctx, course)
}

// Delete permanently removes a course record
func (c *Controller) Delete(ctx context.Context, id model.CourseID) error {
	return c.store.DeleteCourse(ctx, id)
}

// List returns all course records
func (c *Controller) List(ctx context.Context) ([]*model.Course, error) {
	return c.store.ListCourses(ctx)
}

// Search performs a case-insensitive substring match against course names.
// An empty term matches every record.
func (c *Controller) Search(ctx context.Context, term string) ([]*model.Course, error) {
	return c.store.SearchCoursesByName(ctx, term)
}
