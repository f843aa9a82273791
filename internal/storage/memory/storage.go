package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/kursusapp/kursus/internal/model"
	"github.com/kursusapp/kursus/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	users         map[model.UserID]*model.User
	usernameIndex map[string]model.UserID
	courses       map[model.CourseID]*model.Course

	nextUserID   model.UserID
	nextCourseID model.CourseID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:         make(map[model.UserID]*model.User),
		usernameIndex: make(map[string]model.UserID),
		courses:       make(map[model.CourseID]*model.Course),
		nextUserID:    1,
		nextCourseID:  1,
	}
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.usernameIndex[user.Username]; ok && existing != user.ID {
		return model.ErrUsernameExists
	}

	if user.ID == 0 {
		user.ID = s.nextUserID
		s.nextUserID++
	}

	u := *user
	s.users[u.ID] = &u
	s.usernameIndex[u.Username] = u.ID
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	u := *user
	return &u, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	u := *user
	return &u, nil
}

func (s *Storage) CountUsers(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}

// Course operations

func (s *Storage) CreateCourse(ctx context.Context, course *model.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	course.ID = s.nextCourseID
	s.nextCourseID++

	c := *course
	s.courses[c.ID] = &c
	return nil
}

func (s *Storage) GetCourse(ctx context.Context, id model.CourseID) (*model.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	course, ok := s.courses[id]
	if !ok {
		return nil, model.ErrCourseNotFound
	}
	c := *course
	return &c, nil
}

func (s *Storage) UpdateCourse(ctx context.Context, course *model.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.courses[course.ID]; !ok {
		return model.ErrCourseNotFound
	}
	c := *course
	s.courses[c.ID] = &c
	return nil
}

func (s *Storage) DeleteCourse(ctx context.Context, id model.CourseID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.courses[id]; !ok {
		return model.ErrCourseNotFound
	}
	delete(s.courses, id)
	return nil
}

func (s *Storage) ListCourses(ctx context.Context) ([]*model.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	courses := make([]*model.Course, 0, len(s.courses))
	for _, course := range s.courses {
		c := *course
		courses = append(courses, &c)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (s *Storage) SearchCoursesByName(ctx context.Context, term string) ([]*model.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	needle := strings.ToLower(term)
	matches := make([]*model.Course, 0)
	for _, course := range s.courses {
		if strings.Contains(strings.ToLower(course.Name), needle) {
			c := *course
			matches = append(matches, &c)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}
