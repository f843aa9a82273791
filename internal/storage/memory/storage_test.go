package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/kursusapp/kursus/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) course(name string) *model.Course {
	return &model.Course{
		Name:        name,
		Email:       "siswa@example.com",
		PhoneNumber: 81234567890,
		Gender:      model.GenderFemale,
		Subject:     "Matematika",
	}
}

// User tests

func (s *StorageSuite) TestSaveAndGetUser() {
	user := &model.User{Username: "admin", Password: "rahasia", CreatedAt: time.Now()}

	err := s.storage.SaveUser(s.ctx, user)
	s.Require().NoError(err)
	s.NotZero(user.ID)

	retrieved, err := s.storage.GetUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal("admin", retrieved.Username)
	s.Equal("rahasia", retrieved.Password)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, 42)
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserByUsername() {
	_ = s.storage.SaveUser(s.ctx, &model.User{Username: "admin", Password: "rahasia"})

	user, err := s.storage.GetUserByUsername(s.ctx, "admin")
	s.Require().NoError(err)
	s.Equal("admin", user.Username)

	_, err = s.storage.GetUserByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestDuplicateUsername() {
	err := s.storage.SaveUser(s.ctx, &model.User{Username: "admin", Password: "one"})
	s.Require().NoError(err)

	err = s.storage.SaveUser(s.ctx, &model.User{Username: "admin", Password: "two"})
	s.ErrorIs(err, model.ErrUsernameExists)

	count, err := s.storage.CountUsers(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, count)
}

// Course tests

func (s *StorageSuite) TestCreateAndGetCourse() {
	regDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	course := s.course("Budi Santoso")
	course.RegistrationDate = &regDate

	err := s.storage.CreateCourse(s.ctx, course)
	s.Require().NoError(err)
	s.NotZero(course.ID)

	retrieved, err := s.storage.GetCourse(s.ctx, course.ID)
	s.Require().NoError(err)
	s.Equal(course.Name, retrieved.Name)
	s.Equal(course.Email, retrieved.Email)
	s.Equal(course.PhoneNumber, retrieved.PhoneNumber)
	s.Equal(course.Gender, retrieved.Gender)
	s.Equal(course.Subject, retrieved.Subject)
	s.Require().NotNil(retrieved.RegistrationDate)
	s.True(regDate.Equal(*retrieved.RegistrationDate))
}

func (s *StorageSuite) TestGetCourseNotFound() {
	_, err := s.storage.GetCourse(s.ctx, 99)
	s.ErrorIs(err, model.ErrCourseNotFound)
}

func (s *StorageSuite) TestUpdateCourse() {
	course := s.course("Budi Santoso")
	_ = s.storage.CreateCourse(s.ctx, course)

	course.Subject = "Fisika"
	err := s.storage.UpdateCourse(s.ctx, course)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetCourse(s.ctx, course.ID)
	s.Require().NoError(err)
	s.Equal("Fisika", retrieved.Subject)
}

func (s *StorageSuite) TestUpdateCourseNotFound() {
	course := s.course("Budi Santoso")
	course.ID = 123
	err := s.storage.UpdateCourse(s.ctx, course)
	s.ErrorIs(err, model.ErrCourseNotFound)
}

func (s *StorageSuite) TestDeleteCourse() {
	course := s.course("Budi Santoso")
	_ = s.storage.CreateCourse(s.ctx, course)

	err := s.storage.DeleteCourse(s.ctx, course.ID)
	s.Require().NoError(err)

	_, err = s.storage.GetCourse(s.ctx, course.ID)
	s.ErrorIs(err, model.ErrCourseNotFound)

	courses, err := s.storage.ListCourses(s.ctx)
	s.Require().NoError(err)
	for _, c := range courses {
		s.NotEqual(course.ID, c.ID)
	}
}

func (s *StorageSuite) TestDeleteCourseNotFound() {
	err := s.storage.DeleteCourse(s.ctx, 99)
	s.ErrorIs(err, model.ErrCourseNotFound)
}

func (s *StorageSuite) TestListCourses() {
	_ = s.storage.CreateCourse(s.ctx, s.course("Ali"))
	_ = s.storage.CreateCourse(s.ctx, s.course("Budi"))

	courses, err := s.storage.ListCourses(s.ctx)
	s.Require().NoError(err)
	s.Len(courses, 2)
}

func (s *StorageSuite) TestSearchCoursesByName() {
	_ = s.storage.CreateCourse(s.ctx, s.course("Ali"))
	_ = s.storage.CreateCourse(s.ctx, s.course("Alice"))
	_ = s.storage.CreateCourse(s.ctx, s.course("Bob"))

	matches, err := s.storage.SearchCoursesByName(s.ctx, "Ali")
	s.Require().NoError(err)
	names := make([]string, len(matches))
	for i, c := range matches {
		names[i] = c.Name
	}
	s.ElementsMatch([]string{"Ali", "Alice"}, names)
}

func (s *StorageSuite) TestSearchIsCaseInsensitive() {
	_ = s.storage.CreateCourse(s.ctx, s.course("Ali"))

	matches, err := s.storage.SearchCoursesByName(s.ctx, "aLI")
	s.Require().NoError(err)
	s.Len(matches, 1)
}

func (s *StorageSuite) TestSearchNoMatches() {
	_ = s.storage.CreateCourse(s.ctx, s.course("Ali"))

	matches, err := s.storage.SearchCoursesByName(s.ctx, "zzz")
	s.Require().NoError(err)
	s.Empty(matches)
}

func (s *StorageSuite) TestSearchEmptyTermMatchesAll() {
	_ = s.storage.CreateCourse(s.ctx, s.course("Ali"))
	_ = s.storage.CreateCourse(s.ctx, s.course("Bob"))

	matches, err := s.storage.SearchCoursesByName(s.ctx, "")
	s.Require().NoError(err)
	s.Len(matches, 2)
}
