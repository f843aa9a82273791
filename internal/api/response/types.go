package response

import (
	"time"

	"github.com/kursusapp/kursus/internal/model"
	"github.com/kursusapp/kursus/internal/session"
)

const dateFormat = "2006-01-02"

// User is the API representation of a user account
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// UserFromModel converts a model user to its API representation
func UserFromModel(u *model.User) User {
	return User{
		ID:        int64(u.ID),
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

// AuthResponse is returned after a successful login or registration
type AuthResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthResponseFromSession converts a session to its API representation
func AuthResponseFromSession(s *session.Session) AuthResponse {
	return AuthResponse{
		Token:     s.Token,
		Username:  s.Username,
		ExpiresAt: s.ExpiresAt,
	}
}

// Course is the API representation of a course record
type Course struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PhoneNumber      int64     `json:"phone_number"`
	RegistrationDate *string   `json:"registration_date"`
	Gender           string    `json:"gender"`
	Subject          string    `json:"subject"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CourseFromModel converts a model course to its API representation
func CourseFromModel(c *model.Course) Course {
	var regDate *string
	if c.RegistrationDate != nil {
		formatted := c.RegistrationDate.Format(dateFormat)
		regDate = &formatted
	}

	return Course{
		ID:               int64(c.ID),
		Name:             c.Name,
		Email:            c.Email,
		PhoneNumber:      c.PhoneNumber,
		RegistrationDate: regDate,
		Gender:           string(c.Gender),
		Subject:          c.Subject,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// CourseList wraps a list of course records
type CourseList struct {
	Courses []Course `json:"courses"`
}

// CourseListFromModels converts model courses to their API representation
func CourseListFromModels(courses []*model.Course) CourseList {
	out := CourseList{Courses: make([]Course, 0, len(courses))}
	for _, c := range courses {
		out.Courses = append(out.Courses, CourseFromModel(c))
	}
	return out
}
