package model

import "time"

// CourseID uniquely identifies a course enrollment record
type CourseID int64

// Gender is the student's gender as captured on the enrollment form
type Gender string

// Gender choices (form values are Indonesian, matching the enrollment form)
const (
	GenderMale   Gender = "Laki - Laki"
	GenderFemale Gender = "Perempuan"
)

// Genders lists the allowed gender values in form order
func Genders() []string {
	return []string{string(GenderMale), string(GenderFemale)}
}

// Subjects lists the allowed subject names in form order
func Subjects() []string {
	return []string{
		"Matematika",
		"Biologi",
		"Kimia",
		"Fisika",
		"Ekonomi",
		"Geografi",
		"Sosiologi",
		"Sejarah",
		"Bahasa Inggris",
	}
}

// ValidGender reports whether g is one of the declared gender choices
func ValidGender(g string) bool {
	for _, v := range Genders() {
		if g == v {
			return true
		}
	}
	return false
}

// ValidSubject reports whether s is one of the declared subject choices
func ValidSubject(s string) bool {
	for _, v := range Subjects() {
		if s == v {
			return true
		}
	}
	return false
}

// Course is an enrollment record for one student-subject pairing.
// Every persisted Course has passed form validation; the store never
// holds a record that failed it.
type Course struct {
	ID               CourseID
	Name             string
	Email            string
	PhoneNumber      int64
	RegistrationDate *time.Time // optional
	Gender           Gender
	Subject          string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
