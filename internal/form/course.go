package form

import (
	"net/url"
	"strconv"

	"github.com/kursusapp/kursus/internal/model"
)

// CourseSchema returns the enrollment form schema. Field order matches
// the rendered form.
func CourseSchema() Schema {
	return Schema{Fields: []Field{
		{Name: "name", Label: "Nama Lengkap", Kind: Text, Required: true},
		{Name: "email", Label: "Email", Kind: Email, Required: true},
		{Name: "phone_number", Label: "Nomor HP", Kind: Int, Required: true},
		{Name: "registration_date", Label: "Tanggal Masuk", Kind: Date},
		{Name: "gender", Label: "Jenis Kelamin", Kind: Choice, Required: true, Choices: model.Genders()},
		{Name: "subject", Label: "Mata Pelajaran", Kind: Choice, Required: true, Choices: model.Subjects()},
	}}
}

// CourseFromValues builds a Course from a validated submission
func CourseFromValues(v Values) *model.Course {
	return &model.Course{
		Name:             v.Str("name"),
		Email:            v.Str("email"),
		PhoneNumber:      v.Int("phone_number"),
		RegistrationDate: v.Date("registration_date"),
		Gender:           model.Gender(v.Str("gender")),
		Subject:          v.Str("subject"),
	}
}

// CourseToValues converts a stored Course back to form input values,
// used to pre-fill the edit form.
func CourseToValues(c *model.Course) url.Values {
	v := url.Values{}
	v.Set("name", c.Name)
	v.Set("email", c.Email)
	v.Set("phone_number", strconv.FormatInt(c.PhoneNumber, 10))
	if c.RegistrationDate != nil {
		v.Set("registration_date", c.RegistrationDate.Format(DateFormat))
	}
	v.Set("gender", string(c.Gender))
	v.Set("subject", c.Subject)
	return v
}
