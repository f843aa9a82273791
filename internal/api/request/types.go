package request

// RegisterRequest is the request body for registering a user
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CourseRequest is the request body for creating or updating a course record.
// RegistrationDate is a YYYY-MM-DD string and may be empty.
type CourseRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	PhoneNumber      string `json:"phone_number"`
	RegistrationDate string `json:"registration_date,omitempty"`
	Gender           string `json:"gender"`
	Subject          string `json:"subject"`
}
