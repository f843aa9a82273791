package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case AuthResult:
		o.printAuthResult(v)
	case Course:
		o.printCourse(v)
	case CourseList:
		o.printCourseList(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResult is the login response
type AuthResult struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Course response type
type Course struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	PhoneNumber      int64   `json:"phone_number"`
	RegistrationDate *string `json:"registration_date"`
	Gender           string  `json:"gender"`
	Subject          string  `json:"subject"`
}

// CourseList response type
type CourseList struct {
	Courses []Course `json:"courses"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	fmt.Printf("User: %s (#%d)\n", u.Username, u.ID)
	fmt.Printf("Created: %s\n", u.CreatedAt.Format(time.RFC3339))
}

func (o *Output) printAuthResult(a AuthResult) {
	fmt.Printf("Logged in as: %s\n", a.Username)
	fmt.Printf("Token: %s\n", a.Token)
	fmt.Printf("Expires: %s\n", a.ExpiresAt.Format(time.RFC3339))
}

func (o *Output) printCourse(c Course) {
	fmt.Printf("Course #%d\n", c.ID)
	fmt.Printf("  Name:    %s\n", c.Name)
	fmt.Printf("  Email:   %s\n", c.Email)
	fmt.Printf("  Phone:   %d\n", c.PhoneNumber)
	fmt.Printf("  Date:    %s\n", formatDate(c.RegistrationDate))
	fmt.Printf("  Gender:  %s\n", c.Gender)
	fmt.Printf("  Subject: %s\n", c.Subject)
}

func (o *Output) printCourseList(l CourseList) {
	if len(l.Courses) == 0 {
		fmt.Println("No course records found")
		return
	}

	fmt.Printf("%-5s %-25s %-28s %-12s %-15s %s\n", "ID", "NAME", "EMAIL", "DATE", "GENDER", "SUBJECT")
	for _, c := range l.Courses {
		fmt.Printf("%-5d %-25s %-28s %-12s %-15s %s\n",
			c.ID, c.Name, c.Email, formatDate(c.RegistrationDate), c.Gender, c.Subject)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}

func formatDate(d *string) string {
	if d == nil {
		return "-"
	}
	return *d
}
