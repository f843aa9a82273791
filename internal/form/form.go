// Package form validates submitted form field sets against declarative
// per-entity schemas. Validation is all-or-nothing: any failing field
// rejects the whole submission and the caller re-presents the form.
package form

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the wire format for date fields
const DateFormat = "2006-01-02"

// Kind identifies the coercion rule applied to a field
type Kind int

const (
	Text Kind = iota
	Email
	Int
	Date
	Choice
)

// Field describes one schema entry: its form name, user-facing label,
// coercion rule, and the allowed values for Choice fields.
type Field struct {
	Name     string
	Label    string
	Kind     Kind
	Required bool
	Choices  []string
}

// Schema is the ordered field list for one entity type
type Schema struct {
	Fields []Field
}

// Errors maps field names to validation messages
type Errors map[string]string

// Values holds the coerced field values of a valid submission
type Values map[string]any

// Str returns a text/email/choice field value
func (v Values) Str(name string) string {
	s, _ := v[name].(string)
	return s
}

// Int returns an integer field value
func (v Values) Int(name string) int64 {
	i, _ := v[name].(int64)
	return i
}

// Date returns a date field value, nil when the field was left empty
func (v Values) Date(name string) *time.Time {
	t, _ := v[name].(*time.Time)
	return t
}

// Validate checks input against the schema. It returns the coerced
// values when every field passes, or the per-field error map otherwise
// (never both).
func Validate(schema Schema, input url.Values) (Values, Errors) {
	values := make(Values, len(schema.Fields))
	errs := make(Errors)

	for _, f := range schema.Fields {
		raw := strings.TrimSpace(input.Get(f.Name))

		if raw == "" {
			if f.Required {
				errs[f.Name] = fmt.Sprintf("%s is required", f.Label)
			} else if f.Kind == Date {
				values[f.Name] = (*time.Time)(nil)
			} else {
				values[f.Name] = ""
			}
			continue
		}

		switch f.Kind {
		case Text:
			values[f.Name] = raw
		case Email:
			if !validEmail(raw) {
				errs[f.Name] = fmt.Sprintf("%s must be a valid email address", f.Label)
				continue
			}
			values[f.Name] = raw
		case Int:
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				errs[f.Name] = fmt.Sprintf("%s must be a number", f.Label)
				continue
			}
			values[f.Name] = n
		case Date:
			t, err := time.Parse(DateFormat, raw)
			if err != nil {
				errs[f.Name] = fmt.Sprintf("%s must be a date (YYYY-MM-DD)", f.Label)
				continue
			}
			values[f.Name] = &t
		case Choice:
			if !contains(f.Choices, raw) {
				errs[f.Name] = fmt.Sprintf("%s must be one of the listed choices", f.Label)
				continue
			}
			values[f.Name] = raw
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return values, nil
}

// validEmail checks the basic local@domain shape
func validEmail(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 || at != strings.LastIndex(s, "@") {
		return false
	}
	local, domain := s[:at], s[at+1:]
	if local == "" || domain == "" {
		return false
	}
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

func contains(choices []string, v string) bool {
	for _, c := range choices {
		if c == v {
			return true
		}
	}
	return false
}
