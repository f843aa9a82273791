// Package templates renders the HTML pages. Handlers hand it a
// view-model (entity or collection, field errors, flash message) and
// stay out of markup concerns.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"time"

	"github.com/kursusapp/kursus/internal/form"
	"github.com/kursusapp/kursus/internal/model"
)

//go:embed *.html
var files embed.FS

var funcs = template.FuncMap{
	// date formats an optional date for display
	"date": func(t *time.Time) string {
		if t == nil {
			return "-"
		}
		return t.Format("2006-01-02")
	},
}

var pageNames = []string{
	"index",
	"menu",
	"login",
	"register",
	"course_list",
	"course_card",
	"course_form",
	"course_detail",
	"delete_confirm",
	"search_member",
}

var pages = mustParse()

func mustParse() map[string]*template.Template {
	parsed := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		parsed[name] = template.Must(
			template.New("layout.html").Funcs(funcs).ParseFS(files, "layout.html", name+".html"),
		)
	}
	return parsed
}

// FlashMessage is a one-shot severity-tagged notice shown on the next page
type FlashMessage struct {
	Type    string // success, danger, info
	Message string
}

// PageData holds the fields every page shares
type PageData struct {
	Title       string
	CurrentUser string // logged-in username, empty when anonymous
	Flash       *FlashMessage
}

// LoginData is the view-model for the login page
type LoginData struct {
	PageData
	Username string // previously entered username on re-show
}

// RegisterData is the view-model for the registration page
type RegisterData struct {
	PageData
	Username string
}

// CourseListData is the view-model for the list and card pages
type CourseListData struct {
	PageData
	Courses []*model.Course
}

// CourseFormData is the view-model for the create/edit form
type CourseFormData struct {
	PageData
	Action    string // "Tambah" or "Edit"
	ActionURL string
	Values    url.Values
	Errors    form.Errors
	Genders   []string
	Subjects  []string
}

// CourseDetailData is the view-model for the detail and delete-confirm pages
type CourseDetailData struct {
	PageData
	Course *model.Course
}

// SearchData is the view-model for the search page
type SearchData struct {
	PageData
	Term     string
	Searched bool
	Courses  []*model.Course
}

// Render writes the named page to w
func Render(w io.Writer, page string, data any) error {
	tmpl, ok := pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	return tmpl.ExecuteTemplate(w, "layout.html", data)
}
