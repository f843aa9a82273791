package web_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/kursusapp/kursus/internal/factory"
	"github.com/kursusapp/kursus/internal/testutil"
	"github.com/kursusapp/kursus/internal/web"
)

// webTestServer provides a test server for web interface testing
type webTestServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.App
	cookies *cookieJar
}

// newWebTestServer creates a new test server with all dependencies wired
func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()

	return newWebTestServerWith(t, factory.NewTestApp())
}

// newWebTestServerWith builds a test server around a pre-assembled app,
// for tests that substitute their own storage backend.
func newWebTestServerWith(t *testing.T, app *factory.App) *webTestServer {
	t.Helper()

	router := web.NewRouter(web.RouterConfig{
		Logger:           testutil.NopLogger(),
		AuthService:      app.AuthService,
		CourseController: app.CourseController,
	})

	return &webTestServer{
		t:       t,
		handler: router,
		app:     app,
		cookies: newCookieJar(),
	}
}

// request makes an HTTP request and returns the response
func (ts *webTestServer) request(method, path string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	// Add cookies from jar
	ts.cookies.addTo(req)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	// Extract Set-Cookie headers into jar
	ts.cookies.extract(rr)

	return rr
}

// get makes a GET request
func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	return ts.request(http.MethodGet, path, nil)
}

// post makes a POST request with form data
func (ts *webTestServer) post(path string, form url.Values) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, path, form)
}

// parseHTML parses the response body as HTML
func parseHTML(r io.Reader) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		panic(err)
	}
	return doc
}

// cookieJar maintains cookies across requests (like a browser would)
type cookieJar struct {
	cookies map[string]*http.Cookie
}

func newCookieJar() *cookieJar {
	return &cookieJar{
		cookies: make(map[string]*http.Cookie),
	}
}

// addTo adds all cookies to the request
func (j *cookieJar) addTo(req *http.Request) {
	for _, cookie := range j.cookies {
		req.AddCookie(cookie)
	}
}

// extract extracts Set-Cookie headers from response
func (j *cookieJar) extract(rr *httptest.ResponseRecorder) {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.MaxAge < 0 {
			// Cookie being deleted
			delete(j.cookies, cookie.Name)
		} else {
			j.cookies[cookie.Name] = cookie
		}
	}
}

// hasSession returns true if the session cookie is set
func (j *cookieJar) hasSession() bool {
	_, ok := j.cookies["session"]
	return ok
}

// Helper functions for common test operations

// login registers a user through the auth service and logs in via the
// login form, leaving the session cookie in the jar
func (ts *webTestServer) login(username, password string) {
	ts.t.Helper()

	_, err := ts.app.AuthService.Register(context.Background(), username, password)
	require.NoError(ts.t, err)

	form := url.Values{"username": {username}, "password": {password}}
	rr := ts.post("/login", form)
	require.Equal(ts.t, http.StatusSeeOther, rr.Code, "Expected redirect after login")
	require.True(ts.t, ts.cookies.hasSession(), "Expected session cookie to be set")
}

// createCourse inserts a valid course via the form and returns nothing;
// callers look the record up through the controller when they need it
func (ts *webTestServer) createCourse(name string) {
	ts.t.Helper()

	rr := ts.post("/course/new", courseForm(name))
	require.Equal(ts.t, http.StatusSeeOther, rr.Code, "Expected redirect after create")
	require.Equal(ts.t, "/course_list", rr.Header().Get("Location"))
}

// courseForm builds a complete valid form submission for the given name
func courseForm(name string) url.Values {
	return url.Values{
		"name":              {name},
		"email":             {"peserta@example.com"},
		"phone_number":      {"81234567890"},
		"registration_date": {"2024-03-01"},
		"gender":            {"Laki - Laki"},
		"subject":           {"Matematika"},
	}
}

// flashText extracts the flash alert text from a rendered page
func flashText(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find(".alert").First().Text())
}
