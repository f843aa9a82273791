package web_test

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseCreateAndList(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login("budi", "rahasia")

	ts.createCourse("Siti Aminah")

	rr := ts.get("/course_list")
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	assert.Equal(t, "Data berhasil ditambahkan!", flashText(doc))
	assert.Contains(t, doc.Find("table").Text(), "Siti Aminah")

	// Card view shows the same records
	rr = ts.get("/course_card")
	require.Equal(t, http.StatusOK, rr.Code)
	doc = parseHTML(rr.Body)
	assert.Contains(t, doc.Find(".card").Text(), "Siti Aminah")
}

func TestCourseCreateValidationErrors(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login("budi", "rahasia")

	form := courseForm("Siti Aminah")
	form.Set("phone_number", "bukan angka")
	form.Set("gender", "Lainnya")

	rr := ts.post("/course/new", form)
	require.Equal(t, http.StatusOK, rr.Code, "invalid form re-renders instead of redirecting")

	doc := parseHTML(rr.Body)
	errs := doc.Find(".invalid-feedback")
	assert.Equal(t, 2, errs.Length())

	// Entered values are preserved
	val, _ := doc.Find("input[name=name]").Attr("value")
	assert.Equal(t, "Siti Aminah", val)

	// Nothing was written
	courses, err := ts.app.CourseController.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestCourseCreateOptionalDate(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login("budi", "rahasia")

	form := courseForm("Siti Aminah")
	form.Set("registration_date", "")

	rr := ts.post("/course/new", form)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	courses, err := ts.app.CourseController.List(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Nil(t, courses[0].RegistrationDate)
}

func TestCourseDetail(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login("budi", "rahasia")
	ts.createCourse("Siti Aminah")

	courses, err := ts.app.CourseController.List(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)

	rr := ts.get(fmt.Sprintf("/course/detail/%d", courses[0].ID))
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	assert.Contains(t, doc.Find("table").Text(), "Siti Aminah")
	assert.Contains(t, doc.Find("table").Text(), "Matematika")
}

func TestCourseDetailMissingRedirectsToSearch(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login("budi", "rahasia")

	rr := ts.get("/course/detail/999")
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/search_member", rr.Header().Get("Location"))

	rr = ts.get("/search_member")
	doc := parseHTML(rr.Body)
	assert.Equal(t, "Tidak ada hasil yang ditemukan.", flashText(doc))
}

func TestCourseEdit(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login("budi", "rahasia")
	ts.createCourse("Siti Aminah")

	courses, err := ts.app.CourseController.List(context.Background())
	require.NoError(t, err)
	id := courses[0].ID

	// Form comes pre-filled with the stored record
	rr := ts.get(fmt.Sprintf("/course/edit/%d", id))
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	val, _ := doc.Find("input[name=name]").Attr("value")
	assert.Equal(t, "Siti Aminah", val)

	form := courseForm("Siti Rahayu")
	form.Set("subject", "Biologi")
	rr = ts.post(fmt.Sprintf("/course/edit/%d", id), form)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/course_list", rr.Header().Get("Location"))

	got, err := ts.app.CourseController.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Siti Rahayu", got.Name)
	assert.Equal(t, "Biologi", got.Subject)

	rr = ts.get("/course_list")
	doc = parseHTML(rr.Body)
	assert.Equal(t, "Data berhasil diedit!", flashText(doc))
}

func TestCourseEditValidationKeepsRecord(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login("budi", "rahasia")
	ts.createCourse("Siti Aminah")

	courses, err := ts.app.CourseController.List(context.Background())
	require.NoError(t, err)
	id := courses[0].ID

	form := courseForm("")
	rr := ts.post(fmt.Sprintf("/course/edit/%d", id), form)
	require.Equal(t, http.StatusOK, rr.Code)

	got, err := ts.app.CourseController.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Siti Aminah", got.Name, "record unchanged after failed validation")
}

func TestCourseEditMissingRedirectsToList(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login("budi", "rahasia")

	rr := ts.get("/course/edit/999")
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/course_list", rr.Header().Get("Location"))
}

func TestCourseDeleteFlow(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login("budi", "rahasia")
	ts.createCourse("Siti Aminah")

	courses, err := ts.app.CourseController.List(context.Background())
	require.NoError(t, err)
	id := courses[0].ID

	// GET renders the confirmation page without deleting
	rr := ts.get(fmt.Sprintf("/course/delete/%d", id))
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	assert.Contains(t, doc.Text(), "Siti Aminah")

	_, err = ts.app.CourseController.Get(context.Background(), id)
	require.NoError(t, err, "record still present after confirmation page")

	// POST deletes
	rr = ts.post(fmt.Sprintf("/course/delete/%d", id), url.Values{})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/course_list", rr.Header().Get("Location"))

	courses, err = ts.app.CourseController.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, courses)

	rr = ts.get("/course_list")
	doc = parseHTML(rr.Body)
	assert.Equal(t, "Data berhasil dihapus!", flashText(doc))
}

func TestCourseDeleteMissingRedirectsToList(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login("budi", "rahasia")

	rr := ts.post("/course/delete/999", url.Values{})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/course_list", rr.Header().Get("Location"))
}
