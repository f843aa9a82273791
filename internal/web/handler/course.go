package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kursusapp/kursus/internal/form"
	"github.com/kursusapp/kursus/internal/model"
	"github.com/kursusapp/kursus/internal/services/course"
	"github.com/kursusapp/kursus/internal/web/middleware"
	"github.com/kursusapp/kursus/internal/web/templates"
)

// CourseHandler handles the course CRUD and search pages
type CourseHandler struct {
	controller *course.Controller
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(controller *course.Controller) *CourseHandler {
	return &CourseHandler{
		controller: controller,
	}
}

// List renders the course table page
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, "course_list")
}

// Card renders the course card page
func (h *CourseHandler) Card(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, "course_card")
}

func (h *CourseHandler) renderList(w http.ResponseWriter, r *http.Request, page string) {
	courses, err := h.controller.List(r.Context())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := templates.CourseListData{
		PageData: templates.PageData{
			Title:       "Daftar Peserta",
			CurrentUser: currentUsername(r),
			Flash:       middleware.GetFlash(r.Context()),
		},
		Courses: courses,
	}

	renderPage(w, r, page, data)
}

// NewForm renders the empty course creation form
func (h *CourseHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, "Tambah", "/course/new", url.Values{}, nil, middleware.GetFlash(r.Context()))
}

// Create handles course creation form submission
func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	values, errs := form.Validate(form.CourseSchema(), r.PostForm)
	if len(errs) > 0 {
		h.renderForm(w, r, "Tambah", "/course/new", r.PostForm, errs, nil)
		return
	}

	c := form.CourseFromValues(values)
	if err := h.controller.Create(r.Context(), c); err != nil {
		flash := &templates.FlashMessage{Type: "danger", Message: "Data gagal disimpan. Silakan coba lagi."}
		h.renderForm(w, r, "Tambah", "/course/new", r.PostForm, nil, flash)
		return
	}

	middleware.SetFlash(w, "success", "Data berhasil ditambahkan!")
	http.Redirect(w, r, "/course_list", http.StatusSeeOther)
}

// EditForm renders the edit form pre-filled with the stored record
func (h *CourseHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookupCourse(w, r)
	if !ok {
		return
	}

	action := fmt.Sprintf("/course/edit/%d", c.ID)
	h.renderForm(w, r, "Edit", action, form.CourseToValues(c), nil, middleware.GetFlash(r.Context()))
}

// Edit handles course edit form submission
func (h *CourseHandler) Edit(w http.ResponseWriter, r *http.Request) {
	existing, ok := h.lookupCourse(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	action := fmt.Sprintf("/course/edit/%d", existing.ID)

	values, errs := form.Validate(form.CourseSchema(), r.PostForm)
	if len(errs) > 0 {
		h.renderForm(w, r, "Edit", action, r.PostForm, errs, nil)
		return
	}

	c := form.CourseFromValues(values)
	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt

	if err := h.controller.Update(r.Context(), c); err != nil {
		if errors.Is(err, model.ErrCourseNotFound) {
			h.courseMissing(w, r)
			return
		}
		flash := &templates.FlashMessage{Type: "danger", Message: "Data gagal disimpan. Silakan coba lagi."}
		h.renderForm(w, r, "Edit", action, r.PostForm, nil, flash)
		return
	}

	middleware.SetFlash(w, "success", "Data berhasil diedit!")
	http.Redirect(w, r, "/course_list", http.StatusSeeOther)
}

// DeleteConfirm renders the delete confirmation page
func (h *CourseHandler) DeleteConfirm(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookupCourse(w, r)
	if !ok {
		return
	}

	data := templates.CourseDetailData{
		PageData: templates.PageData{
			Title:       "Hapus Peserta",
			CurrentUser: currentUsername(r),
			Flash:       middleware.GetFlash(r.Context()),
		},
		Course: c,
	}

	renderPage(w, r, "delete_confirm", data)
}

// Delete handles the delete confirmation submission
func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := courseID(r)
	if err != nil {
		h.courseMissing(w, r)
		return
	}

	if err := h.controller.Delete(r.Context(), id); err != nil {
		if errors.Is(err, model.ErrCourseNotFound) {
			h.courseMissing(w, r)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	middleware.SetFlash(w, "success", "Data berhasil dihapus!")
	http.Redirect(w, r, "/course_list", http.StatusSeeOther)
}

// Detail renders the detail page for a single record
func (h *CourseHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := courseID(r)
	if err != nil {
		h.detailMissing(w, r)
		return
	}

	c, err := h.controller.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrCourseNotFound) {
			h.detailMissing(w, r)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := templates.CourseDetailData{
		PageData: templates.PageData{
			Title:       "Detail Peserta",
			CurrentUser: currentUsername(r),
			Flash:       middleware.GetFlash(r.Context()),
		},
		Course: c,
	}

	renderPage(w, r, "course_detail", data)
}

// SearchPage renders the empty search page
func (h *CourseHandler) SearchPage(w http.ResponseWriter, r *http.Request) {
	data := templates.SearchData{
		PageData: templates.PageData{
			Title:       "Cari Peserta",
			CurrentUser: currentUsername(r),
			Flash:       middleware.GetFlash(r.Context()),
		},
	}

	renderPage(w, r, "search_member", data)
}

// Search handles search form submission
// A single match goes straight to its detail page
func (h *CourseHandler) Search(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	term := r.FormValue("search_term")

	courses, err := h.controller.Search(r.Context(), term)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if len(courses) == 1 {
		http.Redirect(w, r, fmt.Sprintf("/course/detail/%d", courses[0].ID), http.StatusSeeOther)
		return
	}

	var flash *templates.FlashMessage
	if len(courses) == 0 {
		flash = &templates.FlashMessage{Type: "danger", Message: "Tidak ada hasil yang ditemukan."}
	}

	data := templates.SearchData{
		PageData: templates.PageData{
			Title:       "Cari Peserta",
			CurrentUser: currentUsername(r),
			Flash:       flash,
		},
		Term:     term,
		Searched: true,
		Courses:  courses,
	}

	renderPage(w, r, "search_member", data)
}

func (h *CourseHandler) renderForm(w http.ResponseWriter, r *http.Request, action, actionURL string, values url.Values, errs form.Errors, flash *templates.FlashMessage) {
	data := templates.CourseFormData{
		PageData: templates.PageData{
			Title:       action + " Peserta",
			CurrentUser: currentUsername(r),
			Flash:       flash,
		},
		Action:    action,
		ActionURL: actionURL,
		Values:    values,
		Errors:    errs,
		Genders:   model.Genders(),
		Subjects:  model.Subjects(),
	}

	renderPage(w, r, "course_form", data)
}

// lookupCourse fetches the record named in the URL, redirecting to the
// list with a flash when it does not exist
func (h *CourseHandler) lookupCourse(w http.ResponseWriter, r *http.Request) (*model.Course, bool) {
	id, err := courseID(r)
	if err != nil {
		h.courseMissing(w, r)
		return nil, false
	}

	c, err := h.controller.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrCourseNotFound) {
			h.courseMissing(w, r)
			return nil, false
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil, false
	}

	return c, true
}

func (h *CourseHandler) courseMissing(w http.ResponseWriter, r *http.Request) {
	middleware.SetFlash(w, "danger", "Data tidak ditemukan.")
	http.Redirect(w, r, "/course_list", http.StatusSeeOther)
}

func (h *CourseHandler) detailMissing(w http.ResponseWriter, r *http.Request) {
	middleware.SetFlash(w, "info", "Tidak ada hasil yang ditemukan.")
	http.Redirect(w, r, "/search_member", http.StatusSeeOther)
}

func courseID(r *http.Request) (model.CourseID, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return model.CourseID(id), nil
}
