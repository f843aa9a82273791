package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kursusapp/kursus/internal/api/request"
	"github.com/kursusapp/kursus/internal/api/response"
	"github.com/kursusapp/kursus/internal/form"
	"github.com/kursusapp/kursus/internal/model"
	"github.com/kursusapp/kursus/internal/services/course"
)

// CourseHandler handles course record endpoints
type CourseHandler struct {
	controller *course.Controller
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(controller *course.Controller) *CourseHandler {
	return &CourseHandler{
		controller: controller,
	}
}

// List handles GET /api/v1/courses
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.controller.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CourseListFromModels(courses))
}

// Search handles GET /api/v1/courses/search?q=term
func (h *CourseHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")

	courses, err := h.controller.Search(r.Context(), term)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CourseListFromModels(courses))
}

// Get handles GET /api/v1/courses/{id}
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := courseID(r)
	if err != nil {
		WriteError(w, model.ErrCourseNotFound)
		return
	}

	c, err := h.controller.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CourseFromModel(c))
}

// Create handles POST /api/v1/courses
func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	c, err := decodeCourse(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.controller.Create(r.Context(), c); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CourseFromModel(c))
}

// Update handles PUT /api/v1/courses/{id}
func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := courseID(r)
	if err != nil {
		WriteError(w, model.ErrCourseNotFound)
		return
	}

	existing, err := h.controller.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	c, err := decodeCourse(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt

	if err := h.controller.Update(r.Context(), c); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CourseFromModel(c))
}

// Delete handles DELETE /api/v1/courses/{id}
func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := courseID(r)
	if err != nil {
		WriteError(w, model.ErrCourseNotFound)
		return
	}

	if err := h.controller.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// decodeCourse parses the request body and runs it through the same
// schema validation as the web form
func decodeCourse(r *http.Request) (*model.Course, error) {
	var req request.CourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, NewInvalidRequestError("invalid request body")
	}

	input := url.Values{
		"name":              {req.Name},
		"email":             {req.Email},
		"phone_number":      {req.PhoneNumber},
		"registration_date": {req.RegistrationDate},
		"gender":            {req.Gender},
		"subject":           {req.Subject},
	}

	values, errs := form.Validate(form.CourseSchema(), input)
	if len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	return form.CourseFromValues(values), nil
}

func courseID(r *http.Request) (model.CourseID, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return model.CourseID(id), nil
}
