package handler

import (
	"net/http"

	"github.com/kursusapp/kursus/internal/web/middleware"
	"github.com/kursusapp/kursus/internal/web/templates"
)

// HomeHandler handles the landing and menu pages
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Index renders the landing page
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	data := templates.PageData{
		Title:       "Beranda",
		CurrentUser: currentUsername(r),
		Flash:       middleware.GetFlash(r.Context()),
	}

	renderPage(w, r, "index", data)
}

// Menu renders the main menu
func (h *HomeHandler) Menu(w http.ResponseWriter, r *http.Request) {
	data := templates.PageData{
		Title:       "Menu",
		CurrentUser: currentUsername(r),
		Flash:       middleware.GetFlash(r.Context()),
	}

	renderPage(w, r, "menu", data)
}

func currentUsername(r *http.Request) string {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		return ""
	}
	return sess.Username
}

func renderPage(w http.ResponseWriter, r *http.Request, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Render(w, page, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
