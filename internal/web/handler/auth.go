package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/kursusapp/kursus/internal/model"
	"github.com/kursusapp/kursus/internal/services/auth"
	"github.com/kursusapp/kursus/internal/web/middleware"
	"github.com/kursusapp/kursus/internal/web/templates"
)

// AuthHandler handles authentication pages and actions
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginPage renders the login page
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	data := templates.LoginData{
		PageData: templates.PageData{
			Title:       "Masuk",
			CurrentUser: currentUsername(r),
			Flash:       middleware.GetFlash(r.Context()),
		},
	}

	renderPage(w, r, "login", data)
}

// Login handles login form submission
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, r, "Data formulir tidak valid.", "")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	if username == "" || password == "" {
		h.renderLoginError(w, r, "Username dan password wajib diisi.", username)
		return
	}

	sess, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		h.renderLoginError(w, r, "Username atau password salah.", username)
		return
	}

	h.setSessionCookie(w, sess.Token)
	middleware.SetFlash(w, "success", "Anda berhasil login!")
	http.Redirect(w, r, "/menu", http.StatusSeeOther)
}

// RegisterPage renders the registration page
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	data := templates.RegisterData{
		PageData: templates.PageData{
			Title:       "Daftar",
			CurrentUser: currentUsername(r),
			Flash:       middleware.GetFlash(r.Context()),
		},
	}

	renderPage(w, r, "register", data)
}

// Register handles registration form submission
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderRegisterError(w, r, "Data formulir tidak valid.", "")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	if username == "" || password == "" {
		h.renderRegisterError(w, r, "Username dan password wajib diisi.", username)
		return
	}

	if _, err := h.authService.Register(r.Context(), username, password); err != nil {
		if errors.Is(err, model.ErrUsernameExists) {
			h.renderRegisterError(w, r, "Username sudah digunakan.", username)
			return
		}
		h.renderRegisterError(w, r, "Registrasi gagal. Silakan coba lagi.", username)
		return
	}

	middleware.SetFlash(w, "success", "Anda berhasil registrasi! Silahkan masuk.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Logout ends the session and clears the session cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		h.authService.InvalidateSession(r.Context(), cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.SetFlash(w, "danger", "Anda berhasil keluar!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.authService.SessionDuration().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) renderLoginError(w http.ResponseWriter, r *http.Request, message, username string) {
	data := templates.LoginData{
		PageData: templates.PageData{
			Title: "Masuk",
			Flash: &templates.FlashMessage{Type: "danger", Message: message},
		},
		Username: username,
	}

	renderPage(w, r, "login", data)
}

func (h *AuthHandler) renderRegisterError(w http.ResponseWriter, r *http.Request, message, username string) {
	data := templates.RegisterData{
		PageData: templates.PageData{
			Title: "Daftar",
			Flash: &templates.FlashMessage{Type: "danger", Message: message},
		},
		Username: username,
	}

	renderPage(w, r, "register", data)
}
