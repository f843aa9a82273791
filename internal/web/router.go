package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	appmiddleware "github.com/kursusapp/kursus/internal/middleware"
	"github.com/kursusapp/kursus/internal/services/auth"
	"github.com/kursusapp/kursus/internal/services/course"
	"github.com/kursusapp/kursus/internal/web/handler"
	"github.com/kursusapp/kursus/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger           *slog.Logger
	AuthService      *auth.Service
	CourseController *course.Controller
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	requestIDMiddleware := appmiddleware.WithRequestID()
	flashMiddleware := middleware.Flash()
	authMiddleware := middleware.Auth(cfg.AuthService)
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.AuthService)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)

	homeHandler := handler.NewHomeHandler()
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	courseHandler := handler.NewCourseHandler(cfg.CourseController)

	// Public routes (optional auth for showing the user in the nav)
	public := r.NewRoute().Subrouter()
	public.Use(flashMiddleware)
	public.Use(optionalAuthMiddleware)
	public.HandleFunc("/", homeHandler.Index).Methods(http.MethodGet)
	public.HandleFunc("/login", authHandler.LoginPage).Methods(http.MethodGet)
	public.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	public.HandleFunc("/register", authHandler.RegisterPage).Methods(http.MethodGet)
	public.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)

	// Protected routes (require auth, redirect to /login otherwise)
	protected := r.NewRoute().Subrouter()
	protected.Use(flashMiddleware)
	protected.Use(authMiddleware)
	protected.HandleFunc("/menu", homeHandler.Menu).Methods(http.MethodGet)
	protected.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodGet)

	protected.HandleFunc("/course_list", courseHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/course_card", courseHandler.Card).Methods(http.MethodGet)
	protected.HandleFunc("/course/new", courseHandler.NewForm).Methods(http.MethodGet)
	protected.HandleFunc("/course/new", courseHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/course/edit/{id}", courseHandler.EditForm).Methods(http.MethodGet)
	protected.HandleFunc("/course/edit/{id}", courseHandler.Edit).Methods(http.MethodPost)
	protected.HandleFunc("/course/delete/{id}", courseHandler.DeleteConfirm).Methods(http.MethodGet)
	protected.HandleFunc("/course/delete/{id}", courseHandler.Delete).Methods(http.MethodPost)
	protected.HandleFunc("/course/detail/{id}", courseHandler.Detail).Methods(http.MethodGet)
	protected.HandleFunc("/search_member", courseHandler.SearchPage).Methods(http.MethodGet)
	protected.HandleFunc("/search_member", courseHandler.Search).Methods(http.MethodPost)

	return r
}
