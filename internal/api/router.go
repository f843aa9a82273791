package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kursusapp/kursus/internal/api/handler"
	"github.com/kursusapp/kursus/internal/api/middleware"
	appmiddleware "github.com/kursusapp/kursus/internal/middleware"
	"github.com/kursusapp/kursus/internal/services/auth"
	"github.com/kursusapp/kursus/internal/services/course"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	AuthService      *auth.Service
	CourseController *course.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(cfg.AuthService)
	courseHandler := handler.NewCourseHandler(cfg.CourseController)

	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	requestIDMiddleware := appmiddleware.WithRequestID()

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(requestIDMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes (no auth required for registering/logging in)
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	// Protected auth routes
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(authMiddleware)
	authProtected.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", authHandler.GetMe).Methods(http.MethodGet)

	// Course routes (all require auth)
	courses := api.PathPrefix("/courses").Subrouter()
	courses.Use(authMiddleware)
	courses.HandleFunc("", courseHandler.List).Methods(http.MethodGet)
	courses.HandleFunc("", courseHandler.Create).Methods(http.MethodPost)
	courses.HandleFunc("/search", courseHandler.Search).Methods(http.MethodGet)
	courses.HandleFunc("/{id}", courseHandler.Get).Methods(http.MethodGet)
	courses.HandleFunc("/{id}", courseHandler.Update).Methods(http.MethodPut)
	courses.HandleFunc("/{id}", courseHandler.Delete).Methods(http.MethodDelete)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
