// Package handler implements the JSON API surface: authentication,
// content generation, study sessions, answer evaluation, and analytics.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chinmaypg001-sys/TechWave/internal/model"
	"github.com/chinmaypg001-sys/TechWave/internal/store"
)

// ContentGenerator produces study material and quizzes for a topic.
type ContentGenerator interface {
	GenerateQuiz(ctx context.Context, topic, gradeLevel string, video *model.VideoCandidate) (model.Quiz, error)
	GeneratePassage(ctx context.Context, topic, level, gradeLevel, board, length string) (string, error)
	GenerateFlowchart(ctx context.Context, topic, level, gradeLevel, board, complexity string) (string, error)
}

// VideoSearcher finds the best educational video for a topic.
type VideoSearcher interface {
	FindBestVideo(ctx context.Context, topic, level, board string) (*model.VideoCandidate, error)
}

// Handler holds shared dependencies for HTTP handlers.
type Handler struct {
	store  *store.Store
	llm    ContentGenerator
	search VideoSearcher
}

// New creates a new Handler. search may be nil when no video search API
// key is configured; the video technique then reports unavailable.
func New(s *store.Store, gen ContentGenerator, search VideoSearcher) *Handler {
	return &Handler{store: s, llm: gen, search: search}
}

// Routes registers all HTTP routes.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", h.handleSignup)
		r.Post("/auth/login", h.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)
			r.Delete("/auth/logout", h.handleLogout)
			r.Post("/learning/content", h.handleGenerateContent)
			r.Post("/learning/quiz", h.handleGenerateQuiz)
			r.Post("/learning/sessions", h.handleCreateSession)
			r.Get("/learning/sessions/{sessionID}", h.handleGetSession)
			r.Post("/learning/sessions/{sessionID}/answers", h.handleAnswer)
			r.Post("/learning/sessions/{sessionID}/submit", h.handleSubmit)
			r.Get("/progress", h.handleProgress)
			r.Get("/analytics/dashboard", h.handleDashboard)
		})
	})
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
