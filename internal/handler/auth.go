package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	appI18n "github.com/chinmaypg001-sys/TechWave/internal/i18n"
	"github.com/chinmaypg001-sys/TechWave/internal/model"
)

const minPasswordLength = 6

type signupRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	EducationLevel string `json:"education_level"`
	SubLevel       string `json:"sub_level"`
	Board          string `json:"board"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userPayload is the user representation returned to clients. The
// password hash never leaves the server.
type userPayload struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	EducationLevel string    `json:"education_level"`
	SubLevel       string    `json:"sub_level"`
	Board          string    `json:"board"`
	CreatedAt      time.Time `json:"created_at"`
}

func toUserPayload(u *model.User) userPayload {
	return userPayload{
		ID:             u.ID,
		Email:          u.Email,
		EducationLevel: u.EducationLevel,
		SubLevel:       u.SubLevel,
		Board:          u.Board,
		CreatedAt:      u.CreatedAt,
	}
}

// requireAuth is middleware that checks for a valid bearer token.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			respondError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		authSess, err := h.store.GetAuthSession(token)
		if err != nil {
			slog.Error("failed to get auth session", "error", err)
			respondError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		if authSess == nil {
			respondError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		user, err := h.store.GetUserByID(authSess.UserID)
		if err != nil || user == nil || !user.Active {
			respondError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := model.ContextWithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) <= len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return ""
	}
	return auth[len(prefix):]
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		respondError(w, http.StatusBadRequest, "valid email required")
		return
	}
	if len(req.Password) < minPasswordLength {
		respondError(w, http.StatusBadRequest, "password too short")
		return
	}
	if !model.ValidGradeLevel(req.EducationLevel) {
		respondError(w, http.StatusBadRequest, "unknown education level")
		return
	}
	if req.Board != "" && !model.ValidBoard(req.Board) {
		respondError(w, http.StatusBadRequest, "unknown board")
		return
	}

	existing, err := h.store.GetUserByEmail(req.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if existing != nil {
		respondError(w, http.StatusBadRequest, appI18n.T(r.Context(), "EmailRegistered"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	id, err := h.store.CreateUser(model.User{
		Email:          req.Email,
		PasswordHash:   string(hash),
		EducationLevel: req.EducationLevel,
		SubLevel:       req.SubLevel,
		Board:          req.Board,
		Active:         true,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	user, err := h.store.GetUserByID(id)
	if err != nil || user == nil {
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	token, err := h.store.CreateAuthSession(id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"token": token,
		"user":  toUserPayload(user),
	})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	invalid := func() {
		respondError(w, http.StatusUnauthorized, appI18n.T(r.Context(), "InvalidCredentials"))
	}

	user, err := h.store.GetUserByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		slog.Error("failed to get user", "error", err)
		invalid()
		return
	}
	if user == nil || !user.Active {
		invalid()
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		invalid()
		return
	}

	token, err := h.store.CreateAuthSession(user.ID)
	if err != nil {
		slog.Error("failed to create auth session", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  toUserPayload(user),
	})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token := bearerToken(r); token != "" {
		_ = h.store.DeleteAuthSession(token)
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}
