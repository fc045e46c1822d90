package handler

import (
	"log/slog"
	"net/http"

	"github.com/chinmaypg001-sys/TechWave/internal/model"
)

func (h *Handler) handleProgress(w http.ResponseWriter, r *http.Request) {
	user := model.UserFromContext(r.Context())

	progress, err := h.store.ProgressFor(user.ID)
	if err != nil {
		slog.Error("progress query failed", "user", user.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, progress)
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	user := model.UserFromContext(r.Context())

	dashboard, err := h.store.DashboardFor(user.ID)
	if err != nil {
		slog.Error("dashboard query failed", "user", user.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, dashboard)
}
