package handler

import (
	"log/slog"
	"net/http"

	"github.com/mithaqhq/mithaq/internal/ctxkeys"
	"github.com/mithaqhq/mithaq/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	dashboard, err := h.dashboardService.Snapshot(r.Context(), user.ID)
	if err != nil {
		slog.Error("failed to build dashboard", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to build dashboard")
		return
	}

	writeJSON(w, http.StatusOK, dashboard)
}
