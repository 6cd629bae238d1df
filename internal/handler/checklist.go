package handler

import (
	"log/slog"
	"net/http"

	"github.com/mithaqhq/mithaq/internal/ctxkeys"
	"github.com/mithaqhq/mithaq/internal/service"
)

type ChecklistHandler struct {
	checklistService *service.ChecklistService
	dashboardService *service.DashboardService
}

func NewChecklistHandler(checklistService *service.ChecklistService, dashboardService *service.DashboardService) *ChecklistHandler {
	return &ChecklistHandler{
		checklistService: checklistService,
		dashboardService: dashboardService,
	}
}

func (h *ChecklistHandler) Overview(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	categories, err := h.checklistService.Overview(user.ID)
	if err != nil {
		slog.Error("failed to load checklist", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to load checklist")
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

func (h *ChecklistHandler) Complete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	itemID := r.PathValue("id")

	if err := h.checklistService.Complete(user.ID, itemID); err != nil {
		slog.Error("failed to complete checklist item", "error", err, "item_id", itemID)
		writeError(w, http.StatusInternalServerError, "failed to complete item")
		return
	}

	h.dashboardService.Invalidate(user.ID)
	writeJSON(w, http.StatusOK, map[string]bool{"completed": true})
}

func (h *ChecklistHandler) Uncomplete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	itemID := r.PathValue("id")

	if err := h.checklistService.Uncomplete(user.ID, itemID); err != nil {
		slog.Error("failed to uncomplete checklist item", "error", err, "item_id", itemID)
		writeError(w, http.StatusInternalServerError, "failed to uncomplete item")
		return
	}

	h.dashboardService.Invalidate(user.ID)
	writeJSON(w, http.StatusOK, map[string]bool{"completed": false})
}
