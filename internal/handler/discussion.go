package handler

import (
	"log/slog"
	"net/http"

	"github.com/mithaqhq/mithaq/internal/ctxkeys"
	"github.com/mithaqhq/mithaq/internal/service"
)

type DiscussionHandler struct {
	discussionService *service.DiscussionService
	dashboardService  *service.DashboardService
}

func NewDiscussionHandler(discussionService *service.DiscussionService, dashboardService *service.DashboardService) *DiscussionHandler {
	return &DiscussionHandler{
		discussionService: discussionService,
		dashboardService:  dashboardService,
	}
}

func (h *DiscussionHandler) Prompts(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	prompts, err := h.discussionService.Prompts(user.ID)
	if err != nil {
		slog.Error("failed to load discussion prompts", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to load discussion prompts")
		return
	}

	writeJSON(w, http.StatusOK, prompts)
}

type answerRequest struct {
	Answer    string `json:"answer"`
	Discussed bool   `json:"discussed"`
}

func (h *DiscussionHandler) Answer(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	promptID := r.PathValue("id")

	var req answerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.discussionService.Answer(user.ID, promptID, req.Answer, req.Discussed); err != nil {
		slog.Error("failed to save answer", "error", err, "prompt_id", promptID)
		writeError(w, http.StatusInternalServerError, "failed to save answer")
		return
	}

	h.dashboardService.Invalidate(user.ID)
	writeJSON(w, http.StatusOK, map[string]bool{"saved": true})
}
