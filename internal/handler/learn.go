package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mithaqhq/mithaq/internal/ctxkeys"
	"github.com/mithaqhq/mithaq/internal/service"
)

type LearnHandler struct {
	learnService     *service.LearnService
	dashboardService *service.DashboardService
}

func NewLearnHandler(learnService *service.LearnService, dashboardService *service.DashboardService) *LearnHandler {
	return &LearnHandler{
		learnService:     learnService,
		dashboardService: dashboardService,
	}
}

func (h *LearnHandler) Modules(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	modules, err := h.learnService.Modules(user.ID)
	if err != nil {
		slog.Error("failed to load modules", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to load modules")
		return
	}

	writeJSON(w, http.StatusOK, modules)
}

func (h *LearnHandler) Module(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	slug := r.PathValue("slug")

	module, err := h.learnService.Module(user.ID, slug)
	if errors.Is(err, service.ErrModuleNotFound) {
		writeError(w, http.StatusNotFound, "module not found")
		return
	}
	if err != nil {
		slog.Error("failed to load module", "error", err, "slug", slug)
		writeError(w, http.StatusInternalServerError, "failed to load module")
		return
	}

	writeJSON(w, http.StatusOK, module)
}

func (h *LearnHandler) Complete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	slug := r.PathValue("slug")

	err := h.learnService.Complete(user.ID, slug)
	if errors.Is(err, service.ErrModuleNotFound) {
		writeError(w, http.StatusNotFound, "module not found")
		return
	}
	if err != nil {
		slog.Error("failed to complete module", "error", err, "slug", slug)
		writeError(w, http.StatusInternalServerError, "failed to complete module")
		return
	}

	h.dashboardService.Invalidate(user.ID)
	writeJSON(w, http.StatusOK, map[string]bool{"completed": true})
}

func (h *LearnHandler) Uncomplete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	slug := r.PathValue("slug")

	if err := h.learnService.Uncomplete(user.ID, slug); err != nil {
		slog.Error("failed to uncomplete module", "error", err, "slug", slug)
		writeError(w, http.StatusInternalServerError, "failed to uncomplete module")
		return
	}

	h.dashboardService.Invalidate(user.ID)
	writeJSON(w, http.StatusOK, map[string]bool{"completed": false})
}
