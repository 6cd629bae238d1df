package handler

import (
	"log/slog"
	"net/http"

	"github.com/mithaqhq/mithaq/internal/service"
)

type ResourceHandler struct {
	resourceService *service.ResourceService
}

func NewResourceHandler(resourceService *service.ResourceService) *ResourceHandler {
	return &ResourceHandler{resourceService: resourceService}
}

// List returns the resource library, optionally filtered by ?category=.
func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	resources, err := h.resourceService.Resources(category)
	if err != nil {
		slog.Error("failed to load resources", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load resources")
		return
	}

	writeJSON(w, http.StatusOK, resources)
}
