package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mithaqhq/mithaq/internal/ctxkeys"
	"github.com/mithaqhq/mithaq/internal/export"
	"github.com/mithaqhq/mithaq/internal/model"
	"github.com/mithaqhq/mithaq/internal/repository"
	"github.com/mithaqhq/mithaq/internal/service"
)

type WeddingHandler struct {
	weddingService *service.WeddingService
}

func NewWeddingHandler(weddingService *service.WeddingService) *WeddingHandler {
	return &WeddingHandler{weddingService: weddingService}
}

func (h *WeddingHandler) Summary(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	summary, err := h.weddingService.Summary(user.ID)
	if err != nil {
		slog.Error("failed to load wedding budget", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to load wedding budget")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

type weddingItemResponse struct {
	Item    *model.WeddingItem `json:"item"`
	Warning string             `json:"warning,omitempty"`
}

func (h *WeddingHandler) Save(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var item model.WeddingItem
	if err := decodeJSON(r, &item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, warning, err := h.weddingService.Save(user.ID, &item)
	if err != nil {
		var fieldErrs service.FieldErrors
		if errors.As(err, &fieldErrs) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":  "validation failed",
				"fields": fieldErrs,
			})
			return
		}
		slog.Error("failed to save wedding item", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to save wedding item")
		return
	}

	writeJSON(w, http.StatusOK, weddingItemResponse{Item: saved, Warning: warning})
}

func (h *WeddingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	itemID := r.PathValue("id")

	err := h.weddingService.Delete(user.ID, itemID)
	if errors.Is(err, repository.ErrWeddingItemNotFound) {
		writeError(w, http.StatusNotFound, "wedding item not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete wedding item", "error", err, "item_id", itemID)
		writeError(w, http.StatusInternalServerError, "failed to delete wedding item")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ExportCSV streams the wedding budget as a CSV attachment.
func (h *WeddingHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	columns, rows, err := h.weddingService.ExportRows(user.ID)
	if err != nil {
		slog.Error("failed to export wedding budget", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to export wedding budget")
		return
	}

	if len(rows) == 0 {
		writeError(w, http.StatusNotFound, "nothing to export")
		return
	}

	filename := fmt.Sprintf("wedding-budget-%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := export.CSV(w, columns, rows); err != nil {
		slog.Error("failed to write wedding budget csv", "error", err, "user_id", user.ID)
	}
}
