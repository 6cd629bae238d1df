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
	"github.com/mithaqhq/mithaq/internal/service"
)

type MahrHandler struct {
	mahrService *service.MahrService
}

func NewMahrHandler(mahrService *service.MahrService) *MahrHandler {
	return &MahrHandler{mahrService: mahrService}
}

type mahrResponse struct {
	Record    *model.MahrRecord `json:"record"`
	Remaining float64           `json:"remaining"`
}

func (h *MahrHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	record, err := h.mahrService.Get(user.ID)
	if err != nil {
		slog.Error("failed to load mahr record", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to load mahr record")
		return
	}
	if record == nil {
		writeJSON(w, http.StatusOK, mahrResponse{})
		return
	}

	writeJSON(w, http.StatusOK, mahrResponse{Record: record, Remaining: record.Remaining()})
}

func (h *MahrHandler) Save(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var record model.MahrRecord
	if err := decodeJSON(r, &record); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.mahrService.Save(user.ID, &record)
	if err != nil {
		var fieldErrs service.FieldErrors
		if errors.As(err, &fieldErrs) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":  "validation failed",
				"fields": fieldErrs,
			})
			return
		}
		slog.Error("failed to save mahr record", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to save mahr record")
		return
	}

	writeJSON(w, http.StatusOK, mahrResponse{Record: saved, Remaining: saved.Remaining()})
}

func (h *MahrHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	columns, rows, err := h.mahrService.ExportRows(user.ID)
	if err != nil {
		slog.Error("failed to export mahr record", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to export mahr record")
		return
	}

	if len(rows) == 0 {
		writeError(w, http.StatusNotFound, "nothing to export")
		return
	}

	filename := fmt.Sprintf("mahr-%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := export.CSV(w, columns, rows); err != nil {
		slog.Error("failed to write mahr csv", "error", err, "user_id", user.ID)
	}
}
