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

type SavingsHandler struct {
	savingsService *service.SavingsService
}

func NewSavingsHandler(savingsService *service.SavingsService) *SavingsHandler {
	return &SavingsHandler{savingsService: savingsService}
}

func (h *SavingsHandler) Goals(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	goals, err := h.savingsService.Goals(user.ID)
	if err != nil {
		slog.Error("failed to load savings goals", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to load savings goals")
		return
	}

	writeJSON(w, http.StatusOK, goals)
}

type savingsGoalRequest struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Target     float64 `json:"target"`
	Saved      float64 `json:"saved"`
	TargetDate string  `json:"target_date"`
}

func (h *SavingsHandler) Save(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req savingsGoalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	goal := model.SavingsGoal{
		ID:     req.ID,
		Name:   req.Name,
		Target: req.Target,
		Saved:  req.Saved,
	}

	targetDate, err := parseDate(req.TargetDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid target_date, expected YYYY-MM-DD")
		return
	}
	goal.TargetDate = targetDate

	saved, err := h.savingsService.Save(user.ID, &goal)
	if err != nil {
		var fieldErrs service.FieldErrors
		if errors.As(err, &fieldErrs) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":  "validation failed",
				"fields": fieldErrs,
			})
			return
		}
		slog.Error("failed to save savings goal", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to save savings goal")
		return
	}

	writeJSON(w, http.StatusOK, saved)
}

func (h *SavingsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	err := h.savingsService.Delete(user.ID, goalID)
	if errors.Is(err, repository.ErrSavingsGoalNotFound) {
		writeError(w, http.StatusNotFound, "savings goal not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete savings goal", "error", err, "goal_id", goalID)
		writeError(w, http.StatusInternalServerError, "failed to delete savings goal")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *SavingsHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	columns, rows, err := h.savingsService.ExportRows(user.ID)
	if err != nil {
		slog.Error("failed to export savings goals", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to export savings goals")
		return
	}

	if len(rows) == 0 {
		writeError(w, http.StatusNotFound, "nothing to export")
		return
	}

	filename := fmt.Sprintf("savings-goals-%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := export.CSV(w, columns, rows); err != nil {
		slog.Error("failed to write savings goals csv", "error", err, "user_id", user.ID)
	}
}
