package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mithaqhq/mithaq/internal/ctxkeys"
	"github.com/mithaqhq/mithaq/internal/model"
	"github.com/mithaqhq/mithaq/internal/service"
)

type BudgetHandler struct {
	budgetService    *service.BudgetService
	dashboardService *service.DashboardService
}

func NewBudgetHandler(budgetService *service.BudgetService, dashboardService *service.DashboardService) *BudgetHandler {
	return &BudgetHandler{
		budgetService:    budgetService,
		dashboardService: dashboardService,
	}
}

// budgetResponse wraps the record with the derived totals so clients never
// recompute them.
type budgetResponse struct {
	Budget        *model.Budget `json:"budget"`
	TotalIncome   float64       `json:"total_income"`
	TotalExpenses float64       `json:"total_expenses"`
	Surplus       float64       `json:"surplus"`
}

func (h *BudgetHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	budget, err := h.budgetService.Get(user.ID)
	if err != nil {
		slog.Error("failed to load budget", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to load budget")
		return
	}
	if budget == nil {
		writeJSON(w, http.StatusOK, budgetResponse{})
		return
	}

	writeJSON(w, http.StatusOK, budgetResponse{
		Budget:        budget,
		TotalIncome:   budget.TotalIncome(),
		TotalExpenses: budget.TotalExpenses(),
		Surplus:       budget.Surplus(),
	})
}

func (h *BudgetHandler) Save(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var budget model.Budget
	if err := decodeJSON(r, &budget); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.budgetService.Save(user.ID, &budget)
	if err != nil {
		var fieldErrs service.FieldErrors
		if errors.As(err, &fieldErrs) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":  "validation failed",
				"fields": fieldErrs,
			})
			return
		}
		slog.Error("failed to save budget", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to save budget")
		return
	}

	h.dashboardService.Invalidate(user.ID)

	writeJSON(w, http.StatusOK, budgetResponse{
		Budget:        saved,
		TotalIncome:   saved.TotalIncome(),
		TotalExpenses: saved.TotalExpenses(),
		Surplus:       saved.Surplus(),
	})
}
