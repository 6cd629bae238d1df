package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mithaqhq/mithaq/internal/ctxkeys"
	"github.com/mithaqhq/mithaq/internal/export"
	"github.com/mithaqhq/mithaq/internal/model"
	"github.com/mithaqhq/mithaq/internal/service"
)

// ExportHandler produces the full-plan JSON download: everything a user has
// entered, in one file they can keep.
type ExportHandler struct {
	profileService    *service.ProfileService
	checklistService  *service.ChecklistService
	budgetService     *service.BudgetService
	mahrService       *service.MahrService
	weddingService    *service.WeddingService
	savingsService    *service.SavingsService
	discussionService *service.DiscussionService
}

func NewExportHandler(
	profileService *service.ProfileService,
	checklistService *service.ChecklistService,
	budgetService *service.BudgetService,
	mahrService *service.MahrService,
	weddingService *service.WeddingService,
	savingsService *service.SavingsService,
	discussionService *service.DiscussionService,
) *ExportHandler {
	return &ExportHandler{
		profileService:    profileService,
		checklistService:  checklistService,
		budgetService:     budgetService,
		mahrService:       mahrService,
		weddingService:    weddingService,
		savingsService:    savingsService,
		discussionService: discussionService,
	}
}

type planExport struct {
	ExportedAt time.Time                       `json:"exported_at"`
	Profile    *model.Profile                  `json:"profile"`
	Checklist  []service.ChecklistCategoryView `json:"checklist"`
	Budget     *model.Budget                   `json:"budget,omitempty"`
	Mahr       *model.MahrRecord               `json:"mahr,omitempty"`
	Wedding    *service.WeddingSummary         `json:"wedding"`
	Savings    []model.SavingsGoal             `json:"savings"`
	Discussion []service.PromptView            `json:"discussion"`
}

// PlanJSON streams the combined plan as a JSON attachment.
func (h *ExportHandler) PlanJSON(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	plan := planExport{ExportedAt: time.Now().UTC()}

	var err error
	plan.Profile, err = h.profileService.ByUserID(user.ID)
	if err == nil {
		plan.Checklist, err = h.checklistService.Overview(user.ID)
	}
	if err == nil {
		plan.Budget, err = h.budgetService.Get(user.ID)
	}
	if err == nil {
		plan.Mahr, err = h.mahrService.Get(user.ID)
	}
	if err == nil {
		plan.Wedding, err = h.weddingService.Summary(user.ID)
	}
	if err == nil {
		plan.Savings, err = h.savingsService.Goals(user.ID)
	}
	if err == nil {
		plan.Discussion, err = h.discussionService.Prompts(user.ID)
	}
	if err != nil {
		slog.Error("failed to assemble plan export", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to export plan")
		return
	}

	filename := fmt.Sprintf("mithaq-plan-%s.json", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := export.JSON(w, plan); err != nil {
		slog.Error("failed to write plan export", "error", err, "user_id", user.ID)
	}
}
