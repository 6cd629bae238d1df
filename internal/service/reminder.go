package service

import (
	"fmt"

	"github.com/mithaqhq/mithaq/internal/model"
)

// Stable reminder ids so a dismissal keeps suppressing the same notice
// across fetches.
const (
	ReminderWeddingSoon         = "wedding-soon"
	ReminderChecklistIncomplete = "checklist-incomplete"
	ReminderBudgetMissing       = "budget-missing"
	ReminderModulesIncomplete   = "modules-incomplete"
	ReminderGettingStarted      = "getting-started"
	ReminderNoWeddingDate       = "wedding-date-missing"
)

// ReminderService derives actionable notices from a dashboard snapshot. The
// rules run in a fixed order and are independently appendable, not mutually
// exclusive; display order is rule order, with priority carried as data for
// the caller.
type ReminderService struct{}

func NewReminderService() *ReminderService {
	return &ReminderService{}
}

// Reminders generates the notice list and filters out dismissed ids.
func (s *ReminderService) Reminders(dashboard *model.Dashboard, dismissed []string) []model.Reminder {
	reminders := s.generate(dashboard)

	dismissedSet := make(map[string]bool, len(dismissed))
	for _, id := range dismissed {
		dismissedSet[id] = true
	}

	visible := make([]model.Reminder, 0, len(reminders))
	for _, reminder := range reminders {
		if !dismissedSet[reminder.ID] {
			visible = append(visible, reminder)
		}
	}

	return visible
}

func (s *ReminderService) generate(dashboard *model.Dashboard) []model.Reminder {
	var reminders []model.Reminder

	// Rule 1: wedding within 30 days and still in the future
	days := dashboard.DaysUntilWedding
	if days != nil && *days > 0 && *days <= 30 {
		reminders = append(reminders, model.Reminder{
			ID:          ReminderWeddingSoon,
			Title:       fmt.Sprintf("Your wedding is in %d %s", *days, plural(*days, "day", "days")),
			Description: "Review your checklist and wedding budget to make sure everything is on track.",
			Action:      "/app/checklist",
			Priority:    model.ReminderPriorityHigh,
		})
	}

	// Rule 2: incomplete checklist items remain
	remaining := dashboard.TotalItems - dashboard.CompletedItems
	if remaining > 0 {
		reminders = append(reminders, model.Reminder{
			ID:          ReminderChecklistIncomplete,
			Title:       fmt.Sprintf("%d checklist %s left", remaining, plural(remaining, "item", "items")),
			Description: "Keep working through your readiness checklist.",
			Action:      "/app/checklist",
			Priority:    model.ReminderPriorityMedium,
		})
	}

	// Rule 3: no budget record exists yet
	if dashboard.Budget == nil {
		reminders = append(reminders, model.Reminder{
			ID:          ReminderBudgetMissing,
			Title:       "Create your budget",
			Description: "Plan your monthly income and expenses to see your surplus.",
			Action:      "/app/budget",
			Priority:    model.ReminderPriorityMedium,
		})
	}

	// Rule 4: incomplete learning modules remain
	remainingModules := dashboard.TotalModules - dashboard.CompletedModules
	if remainingModules > 0 {
		reminders = append(reminders, model.Reminder{
			ID:          ReminderModulesIncomplete,
			Title:       fmt.Sprintf("%d learning %s to go", remainingModules, plural(remainingModules, "module", "modules")),
			Description: "Continue your marriage preparation lessons.",
			Action:      "/app/learn",
			Priority:    model.ReminderPriorityLow,
		})
	}

	// Rule 5: barely started
	if dashboard.ReadinessScore < 25 {
		reminders = append(reminders, model.Reminder{
			ID:          ReminderGettingStarted,
			Title:       "Getting started",
			Description: "Work through a few checklist items to build momentum.",
			Action:      "/app/checklist",
			Priority:    model.ReminderPriorityLow,
		})
	}

	// Rule 6: no wedding date set at all
	if days == nil {
		reminders = append(reminders, model.Reminder{
			ID:          ReminderNoWeddingDate,
			Title:       "Set your wedding date",
			Description: "Add your wedding date in your profile to unlock the countdown.",
			Action:      "/app/profile",
			Priority:    model.ReminderPriorityLow,
		})
	}

	return reminders
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
