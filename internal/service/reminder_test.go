package service

import (
	"testing"

	"github.com/mithaqhq/mithaq/internal/model"
)

func days(n int) *int { return &n }

func reminderIDs(reminders []model.Reminder) []string {
	ids := make([]string, len(reminders))
	for i, r := range reminders {
		ids[i] = r.ID
	}
	return ids
}

func equalIDs(got []model.Reminder, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i, r := range got {
		if r.ID != want[i] {
			return false
		}
	}
	return true
}

func TestReminderRules(t *testing.T) {
	svc := NewReminderService()

	tests := []struct {
		name      string
		dashboard model.Dashboard
		want      []string
	}{
		{
			name: "fresh account fires everything applicable",
			dashboard: model.Dashboard{
				TotalItems:   13,
				TotalModules: 6,
			},
			want: []string{
				ReminderChecklistIncomplete,
				ReminderBudgetMissing,
				ReminderModulesIncomplete,
				ReminderGettingStarted,
				ReminderNoWeddingDate,
			},
		},
		{
			name: "wedding within thirty days",
			dashboard: model.Dashboard{
				DaysUntilWedding: days(14),
				TotalItems:       13,
				CompletedItems:   13,
				TotalModules:     6,
				CompletedModules: 6,
				Budget:           &model.Budget{},
				ReadinessScore:   100,
			},
			want: []string{ReminderWeddingSoon},
		},
		{
			name: "wedding day itself is not upcoming",
			dashboard: model.Dashboard{
				DaysUntilWedding: days(0),
				TotalItems:       13,
				CompletedItems:   13,
				TotalModules:     6,
				CompletedModules: 6,
				Budget:           &model.Budget{},
				ReadinessScore:   100,
			},
			want: []string{},
		},
		{
			name: "wedding beyond thirty days",
			dashboard: model.Dashboard{
				DaysUntilWedding: days(31),
				TotalItems:       13,
				CompletedItems:   13,
				TotalModules:     6,
				CompletedModules: 6,
				Budget:           &model.Budget{},
				ReadinessScore:   100,
			},
			want: []string{},
		},
		{
			name: "everything done except date",
			dashboard: model.Dashboard{
				TotalItems:       13,
				CompletedItems:   13,
				TotalModules:     6,
				CompletedModules: 6,
				Budget:           &model.Budget{},
				ReadinessScore:   100,
			},
			want: []string{ReminderNoWeddingDate},
		},
		{
			name: "low readiness below threshold",
			dashboard: model.Dashboard{
				DaysUntilWedding: days(90),
				TotalItems:       13,
				CompletedItems:   3,
				TotalModules:     6,
				CompletedModules: 6,
				Budget:           &model.Budget{},
				ReadinessScore:   23,
			},
			want: []string{ReminderChecklistIncomplete, ReminderGettingStarted},
		},
		{
			name: "readiness at threshold does not fire",
			dashboard: model.Dashboard{
				DaysUntilWedding: days(90),
				TotalItems:       13,
				CompletedItems:   4,
				TotalModules:     6,
				CompletedModules: 6,
				Budget:           &model.Budget{},
				ReadinessScore:   25,
			},
			want: []string{ReminderChecklistIncomplete},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Reminders(&tt.dashboard, nil)
			if !equalIDs(got, tt.want) {
				t.Errorf("Reminders() = %v, want %v", reminderIDs(got), tt.want)
			}
		})
	}
}

func TestReminderPluralization(t *testing.T) {
	svc := NewReminderService()

	dashboard := model.Dashboard{
		DaysUntilWedding: days(1),
		TotalItems:       13,
		CompletedItems:   12,
		TotalModules:     6,
		CompletedModules: 5,
		Budget:           &model.Budget{},
		ReadinessScore:   92,
	}

	got := svc.Reminders(&dashboard, nil)
	if len(got) != 3 {
		t.Fatalf("got %d reminders, want 3: %v", len(got), reminderIDs(got))
	}

	if got[0].Title != "Your wedding is in 1 day" {
		t.Errorf("wedding title = %q", got[0].Title)
	}
	if got[1].Title != "1 checklist item left" {
		t.Errorf("checklist title = %q", got[1].Title)
	}
	if got[2].Title != "1 learning module to go" {
		t.Errorf("module title = %q", got[2].Title)
	}
}

func TestReminderDismissals(t *testing.T) {
	svc := NewReminderService()

	dashboard := model.Dashboard{
		TotalItems:   13,
		TotalModules: 6,
	}

	t.Run("dismissed ids are filtered", func(t *testing.T) {
		got := svc.Reminders(&dashboard, []string{ReminderBudgetMissing, ReminderNoWeddingDate})
		want := []string{
			ReminderChecklistIncomplete,
			ReminderModulesIncomplete,
			ReminderGettingStarted,
		}
		if !equalIDs(got, want) {
			t.Errorf("Reminders() = %v, want %v", reminderIDs(got), want)
		}
	})

	t.Run("unknown dismissed ids are ignored", func(t *testing.T) {
		got := svc.Reminders(&dashboard, []string{"no-such-reminder"})
		if len(got) != 5 {
			t.Errorf("got %d reminders, want 5", len(got))
		}
	})

	t.Run("order survives filtering", func(t *testing.T) {
		got := svc.Reminders(&dashboard, []string{ReminderChecklistIncomplete})
		if len(got) == 0 || got[0].ID != ReminderBudgetMissing {
			t.Errorf("first reminder = %v, want %s", reminderIDs(got), ReminderBudgetMissing)
		}
	})
}

func TestReminderPriorities(t *testing.T) {
	svc := NewReminderService()

	dashboard := model.Dashboard{
		DaysUntilWedding: days(7),
		TotalItems:       13,
		TotalModules:     6,
	}

	got := svc.Reminders(&dashboard, nil)
	byID := make(map[string]model.Reminder, len(got))
	for _, r := range got {
		byID[r.ID] = r
	}

	if byID[ReminderWeddingSoon].Priority != model.ReminderPriorityHigh {
		t.Errorf("wedding priority = %q", byID[ReminderWeddingSoon].Priority)
	}
	if byID[ReminderChecklistIncomplete].Priority != model.ReminderPriorityMedium {
		t.Errorf("checklist priority = %q", byID[ReminderChecklistIncomplete].Priority)
	}
	if byID[ReminderModulesIncomplete].Priority != model.ReminderPriorityLow {
		t.Errorf("modules priority = %q", byID[ReminderModulesIncomplete].Priority)
	}
}
