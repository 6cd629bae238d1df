package model

import "time"

const (
	ActivityChecklist  = "checklist"
	ActivityModule     = "module"
	ActivityDiscussion = "discussion"
	ActivityBudget     = "budget"
)

// Activity is a synthetic feed entry derived from recent completions; it is
// never persisted.
type Activity struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Link        string    `json:"link"`
}

// Dashboard is the derived snapshot of a user's preparation progress,
// assembled fresh per fetch and cached briefly.
type Dashboard struct {
	Profile    *Profile            `json:"profile"`
	Categories []ChecklistCategory `json:"categories"`
	Budget     *Budget             `json:"budget"`

	ReadinessScore   int        `json:"readiness_score"`
	TotalItems       int        `json:"total_items"`
	CompletedItems   int        `json:"completed_items"`
	TotalModules     int        `json:"total_modules"`
	CompletedModules int        `json:"completed_modules"`
	TotalIncome      float64    `json:"total_income"`
	TotalExpenses    float64    `json:"total_expenses"`
	Surplus          float64    `json:"surplus"`
	DaysUntilWedding *int       `json:"days_until_wedding"`
	RecentActivity   []Activity `json:"recent_activity"`

	GeneratedAt time.Time `json:"generated_at"`
}
