package model

const (
	ReminderPriorityHigh   = "high"
	ReminderPriorityMedium = "medium"
	ReminderPriorityLow    = "low"
)

// Reminder is a derived, dismissible notice. Dismissals are device-local and
// never persisted server-side.
type Reminder struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action,omitempty"`
	Priority    string `json:"priority"`
}
