package model

import "time"

type ChecklistCategory struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	SortOrder int    `db:"sort_order" json:"sort_order"`
}

type ChecklistItem struct {
	ID          string `db:"id" json:"id"`
	CategoryID  string `db:"category_id" json:"category_id"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	SortOrder   int    `db:"sort_order" json:"sort_order"`
}

// ChecklistStatus records a completed item for a user, at most one row per
// (user, item) pair.
type ChecklistStatus struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	ItemID      string    `db:"item_id" json:"item_id"`
	CompletedAt time.Time `db:"completed_at" json:"completed_at"`
}
