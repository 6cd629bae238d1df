package model

import "time"

// WeddingItem is a single line in the wedding budget. Spending past the
// planned amount is tracked, not prohibited.
type WeddingItem struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Category  string    `db:"category" json:"category"`
	Name      string    `db:"name" json:"name"`
	Planned   float64   `db:"planned" json:"planned"`
	Spent     float64   `db:"spent" json:"spent"`
	Paid      bool      `db:"paid" json:"paid"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
