package model

import "time"

const (
	MahrKindImmediate = "immediate"
	MahrKindDeferred  = "deferred"
	MahrKindSplit     = "split"
)

// MahrRecord tracks the agreed mahr for a user, at most one record per user.
// Paid never exceeds Amount; the validation layer enforces this at the edge.
type MahrRecord struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Amount    float64   `db:"amount" json:"amount"`
	Paid      float64   `db:"paid" json:"paid"`
	Kind      string    `db:"kind" json:"kind"`
	Notes     string    `db:"notes" json:"notes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Remaining is the unpaid portion of the agreed amount.
func (m *MahrRecord) Remaining() float64 {
	return m.Amount - m.Paid
}
