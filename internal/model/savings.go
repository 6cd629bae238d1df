package model

import "time"

type SavingsGoal struct {
	ID         string     `db:"id" json:"id"`
	UserID     string     `db:"user_id" json:"user_id"`
	Name       string     `db:"name" json:"name"`
	Target     float64    `db:"target" json:"target"`
	Saved      float64    `db:"saved" json:"saved"`
	TargetDate *time.Time `db:"target_date" json:"target_date"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

// Progress returns the saved share of the target as a percentage, capped at
// 100. A zero target reports 0 rather than dividing by zero.
func (g *SavingsGoal) Progress() int {
	if g.Target <= 0 {
		return 0
	}
	pct := int(g.Saved / g.Target * 100)
	if pct > 100 {
		pct = 100
	}
	return pct
}
