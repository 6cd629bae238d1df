package model

import "time"

// Budget is a nullable singleton: at most one record per user, created lazily
// on first save. All monetary fields are validated non-negative at the edge.
type Budget struct {
	ID     string `db:"id" json:"id"`
	UserID string `db:"user_id" json:"user_id"`

	IncomePrimary float64 `db:"income_primary" json:"income_primary"`
	IncomePartner float64 `db:"income_partner" json:"income_partner"`
	IncomeOther   float64 `db:"income_other" json:"income_other"`

	ExpHousing       float64 `db:"exp_housing" json:"exp_housing"`
	ExpUtilities     float64 `db:"exp_utilities" json:"exp_utilities"`
	ExpGroceries     float64 `db:"exp_groceries" json:"exp_groceries"`
	ExpTransport     float64 `db:"exp_transport" json:"exp_transport"`
	ExpInsurance     float64 `db:"exp_insurance" json:"exp_insurance"`
	ExpHealthcare    float64 `db:"exp_healthcare" json:"exp_healthcare"`
	ExpDebt          float64 `db:"exp_debt" json:"exp_debt"`
	ExpEntertainment float64 `db:"exp_entertainment" json:"exp_entertainment"`
	ExpPersonal      float64 `db:"exp_personal" json:"exp_personal"`
	ExpCharity       float64 `db:"exp_charity" json:"exp_charity"`
	ExpOther         float64 `db:"exp_other" json:"exp_other"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// TotalIncome is the flat sum of the income fields.
func (b *Budget) TotalIncome() float64 {
	return b.IncomePrimary + b.IncomePartner + b.IncomeOther
}

// TotalExpenses is the flat sum of the eleven expense fields.
func (b *Budget) TotalExpenses() float64 {
	return b.ExpHousing + b.ExpUtilities + b.ExpGroceries + b.ExpTransport +
		b.ExpInsurance + b.ExpHealthcare + b.ExpDebt + b.ExpEntertainment +
		b.ExpPersonal + b.ExpCharity + b.ExpOther
}

// Surplus is total income minus total expenses; negative means a deficit.
func (b *Budget) Surplus() float64 {
	return b.TotalIncome() - b.TotalExpenses()
}
