package model

import "testing"

func TestBudgetTotals(t *testing.T) {
	b := Budget{
		IncomePrimary: 3000,
		IncomePartner: 1500,
		IncomeOther:   200,

		ExpHousing:       1200,
		ExpUtilities:     150,
		ExpGroceries:     400,
		ExpTransport:     180,
		ExpInsurance:     90,
		ExpHealthcare:    60,
		ExpDebt:          250,
		ExpEntertainment: 100,
		ExpPersonal:      120,
		ExpCharity:       50,
		ExpOther:         75,
	}

	if got := b.TotalIncome(); got != 4700 {
		t.Errorf("TotalIncome() = %v, want 4700", got)
	}
	if got := b.TotalExpenses(); got != 2675 {
		t.Errorf("TotalExpenses() = %v, want 2675", got)
	}
	if got := b.Surplus(); got != 2025 {
		t.Errorf("Surplus() = %v, want 2025", got)
	}
}

func TestBudgetZeroValue(t *testing.T) {
	var b Budget
	if b.TotalIncome() != 0 || b.TotalExpenses() != 0 || b.Surplus() != 0 {
		t.Error("zero budget must report zero totals")
	}
}

func TestSavingsGoalProgress(t *testing.T) {
	tests := []struct {
		name   string
		target float64
		saved  float64
		want   int
	}{
		{"zero target", 0, 500, 0},
		{"nothing saved", 1000, 0, 0},
		{"halfway", 1000, 500, 50},
		{"complete", 1000, 1000, 100},
		{"overshoot caps", 1000, 1500, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := SavingsGoal{Target: tt.target, Saved: tt.saved}
			if got := g.Progress(); got != tt.want {
				t.Errorf("Progress() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMahrRemaining(t *testing.T) {
	m := MahrRecord{Amount: 5000, Paid: 1250}
	if got := m.Remaining(); got != 3750 {
		t.Errorf("Remaining() = %v, want 3750", got)
	}
}
