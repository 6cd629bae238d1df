package validation

import (
	"math"
	"testing"
)

func f(v float64) *float64 { return &v }

func TestAmount(t *testing.T) {
	nan := math.NaN()

	tests := []struct {
		name  string
		value *float64
		opts  AmountOpts
		valid bool
	}{
		{"nil optional", nil, AmountOpts{}, true},
		{"nil required", nil, AmountOpts{Required: true}, false},
		{"nan optional", &nan, AmountOpts{}, true},
		{"nan required", &nan, AmountOpts{Required: true}, false},
		{"zero", f(0), AmountOpts{}, true},
		{"negative", f(-1), AmountOpts{}, false},
		{"below min", f(5), AmountOpts{Min: 10}, false},
		{"at min", f(10), AmountOpts{Min: 10}, true},
		{"at default max", f(1e9), AmountOpts{}, true},
		{"above default max", f(1e9 + 1), AmountOpts{}, false},
		{"above custom max", f(101), AmountOpts{Max: 100}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Amount(tt.value, tt.opts)
			if got.Valid != tt.valid {
				t.Errorf("Amount(%v, %+v).Valid = %v, want %v (message %q)",
					tt.value, tt.opts, got.Valid, tt.valid, got.Message)
			}
			if !got.Valid && got.Message == "" {
				t.Error("invalid result must carry a message")
			}
		})
	}
}

func TestAmountFieldNameInMessage(t *testing.T) {
	got := Amount(nil, AmountOpts{Required: true, Field: "Mahr amount"})
	if got.Valid {
		t.Fatal("expected invalid")
	}
	if got.Message != "Mahr amount is required" {
		t.Errorf("message = %q", got.Message)
	}
}

func TestPaidAmount(t *testing.T) {
	tests := []struct {
		name  string
		paid  float64
		total float64
		valid bool
	}{
		{"zero paid", 0, 100, true},
		{"partial", 50, 100, true},
		{"paid in full", 100, 100, true},
		{"overpaid", 100.01, 100, false},
		{"negative", -1, 100, false},
		{"nan paid", math.NaN(), 100, false},
		{"nan total", 10, math.NaN(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PaidAmount(tt.paid, tt.total, "")
			if got.Valid != tt.valid {
				t.Errorf("PaidAmount(%v, %v).Valid = %v, want %v", tt.paid, tt.total, got.Valid, tt.valid)
			}
		})
	}
}

func TestSpentAmount(t *testing.T) {
	t.Run("within plan", func(t *testing.T) {
		got := SpentAmount(80, 100)
		if !got.Valid || got.Message != "" {
			t.Errorf("got %+v, want valid with no message", got)
		}
	})

	t.Run("negative spent", func(t *testing.T) {
		got := SpentAmount(-5, 100)
		if got.Valid {
			t.Errorf("got %+v, want invalid", got)
		}
	})

	t.Run("overspend warns but stays valid", func(t *testing.T) {
		got := SpentAmount(150, 100)
		if !got.Valid {
			t.Fatalf("got %+v, want valid", got)
		}
		if got.Message != "Spending exceeds the planned amount by 50.00" {
			t.Errorf("message = %q", got.Message)
		}
	})

	t.Run("nan spent", func(t *testing.T) {
		if got := SpentAmount(math.NaN(), 100); got.Valid {
			t.Errorf("got %+v, want invalid", got)
		}
	})
}
