package validation

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Monetary guards are a UX convenience at the edge, not a security boundary:
// results are returned as data and never thrown, and callers decide whether
// a failure blocks a save or is just displayed.

// printer localizes numbers in messages (thousands separators for bounds)
var printer = message.NewPrinter(language.English)

const (
	DefaultMinAmount = 0
	DefaultMaxAmount = 1e9
)

// Result carries a validation outcome as data. A Result can be Valid and
// still carry a Message: a non-blocking warning.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(msg string) Result {
	return Result{Valid: false, Message: msg}
}

// AmountOpts configures Amount. Zero values mean: Min 0, Max 1e9, optional,
// field name "Amount".
type AmountOpts struct {
	Min      float64
	Max      float64
	Required bool
	Field    string
}

// Amount checks a monetary input against numeric bounds. A nil or NaN value
// only fails when the amount is required.
func Amount(value *float64, opts AmountOpts) Result {
	field := opts.Field
	if field == "" {
		field = "Amount"
	}
	max := opts.Max
	if max == 0 {
		max = DefaultMaxAmount
	}

	if value == nil || math.IsNaN(*value) {
		if opts.Required {
			return invalid(printer.Sprintf("%s is required", field))
		}
		return valid()
	}

	if *value < opts.Min {
		return invalid(printer.Sprintf("%s must be at least %.0f", field, opts.Min))
	}

	if *value > max {
		return invalid(printer.Sprintf("%s must not exceed %.0f", field, max))
	}

	return valid()
}

// PaidAmount enforces that an amount paid never exceeds the amount owed.
func PaidAmount(paid, total float64, field string) Result {
	if field == "" {
		field = "Amount paid"
	}

	if math.IsNaN(paid) || math.IsNaN(total) {
		return invalid(printer.Sprintf("%s must be a valid number", field))
	}

	if paid < 0 {
		return invalid(printer.Sprintf("%s cannot be negative", field))
	}

	if paid > total {
		return invalid(printer.Sprintf("%s cannot exceed the total amount of %.2f", field, total))
	}

	return valid()
}

// SpentAmount checks spending against a planned amount. Overspending is
// trackable, not prohibited: exceeding the plan stays Valid but carries a
// warning message.
func SpentAmount(spent, planned float64) Result {
	if math.IsNaN(spent) || math.IsNaN(planned) {
		return invalid("Spent amount must be a valid number")
	}

	if spent < 0 {
		return invalid("Spent amount cannot be negative")
	}

	if spent > planned {
		return Result{
			Valid:   true,
			Message: printer.Sprintf("Spending exceeds the planned amount by %.2f", spent-planned),
		}
	}

	return valid()
}
