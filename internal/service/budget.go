package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mithaqhq/mithaq/internal/model"
	"github.com/mithaqhq/mithaq/internal/repository"
	"github.com/mithaqhq/mithaq/internal/validation"
)

// FieldErrors maps field names to validation messages. It is data for the
// caller to render, carried through the error return for convenience.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(parts, "; ")
}

type BudgetService struct {
	repo repository.BudgetRepository
}

func NewBudgetService(repo repository.BudgetRepository) *BudgetService {
	return &BudgetService{repo: repo}
}

// Get returns the user's budget, or nil when none has been created yet.
// "Not yet created" is a valid state, not an error.
func (s *BudgetService) Get(userID string) (*model.Budget, error) {
	budget, err := s.repo.ByUserID(userID)
	if errors.Is(err, repository.ErrBudgetNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return budget, nil
}

// Save validates every monetary field and upserts the singleton record.
func (s *BudgetService) Save(userID string, budget *model.Budget) (*model.Budget, error) {
	fields := []struct {
		name  string
		value float64
	}{
		{"income_primary", budget.IncomePrimary},
		{"income_partner", budget.IncomePartner},
		{"income_other", budget.IncomeOther},
		{"exp_housing", budget.ExpHousing},
		{"exp_utilities", budget.ExpUtilities},
		{"exp_groceries", budget.ExpGroceries},
		{"exp_transport", budget.ExpTransport},
		{"exp_insurance", budget.ExpInsurance},
		{"exp_healthcare", budget.ExpHealthcare},
		{"exp_debt", budget.ExpDebt},
		{"exp_entertainment", budget.ExpEntertainment},
		{"exp_personal", budget.ExpPersonal},
		{"exp_charity", budget.ExpCharity},
		{"exp_other", budget.ExpOther},
	}

	fieldErrors := FieldErrors{}
	for _, field := range fields {
		value := field.value
		result := validation.Amount(&value, validation.AmountOpts{Field: field.name})
		if !result.Valid {
			fieldErrors[field.name] = result.Message
		}
	}
	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}

	existing, err := s.Get(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		budget.ID = existing.ID
		budget.CreatedAt = existing.CreatedAt
	}
	budget.UserID = userID

	err = s.repo.Upsert(budget)
	if err != nil {
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	return budget, nil
}
