package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mithaqhq/mithaq/internal/model"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

type BudgetRepository interface {
	ByUserID(userID string) (*model.Budget, error)
	Upsert(budget *model.Budget) error
}

type budgetRepository struct {
	db *sqlx.DB
}

func NewBudgetRepository(db *sqlx.DB) BudgetRepository {
	return &budgetRepository{db: db}
}

func (r *budgetRepository) ByUserID(userID string) (*model.Budget, error) {
	var budget model.Budget
	err := r.db.Get(&budget, `SELECT * FROM budgets WHERE user_id = $1`, userID)

	if err == sql.ErrNoRows {
		return nil, ErrBudgetNotFound
	}
	if err != nil {
		return nil, err
	}

	return &budget, nil
}

// Upsert creates the user's budget lazily on first save and overwrites every
// field afterwards; there is at most one row per user.
func (r *budgetRepository) Upsert(budget *model.Budget) error {
	if budget.ID == "" {
		budget.ID = uuid.New().String()
	}
	now := time.Now()
	if budget.CreatedAt.IsZero() {
		budget.CreatedAt = now
	}
	budget.UpdatedAt = now

	_, err := r.db.NamedExec(`
		INSERT INTO budgets (
			id, user_id,
			income_primary, income_partner, income_other,
			exp_housing, exp_utilities, exp_groceries, exp_transport,
			exp_insurance, exp_healthcare, exp_debt, exp_entertainment,
			exp_personal, exp_charity, exp_other,
			created_at, updated_at
		) VALUES (
			:id, :user_id,
			:income_primary, :income_partner, :income_other,
			:exp_housing, :exp_utilities, :exp_groceries, :exp_transport,
			:exp_insurance, :exp_healthcare, :exp_debt, :exp_entertainment,
			:exp_personal, :exp_charity, :exp_other,
			:created_at, :updated_at
		)
		ON CONFLICT (user_id) DO UPDATE SET
			income_primary = EXCLUDED.income_primary,
			income_partner = EXCLUDED.income_partner,
			income_other = EXCLUDED.income_other,
			exp_housing = EXCLUDED.exp_housing,
			exp_utilities = EXCLUDED.exp_utilities,
			exp_groceries = EXCLUDED.exp_groceries,
			exp_transport = EXCLUDED.exp_transport,
			exp_insurance = EXCLUDED.exp_insurance,
			exp_healthcare = EXCLUDED.exp_healthcare,
			exp_debt = EXCLUDED.exp_debt,
			exp_entertainment = EXCLUDED.exp_entertainment,
			exp_personal = EXCLUDED.exp_personal,
			exp_charity = EXCLUDED.exp_charity,
			exp_other = EXCLUDED.exp_other,
			updated_at = EXCLUDED.updated_at
	`, budget)

	return err
}
