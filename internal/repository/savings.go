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
	ErrSavingsGoalNotFound = errors.New("savings goal not found")
)

type SavingsRepository interface {
	Goals(userID string) ([]model.SavingsGoal, error)
	ByID(userID, goalID string) (*model.SavingsGoal, error)
	Create(goal *model.SavingsGoal) error
	Update(goal *model.SavingsGoal) error
	Delete(userID, goalID string) error
}

type savingsRepository struct {
	db *sqlx.DB
}

func NewSavingsRepository(db *sqlx.DB) SavingsRepository {
	return &savingsRepository{db: db}
}

func (r *savingsRepository) Goals(userID string) ([]model.SavingsGoal, error) {
	var goals []model.SavingsGoal
	err := r.db.Select(&goals, `
		SELECT * FROM savings_goals WHERE user_id = $1 ORDER BY created_at ASC
	`, userID)
	return goals, err
}

func (r *savingsRepository) ByID(userID, goalID string) (*model.SavingsGoal, error) {
	var goal model.SavingsGoal
	err := r.db.Get(&goal, `SELECT * FROM savings_goals WHERE id = $1 AND user_id = $2`, goalID, userID)

	if err == sql.ErrNoRows {
		return nil, ErrSavingsGoalNotFound
	}
	if err != nil {
		return nil, err
	}

	return &goal, nil
}

func (r *savingsRepository) Create(goal *model.SavingsGoal) error {
	if goal.ID == "" {
		goal.ID = uuid.New().String()
	}
	now := time.Now()
	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = now
	}
	goal.UpdatedAt = now

	_, err := r.db.Exec(`
		INSERT INTO savings_goals (id, user_id, name, target, saved, target_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, goal.ID, goal.UserID, goal.Name, goal.Target, goal.Saved, goal.TargetDate,
		goal.CreatedAt, goal.UpdatedAt)

	return err
}

func (r *savingsRepository) Update(goal *model.SavingsGoal) error {
	result, err := r.db.Exec(`
		UPDATE savings_goals
		SET name = $1, target = $2, saved = $3, target_date = $4, updated_at = $5
		WHERE id = $6 AND user_id = $7
	`, goal.Name, goal.Target, goal.Saved, goal.TargetDate, time.Now(), goal.ID, goal.UserID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSavingsGoalNotFound
	}

	return nil
}

func (r *savingsRepository) Delete(userID, goalID string) error {
	result, err := r.db.Exec(`DELETE FROM savings_goals WHERE id = $1 AND user_id = $2`, goalID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSavingsGoalNotFound
	}

	return nil
}
