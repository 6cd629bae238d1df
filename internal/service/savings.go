package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mithaqhq/mithaq/internal/model"
	"github.com/mithaqhq/mithaq/internal/repository"
	"github.com/mithaqhq/mithaq/internal/validation"
)

type SavingsService struct {
	repo repository.SavingsRepository
}

func NewSavingsService(repo repository.SavingsRepository) *SavingsService {
	return &SavingsService{repo: repo}
}

func (s *SavingsService) Goals(userID string) ([]model.SavingsGoal, error) {
	return s.repo.Goals(userID)
}

func (s *SavingsService) Save(userID string, goal *model.SavingsGoal) (*model.SavingsGoal, error) {
	if strings.TrimSpace(goal.Name) == "" {
		return nil, FieldErrors{"name": "Name is required"}
	}

	fieldErrors := FieldErrors{}

	target := goal.Target
	result := validation.Amount(&target, validation.AmountOpts{Field: "Target amount", Required: true})
	if !result.Valid {
		fieldErrors["target"] = result.Message
	}

	saved := goal.Saved
	result = validation.Amount(&saved, validation.AmountOpts{Field: "Saved amount"})
	if !result.Valid {
		fieldErrors["saved"] = result.Message
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}

	goal.UserID = userID
	var err error
	if goal.ID == "" {
		err = s.repo.Create(goal)
	} else {
		err = s.repo.Update(goal)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save savings goal: %w", err)
	}

	return goal, nil
}

func (s *SavingsService) Delete(userID, goalID string) error {
	return s.repo.Delete(userID, goalID)
}

// ExportRows shapes the savings goals for CSV download.
func (s *SavingsService) ExportRows(userID string) (columns []string, rows [][]string, err error) {
	goals, err := s.repo.Goals(userID)
	if err != nil {
		return nil, nil, err
	}

	columns = []string{"name", "target", "saved", "progress", "target_date"}
	rows = make([][]string, 0, len(goals))
	for _, goal := range goals {
		targetDate := ""
		if goal.TargetDate != nil {
			targetDate = goal.TargetDate.Format("2006-01-02")
		}
		rows = append(rows, []string{
			goal.Name,
			strconv.FormatFloat(goal.Target, 'f', 2, 64),
			strconv.FormatFloat(goal.Saved, 'f', 2, 64),
			strconv.Itoa(goal.Progress()),
			targetDate,
		})
	}

	return columns, rows, nil
}
