package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mithaqhq/mithaq/internal/model"
	"github.com/mithaqhq/mithaq/internal/repository"
	"github.com/mithaqhq/mithaq/internal/validation"
)

type WeddingService struct {
	repo repository.WeddingRepository
}

func NewWeddingService(repo repository.WeddingRepository) *WeddingService {
	return &WeddingService{repo: repo}
}

// WeddingSummary aggregates the wedding budget lines.
type WeddingSummary struct {
	Items        []model.WeddingItem `json:"items"`
	TotalPlanned float64             `json:"total_planned"`
	TotalSpent   float64             `json:"total_spent"`
}

func (s *WeddingService) Summary(userID string) (*WeddingSummary, error) {
	items, err := s.repo.Items(userID)
	if err != nil {
		return nil, err
	}

	summary := &WeddingSummary{Items: items}
	for _, item := range items {
		summary.TotalPlanned += item.Planned
		summary.TotalSpent += item.Spent
	}

	return summary, nil
}

// Save validates and persists a line item. Overspending the planned amount
// is allowed; the returned warning carries the overage message for display.
func (s *WeddingService) Save(userID string, item *model.WeddingItem) (saved *model.WeddingItem, warning string, err error) {
	if strings.TrimSpace(item.Name) == "" {
		return nil, "", FieldErrors{"name": "Name is required"}
	}

	fieldErrors := FieldErrors{}

	planned := item.Planned
	result := validation.Amount(&planned, validation.AmountOpts{Field: "Planned amount"})
	if !result.Valid {
		fieldErrors["planned"] = result.Message
	}

	result = validation.SpentAmount(item.Spent, item.Planned)
	if !result.Valid {
		fieldErrors["spent"] = result.Message
	} else {
		warning = result.Message
	}

	if len(fieldErrors) > 0 {
		return nil, "", fieldErrors
	}

	item.UserID = userID
	if item.ID == "" {
		err = s.repo.Create(item)
	} else {
		err = s.repo.Update(item)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to save wedding item: %w", err)
	}

	return item, warning, nil
}

func (s *WeddingService) Delete(userID, itemID string) error {
	return s.repo.Delete(userID, itemID)
}

// ExportRows shapes the wedding budget for CSV download. Column order is
// fixed; every row matches it.
func (s *WeddingService) ExportRows(userID string) (columns []string, rows [][]string, err error) {
	items, err := s.repo.Items(userID)
	if err != nil {
		return nil, nil, err
	}

	columns = []string{"category", "name", "planned", "spent", "paid"}
	rows = make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.Category,
			item.Name,
			strconv.FormatFloat(item.Planned, 'f', 2, 64),
			strconv.FormatFloat(item.Spent, 'f', 2, 64),
			strconv.FormatBool(item.Paid),
		})
	}

	return columns, rows, nil
}
