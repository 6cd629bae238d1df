package service

import (
	"fmt"
	"time"

	"github.com/mithaqhq/mithaq/internal/model"
	"github.com/mithaqhq/mithaq/internal/repository"
)

type ChecklistService struct {
	repo repository.ChecklistRepository
}

func NewChecklistService(repo repository.ChecklistRepository) *ChecklistService {
	return &ChecklistService{repo: repo}
}

// ChecklistItemView is an item joined with the user's completion state.
type ChecklistItemView struct {
	model.ChecklistItem
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ChecklistCategoryView groups a category's items with progress counts.
type ChecklistCategoryView struct {
	model.ChecklistCategory
	Items          []ChecklistItemView `json:"items"`
	CompletedCount int                 `json:"completed_count"`
	TotalCount     int                 `json:"total_count"`
}

// Overview returns every category with its items and the user's completion
// state joined in.
func (s *ChecklistService) Overview(userID string) ([]ChecklistCategoryView, error) {
	categories, err := s.repo.Categories()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	items, err := s.repo.Items()
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}

	statuses, err := s.repo.CompletedStatuses(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load statuses: %w", err)
	}

	completedAt := make(map[string]time.Time, len(statuses))
	for _, status := range statuses {
		completedAt[status.ItemID] = status.CompletedAt
	}

	views := make([]ChecklistCategoryView, 0, len(categories))
	for _, category := range categories {
		view := ChecklistCategoryView{ChecklistCategory: category}

		for _, item := range items {
			if item.CategoryID != category.ID {
				continue
			}

			itemView := ChecklistItemView{ChecklistItem: item}
			if at, ok := completedAt[item.ID]; ok {
				itemView.Completed = true
				at := at
				itemView.CompletedAt = &at
				view.CompletedCount++
			}

			view.Items = append(view.Items, itemView)
			view.TotalCount++
		}

		views = append(views, view)
	}

	return views, nil
}

func (s *ChecklistService) Complete(userID, itemID string) error {
	return s.repo.Complete(userID, itemID, time.Now())
}

func (s *ChecklistService) Uncomplete(userID, itemID string) error {
	return s.repo.Uncomplete(userID, itemID)
}
