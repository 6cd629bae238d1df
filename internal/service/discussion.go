package service

import (
	"fmt"
	"time"

	"github.com/mithaqhq/mithaq/internal/model"
	"github.com/mithaqhq/mithaq/internal/repository"
)

type DiscussionService struct {
	repo repository.DiscussionRepository
}

func NewDiscussionService(repo repository.DiscussionRepository) *DiscussionService {
	return &DiscussionService{repo: repo}
}

// PromptView joins a prompt with the user's answer, if any.
type PromptView struct {
	model.DiscussionPrompt
	Answer     string     `json:"answer"`
	Discussed  bool       `json:"discussed"`
	AnsweredAt *time.Time `json:"answered_at,omitempty"`
}

func (s *DiscussionService) Prompts(userID string) ([]PromptView, error) {
	prompts, err := s.repo.Prompts()
	if err != nil {
		return nil, fmt.Errorf("failed to load prompts: %w", err)
	}

	answers, err := s.repo.Answers(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load answers: %w", err)
	}

	byPrompt := make(map[string]model.DiscussionAnswer, len(answers))
	for _, answer := range answers {
		byPrompt[answer.PromptID] = answer
	}

	views := make([]PromptView, 0, len(prompts))
	for _, prompt := range prompts {
		view := PromptView{DiscussionPrompt: prompt}
		if answer, ok := byPrompt[prompt.ID]; ok {
			view.Answer = answer.Answer
			view.Discussed = answer.Discussed
			at := answer.UpdatedAt
			view.AnsweredAt = &at
		}
		views = append(views, view)
	}

	return views, nil
}

// Answer upserts the user's answer for a prompt.
func (s *DiscussionService) Answer(userID, promptID, text string, discussed bool) error {
	return s.repo.UpsertAnswer(&model.DiscussionAnswer{
		UserID:    userID,
		PromptID:  promptID,
		Answer:    text,
		Discussed: discussed,
	})
}
