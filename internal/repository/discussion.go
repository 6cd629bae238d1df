package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mithaqhq/mithaq/internal/model"
)

type DiscussionRepository interface {
	Prompts() ([]model.DiscussionPrompt, error)
	Answers(userID string) ([]model.DiscussionAnswer, error)
	UpsertAnswer(answer *model.DiscussionAnswer) error
	RecentAnswers(userID string, since time.Time, limit int) ([]model.DiscussionAnswer, error)
	PromptTitles(ids []string) (map[string]string, error)
}

type discussionRepository struct {
	db *sqlx.DB
}

func NewDiscussionRepository(db *sqlx.DB) DiscussionRepository {
	return &discussionRepository{db: db}
}

func (r *discussionRepository) Prompts() ([]model.DiscussionPrompt, error) {
	var prompts []model.DiscussionPrompt
	err := r.db.Select(&prompts, `SELECT * FROM discussion_prompts ORDER BY sort_order ASC`)
	return prompts, err
}

func (r *discussionRepository) Answers(userID string) ([]model.DiscussionAnswer, error) {
	var answers []model.DiscussionAnswer
	err := r.db.Select(&answers, `SELECT * FROM discussion_answers WHERE user_id = $1`, userID)
	return answers, err
}

func (r *discussionRepository) UpsertAnswer(answer *model.DiscussionAnswer) error {
	if answer.ID == "" {
		answer.ID = uuid.New().String()
	}
	answer.UpdatedAt = time.Now()

	_, err := r.db.Exec(`
		INSERT INTO discussion_answers (id, user_id, prompt_id, answer, discussed, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, prompt_id) DO UPDATE SET
			answer = EXCLUDED.answer,
			discussed = EXCLUDED.discussed,
			updated_at = EXCLUDED.updated_at
	`, answer.ID, answer.UserID, answer.PromptID, answer.Answer, answer.Discussed, answer.UpdatedAt)

	return err
}

func (r *discussionRepository) RecentAnswers(userID string, since time.Time, limit int) ([]model.DiscussionAnswer, error) {
	var answers []model.DiscussionAnswer
	err := r.db.Select(&answers, `
		SELECT * FROM discussion_answers
		WHERE user_id = $1 AND updated_at >= $2
		ORDER BY updated_at DESC
		LIMIT $3
	`, userID, since, limit)

	return answers, err
}

// PromptTitles batch-resolves prompt texts with a single IN query.
func (r *discussionRepository) PromptTitles(ids []string) (map[string]string, error) {
	titles := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return titles, nil
	}

	query, args, err := sqlx.In(`SELECT id, prompt FROM discussion_prompts WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Queryx(r.db.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, prompt string
		err = rows.Scan(&id, &prompt)
		if err != nil {
			return nil, err
		}
		titles[id] = prompt
	}

	return titles, rows.Err()
}
