package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mithaqhq/mithaq/internal/model"
)

type ChecklistRepository interface {
	Categories() ([]model.ChecklistCategory, error)
	Items() ([]model.ChecklistItem, error)
	CompletedStatuses(userID string) ([]model.ChecklistStatus, error)
	Complete(userID, itemID string, completedAt time.Time) error
	Uncomplete(userID, itemID string) error
	RecentCompletions(userID string, since time.Time, limit int) ([]model.ChecklistStatus, error)
	ItemTitles(ids []string) (map[string]string, error)
}

type checklistRepository struct {
	db *sqlx.DB
}

func NewChecklistRepository(db *sqlx.DB) ChecklistRepository {
	return &checklistRepository{db: db}
}

func (r *checklistRepository) Categories() ([]model.ChecklistCategory, error) {
	var categories []model.ChecklistCategory
	err := r.db.Select(&categories, `SELECT * FROM checklist_categories ORDER BY sort_order ASC`)
	return categories, err
}

func (r *checklistRepository) Items() ([]model.ChecklistItem, error) {
	var items []model.ChecklistItem
	err := r.db.Select(&items, `SELECT * FROM checklist_items ORDER BY category_id, sort_order ASC`)
	return items, err
}

func (r *checklistRepository) CompletedStatuses(userID string) ([]model.ChecklistStatus, error) {
	var statuses []model.ChecklistStatus
	err := r.db.Select(&statuses, `SELECT * FROM checklist_statuses WHERE user_id = $1`, userID)
	return statuses, err
}

// Complete upserts the status row; completing an already-complete item just
// refreshes its timestamp.
func (r *checklistRepository) Complete(userID, itemID string, completedAt time.Time) error {
	_, err := r.db.Exec(`
		INSERT INTO checklist_statuses (id, user_id, item_id, completed_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, item_id) DO UPDATE SET completed_at = EXCLUDED.completed_at
	`, uuid.New().String(), userID, itemID, completedAt)

	return err
}

func (r *checklistRepository) Uncomplete(userID, itemID string) error {
	_, err := r.db.Exec(`
		DELETE FROM checklist_statuses WHERE user_id = $1 AND item_id = $2
	`, userID, itemID)

	return err
}

func (r *checklistRepository) RecentCompletions(userID string, since time.Time, limit int) ([]model.ChecklistStatus, error) {
	var statuses []model.ChecklistStatus
	err := r.db.Select(&statuses, `
		SELECT * FROM checklist_statuses
		WHERE user_id = $1 AND completed_at >= $2
		ORDER BY completed_at DESC
		LIMIT $3
	`, userID, since, limit)

	return statuses, err
}

// ItemTitles batch-resolves item titles with a single IN query.
func (r *checklistRepository) ItemTitles(ids []string) (map[string]string, error) {
	titles := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return titles, nil
	}

	query, args, err := sqlx.In(`SELECT id, title FROM checklist_items WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Queryx(r.db.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, title string
		err = rows.Scan(&id, &title)
		if err != nil {
			return nil, err
		}
		titles[id] = title
	}

	return titles, rows.Err()
}
