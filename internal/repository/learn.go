package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mithaqhq/mithaq/internal/model"
)

type ModuleNoteRepository interface {
	Notes(userID string) ([]model.ModuleNote, error)
	Complete(userID, moduleSlug string, completedAt time.Time) error
	Uncomplete(userID, moduleSlug string) error
	RecentCompletions(userID string, since time.Time, limit int) ([]model.ModuleNote, error)
}

type moduleNoteRepository struct {
	db *sqlx.DB
}

func NewModuleNoteRepository(db *sqlx.DB) ModuleNoteRepository {
	return &moduleNoteRepository{db: db}
}

func (r *moduleNoteRepository) Notes(userID string) ([]model.ModuleNote, error) {
	var notes []model.ModuleNote
	err := r.db.Select(&notes, `SELECT * FROM module_notes WHERE user_id = $1`, userID)
	return notes, err
}

// Complete upserts the note; at most one row per (user, module).
func (r *moduleNoteRepository) Complete(userID, moduleSlug string, completedAt time.Time) error {
	_, err := r.db.Exec(`
		INSERT INTO module_notes (id, user_id, module_slug, completed_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, module_slug) DO UPDATE SET completed_at = EXCLUDED.completed_at
	`, uuid.New().String(), userID, moduleSlug, completedAt)

	return err
}

func (r *moduleNoteRepository) Uncomplete(userID, moduleSlug string) error {
	_, err := r.db.Exec(`
		DELETE FROM module_notes WHERE user_id = $1 AND module_slug = $2
	`, userID, moduleSlug)

	return err
}

func (r *moduleNoteRepository) RecentCompletions(userID string, since time.Time, limit int) ([]model.ModuleNote, error) {
	var notes []model.ModuleNote
	err := r.db.Select(&notes, `
		SELECT * FROM module_notes
		WHERE user_id = $1 AND completed_at >= $2
		ORDER BY completed_at DESC
		LIMIT $3
	`, userID, since, limit)

	return notes, err
}
