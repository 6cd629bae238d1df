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
	ErrMahrNotFound = errors.New("mahr record not found")
)

type MahrRepository interface {
	ByUserID(userID string) (*model.MahrRecord, error)
	Upsert(record *model.MahrRecord) error
}

type mahrRepository struct {
	db *sqlx.DB
}

func NewMahrRepository(db *sqlx.DB) MahrRepository {
	return &mahrRepository{db: db}
}

func (r *mahrRepository) ByUserID(userID string) (*model.MahrRecord, error) {
	var record model.MahrRecord
	err := r.db.Get(&record, `SELECT * FROM mahr_records WHERE user_id = $1`, userID)

	if err == sql.ErrNoRows {
		return nil, ErrMahrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *mahrRepository) Upsert(record *model.MahrRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	now := time.Now()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	_, err := r.db.Exec(`
		INSERT INTO mahr_records (id, user_id, amount, paid, kind, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			amount = EXCLUDED.amount,
			paid = EXCLUDED.paid,
			kind = EXCLUDED.kind,
			notes = EXCLUDED.notes,
			updated_at = EXCLUDED.updated_at
	`, record.ID, record.UserID, record.Amount, record.Paid, record.Kind,
		record.Notes, record.CreatedAt, record.UpdatedAt)

	return err
}
