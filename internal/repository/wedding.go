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
	ErrWeddingItemNotFound = errors.New("wedding item not found")
)

type WeddingRepository interface {
	Items(userID string) ([]model.WeddingItem, error)
	ByID(userID, itemID string) (*model.WeddingItem, error)
	Create(item *model.WeddingItem) error
	Update(item *model.WeddingItem) error
	Delete(userID, itemID string) error
}

type weddingRepository struct {
	db *sqlx.DB
}

func NewWeddingRepository(db *sqlx.DB) WeddingRepository {
	return &weddingRepository{db: db}
}

func (r *weddingRepository) Items(userID string) ([]model.WeddingItem, error) {
	var items []model.WeddingItem
	err := r.db.Select(&items, `
		SELECT * FROM wedding_items WHERE user_id = $1 ORDER BY category, created_at ASC
	`, userID)
	return items, err
}

func (r *weddingRepository) ByID(userID, itemID string) (*model.WeddingItem, error) {
	var item model.WeddingItem
	err := r.db.Get(&item, `SELECT * FROM wedding_items WHERE id = $1 AND user_id = $2`, itemID, userID)

	if err == sql.ErrNoRows {
		return nil, ErrWeddingItemNotFound
	}
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *weddingRepository) Create(item *model.WeddingItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	now := time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now

	_, err := r.db.Exec(`
		INSERT INTO wedding_items (id, user_id, category, name, planned, spent, paid, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, item.ID, item.UserID, item.Category, item.Name, item.Planned, item.Spent,
		item.Paid, item.CreatedAt, item.UpdatedAt)

	return err
}

func (r *weddingRepository) Update(item *model.WeddingItem) error {
	result, err := r.db.Exec(`
		UPDATE wedding_items
		SET category = $1, name = $2, planned = $3, spent = $4, paid = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8
	`, item.Category, item.Name, item.Planned, item.Spent, item.Paid,
		time.Now(), item.ID, item.UserID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrWeddingItemNotFound
	}

	return nil
}

func (r *weddingRepository) Delete(userID, itemID string) error {
	result, err := r.db.Exec(`DELETE FROM wedding_items WHERE id = $1 AND user_id = $2`, itemID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrWeddingItemNotFound
	}

	return nil
}
