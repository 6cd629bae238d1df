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
	ErrDocumentNotFound = errors.New("document not found")
)

type DocumentRepository interface {
	Create(doc *model.Document) error
	ByID(userID, docID string) (*model.Document, error)
	AllUser(userID string) ([]model.Document, error)
	Delete(userID, docID string) error
}

type documentRepository struct {
	db *sqlx.DB
}

func NewDocumentRepository(db *sqlx.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(doc *model.Document) error {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(`
		INSERT INTO documents (id, user_id, name, path, content_type, size, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, doc.ID, doc.UserID, doc.Name, doc.Path, doc.ContentType, doc.Size, doc.CreatedAt)

	return err
}

func (r *documentRepository) ByID(userID, docID string) (*model.Document, error) {
	var doc model.Document
	err := r.db.Get(&doc, `SELECT * FROM documents WHERE id = $1 AND user_id = $2`, docID, userID)

	if err == sql.ErrNoRows {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

func (r *documentRepository) AllUser(userID string) ([]model.Document, error) {
	var docs []model.Document
	err := r.db.Select(&docs, `
		SELECT * FROM documents WHERE user_id = $1 ORDER BY created_at DESC
	`, userID)
	return docs, err
}

func (r *documentRepository) Delete(userID, docID string) error {
	result, err := r.db.Exec(`DELETE FROM documents WHERE id = $1 AND user_id = $2`, docID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrDocumentNotFound
	}

	return nil
}
