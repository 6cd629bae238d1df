package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/mithaqhq/mithaq/internal/model"
)

type ResourceRepository interface {
	All() ([]model.Resource, error)
	ByCategory(category string) ([]model.Resource, error)
}

type resourceRepository struct {
	db *sqlx.DB
}

func NewResourceRepository(db *sqlx.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) All() ([]model.Resource, error) {
	var resources []model.Resource
	err := r.db.Select(&resources, `SELECT * FROM resources ORDER BY sort_order ASC`)
	return resources, err
}

func (r *resourceRepository) ByCategory(category string) ([]model.Resource, error) {
	var resources []model.Resource
	err := r.db.Select(&resources, `
		SELECT * FROM resources WHERE category = $1 ORDER BY sort_order ASC
	`, category)
	return resources, err
}
