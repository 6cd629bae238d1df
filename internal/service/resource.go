package service

import (
	"github.com/mithaqhq/mithaq/internal/model"
	"github.com/mithaqhq/mithaq/internal/repository"
)

type ResourceService struct {
	repo repository.ResourceRepository
}

func NewResourceService(repo repository.ResourceRepository) *ResourceService {
	return &ResourceService{repo: repo}
}

func (s *ResourceService) Resources(category string) ([]model.Resource, error) {
	if category != "" {
		return s.repo.ByCategory(category)
	}
	return s.repo.All()
}
