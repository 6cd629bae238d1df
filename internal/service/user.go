package service

import (
	"github.com/mithaqhq/mithaq/internal/model"
	"github.com/mithaqhq/mithaq/internal/repository"
)

type UserService struct {
	userRepository repository.UserRepository
}

func NewUserService(userRepository repository.UserRepository) *UserService {
	return &UserService{userRepository: userRepository}
}

func (s *UserService) ByID(id string) (*model.User, error) {
	return s.userRepository.ByID(id)
}

// Delete removes the user; profiles and all per-user rows cascade in the
// database.
func (s *UserService) Delete(id string) error {
	return s.userRepository.Delete(id)
}
