package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/mithaqhq/mithaq/internal/model"
	"github.com/mithaqhq/mithaq/internal/repository"
	"github.com/mithaqhq/mithaq/internal/validation"
)

type ProfileService struct {
	profileRepository repository.ProfileRepository
}

func NewProfileService(profileRepository repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepository: profileRepository}
}

func (s *ProfileService) ByUserID(userID string) (*model.Profile, error) {
	return s.profileRepository.ByUserID(userID)
}

// ProfileUpdate carries the editable profile fields. Nil date pointers clear
// the stored value; an unset wedding date is a valid state, not an error.
type ProfileUpdate struct {
	Name          string
	DateOfBirth   *time.Time
	WeddingDate   *time.Time
	MaritalStatus string
}

func (s *ProfileService) Update(userID string, update ProfileUpdate) (*model.Profile, error) {
	err := validation.ValidateName(update.Name)
	if err != nil {
		return nil, err
	}

	switch update.MaritalStatus {
	case model.MaritalStatusSingle, model.MaritalStatusEngaged, model.MaritalStatusMarried:
	case "":
		update.MaritalStatus = model.MaritalStatusSingle
	default:
		return nil, fmt.Errorf("invalid marital status: %s", update.MaritalStatus)
	}

	profile, err := s.profileRepository.ByUserID(userID)
	if err != nil {
		return nil, err
	}

	profile.Name = strings.TrimSpace(update.Name)
	profile.DateOfBirth = update.DateOfBirth
	profile.WeddingDate = update.WeddingDate
	profile.MaritalStatus = update.MaritalStatus

	err = s.profileRepository.Update(profile)
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// NeedsOnboarding reports whether the profile is still incomplete; an empty
// name is the indicator.
func (s *ProfileService) NeedsOnboarding(userID string) (bool, error) {
	profile, err := s.profileRepository.ByUserID(userID)
	if err != nil {
		return false, err
	}
	return profile.Name == "", nil
}
