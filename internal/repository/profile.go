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
	ErrProfileNotFound = errors.New("profile not found")
)

type ProfileRepository interface {
	ByUserID(userID string) (*model.Profile, error)
	Create(profile *model.Profile) error
	Update(profile *model.Profile) error
}

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) ByUserID(userID string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.Get(&profile, `SELECT * FROM profiles WHERE user_id = $1`, userID)

	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepository) Create(profile *model.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	if profile.MaritalStatus == "" {
		profile.MaritalStatus = model.MaritalStatusSingle
	}
	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	if profile.UpdatedAt.IsZero() {
		profile.UpdatedAt = now
	}

	_, err := r.db.Exec(`
		INSERT INTO profiles (id, user_id, name, date_of_birth, wedding_date, marital_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, profile.ID, profile.UserID, profile.Name, profile.DateOfBirth, profile.WeddingDate,
		profile.MaritalStatus, profile.CreatedAt, profile.UpdatedAt)

	return err
}

func (r *profileRepository) Update(profile *model.Profile) error {
	result, err := r.db.Exec(`
		UPDATE profiles
		SET name = $1, date_of_birth = $2, wedding_date = $3, marital_status = $4, updated_at = $5
		WHERE user_id = $6
	`, profile.Name, profile.DateOfBirth, profile.WeddingDate, profile.MaritalStatus,
		time.Now(), profile.UserID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrProfileNotFound
	}

	return nil
}
