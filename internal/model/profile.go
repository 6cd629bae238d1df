package model

import "time"

const (
	MaritalStatusSingle  = "single"
	MaritalStatusEngaged = "engaged"
	MaritalStatusMarried = "married"
)

type Profile struct {
	ID            string     `db:"id" json:"id"`
	UserID        string     `db:"user_id" json:"user_id"`
	Name          string     `db:"name" json:"name"`
	DateOfBirth   *time.Time `db:"date_of_birth" json:"date_of_birth"`
	WeddingDate   *time.Time `db:"wedding_date" json:"wedding_date"`
	MaritalStatus string     `db:"marital_status" json:"marital_status"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}
