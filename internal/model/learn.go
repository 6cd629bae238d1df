package model

import "time"

// Module is a learning module backed by a markdown content file. The slug is
// the file name without extension; nothing about the module itself is stored
// in the database.
type Module struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	ReadTime    int    `json:"read_time"`
	HTMLContent string `json:"html_content,omitempty"`

	// Per-user completion, joined in by the service
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ModuleNote records per-user module completion, at most one per
// (user, module) pair.
type ModuleNote struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	ModuleSlug  string    `db:"module_slug" json:"module_slug"`
	CompletedAt time.Time `db:"completed_at" json:"completed_at"`
}
