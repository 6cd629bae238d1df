package model

import "time"

const (
	ResourceKindArticle = "article"
	ResourceKindCourse  = "course"
	ResourceKindVideo   = "video"
	ResourceKindBook    = "book"
)

type Resource struct {
	ID          string `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	URL         string `db:"url" json:"url"`
	Kind        string `db:"kind" json:"kind"`
	Category    string `db:"category" json:"category"`
	SortOrder   int    `db:"sort_order" json:"sort_order"`
}

// Document is a user-uploaded file (contract drafts, venue quotes) stored in
// S3-compatible storage and referenced by path.
type Document struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	Name        string    `db:"name" json:"name"`
	Path        string    `db:"path" json:"path"`
	ContentType string    `db:"content_type" json:"content_type"`
	Size        int64     `db:"size" json:"size"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`

	// Computed presigned URL (not in database)
	URL string `db:"-" json:"url,omitempty"`
}
