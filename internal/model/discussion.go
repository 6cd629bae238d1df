package model

import "time"

type DiscussionPrompt struct {
	ID        string `db:"id" json:"id"`
	Category  string `db:"category" json:"category"`
	Prompt    string `db:"prompt" json:"prompt"`
	SortOrder int    `db:"sort_order" json:"sort_order"`
}

// DiscussionAnswer is a user's free-text answer to a prompt, with a flag for
// whether the couple has discussed it together. One row per (user, prompt).
type DiscussionAnswer struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	PromptID  string    `db:"prompt_id" json:"prompt_id"`
	Answer    string    `db:"answer" json:"answer"`
	Discussed bool      `db:"discussed" json:"discussed"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
