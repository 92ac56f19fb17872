package domain

import "time"

const (
	FailureBookmarkTitle = "Failure"

	AutoColor    = "#ffd54f"
	FailureColor = "#e57373"
	DefaultColor = "#90caf9"
)

type Bookmark struct {
	ID         int64     `db:"id" json:"id"`
	LogEntryID int64     `db:"log_entry_id" json:"log_entry_id"`
	Title      string    `db:"title" json:"title"`
	Notes      string    `db:"notes" json:"notes,omitempty"`
	Color      string    `db:"color" json:"color"`
	Auto       bool      `db:"auto" json:"auto"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
