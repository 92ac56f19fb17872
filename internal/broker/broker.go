// Package broker publishes ingestion events to external consumers.
package broker

import (
	"context"
	"time"
)

const SessionIngestedEvent = "session.ingested"

type Producer interface {
	SendMessage(ctx context.Context, key, value []byte) error
	Close() error
}

// SessionIngested is published after a session commit.
type SessionIngested struct {
	Event        string    `json:"event"`
	SessionID    string    `json:"session_id"`
	Name         string    `json:"name"`
	SourcePath   string    `json:"source_path"`
	SourceKind   string    `json:"source_kind"`
	Replaced     bool      `json:"replaced"`
	FileCount    int       `json:"file_count"`
	FilesFailed  int       `json:"files_failed"`
	TotalEntries int       `json:"total_entries"`
	Bookmarks    int       `json:"bookmarks"`
	IngestedAt   time.Time `json:"ingested_at"`
}
