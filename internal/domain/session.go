package domain

import (
	"time"

	"github.com/google/uuid"
)

type SourceKind string

const (
	SourceLocal SourceKind = "local"
	SourceHTTP  SourceKind = "http"
)

// sessionNamespace scopes the name-based UUIDs of test sessions.
var sessionNamespace = uuid.MustParse("7b0d3c1e-5a52-4f0e-9a57-2f7c4a1d9e60")

type TestSession struct {
	ID             string     `db:"id" json:"id"`
	Name           string     `db:"name" json:"name"`
	SourcePath     string     `db:"source_path" json:"source_path"`
	SourceKind     SourceKind `db:"source_kind" json:"source_kind"`
	FileCount      int        `db:"file_count" json:"file_count"`
	TotalEntries   int        `db:"total_entries" json:"total_entries"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	LastIngestedAt time.Time  `db:"last_ingested_at" json:"last_ingested_at"`
}

// NewSessionID derives the session id from its identity, so ingesting the
// same (sourcePath, name) always yields the same id.
func NewSessionID(sourcePath, name string) string {
	return uuid.NewSHA1(sessionNamespace, []byte(sourcePath+"\x00"+name)).String()
}
