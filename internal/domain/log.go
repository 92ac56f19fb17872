package domain

// LogEntry is one row of an HTML test log. Entries of a session are totally
// ordered by (SourceFileIndex, LineNumber).
type LogEntry struct {
	ID              int64   `db:"id" json:"id"`
	SessionID       string  `db:"session_id" json:"session_id"`
	SourceFileIndex int     `db:"source_file_index" json:"source_file_index"`
	LineNumber      int     `db:"line_number" json:"line_number"`
	Timestamp       string  `db:"timestamp" json:"timestamp"`
	Level           string  `db:"level" json:"level"`
	Message         string  `db:"message" json:"message"`
	Stack           *string `db:"stack" json:"stack,omitempty"`
	IsFailureMarker bool    `db:"is_failure_marker" json:"is_failure_marker"`
}

// Before reports whether e sorts before other within a session.
func (e LogEntry) Before(other LogEntry) bool {
	if e.SourceFileIndex != other.SourceFileIndex {
		return e.SourceFileIndex < other.SourceFileIndex
	}
	return e.LineNumber < other.LineNumber
}

type LevelStats struct {
	Level string `json:"level"`
	Count int    `json:"count"`
}
