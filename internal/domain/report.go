package domain

import (
	"fmt"
	"strings"
)

type SessionStatus string

const (
	SessionCreated  SessionStatus = "created"
	SessionReplaced SessionStatus = "replaced"
	SessionEmpty    SessionStatus = "empty"
	SessionFailed   SessionStatus = "failed"
)

type FileStage string

const (
	StageGroup FileStage = "group"
	StageFetch FileStage = "fetch"
	StageParse FileStage = "parse"
)

// FileFailure records a file dropped from its session's input set.
type FileFailure struct {
	Locator       string    `json:"locator"`
	SequenceIndex int       `json:"sequence_index"`
	Stage         FileStage `json:"stage"`
	Attempts      int       `json:"attempts"`
	Err           string    `json:"error"`
}

type SessionResult struct {
	Key         string        `json:"key"`
	SessionID   string        `json:"session_id,omitempty"`
	Status      SessionStatus `json:"status"`
	FilesTotal  int           `json:"files_total"`
	FilesParsed int           `json:"files_parsed"`
	Entries     int           `json:"entries"`
	Bookmarks   int           `json:"bookmarks"`
	Failures    []FileFailure `json:"failures,omitempty"`
	Err         error         `json:"-"`
	ErrText     string        `json:"error,omitempty"`
}

type IngestReport struct {
	Source     string          `json:"source"`
	SourceKind SourceKind      `json:"source_kind"`
	Sessions   []SessionResult `json:"sessions"`
}

// Stored returns the results whose session was written.
func (r *IngestReport) Stored() []SessionResult {
	var out []SessionResult
	for _, s := range r.Sessions {
		if s.Status == SessionCreated || s.Status == SessionReplaced {
			out = append(out, s)
		}
	}
	return out
}

func (r *IngestReport) FailedFiles() (failed, total int) {
	for _, s := range r.Sessions {
		failed += len(s.Failures)
		total += s.FilesTotal
	}
	return failed, total
}

// Summary renders a one-line account of the attempt, e.g.
// "2 sessions stored, 1 empty, 0 failed; 1 of 5 files failed".
func (r *IngestReport) Summary() string {
	counts := map[SessionStatus]int{}
	for _, s := range r.Sessions {
		counts[s.Status]++
	}
	failed, total := r.FailedFiles()

	var b strings.Builder
	fmt.Fprintf(&b, "%d sessions stored, %d empty, %d failed",
		counts[SessionCreated]+counts[SessionReplaced], counts[SessionEmpty], counts[SessionFailed])
	fmt.Fprintf(&b, "; %d of %d files failed", failed, total)
	return b.String()
}
