package domain

// FileRef points at one candidate file of a source: a filesystem path or an
// absolute URL, plus its base name.
type FileRef struct {
	Locator  string `json:"locator"`
	Filename string `json:"filename"`
}

// ClassifiedFile is a FileRef whose name matched the test-log pattern.
type ClassifiedFile struct {
	FileRef
	SessionKey    string `json:"session_key"`
	SequenceIndex int    `json:"sequence_index"`
}

// SessionGroup holds the files of one logical test run, sorted by
// SequenceIndex.
type SessionGroup struct {
	Key   string           `json:"key"`
	Files []ClassifiedFile `json:"files"`
}

// SessionCandidate describes a group found in a source before ingestion.
type SessionCandidate struct {
	Key           string `json:"key"`
	FileCount     int    `json:"file_count"`
	AlreadyLoaded bool   `json:"already_loaded"`
	SessionID     string `json:"session_id,omitempty"`
}
