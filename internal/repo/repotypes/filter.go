package repotypes

// EntryFilter selects entries of one session. Zero fields do not filter;
// Limit 0 means no limit.
type EntryFilter struct {
	SessionID    string
	Levels       []string
	Search       string
	FailuresOnly bool
	Limit        int
	Offset       int
}
