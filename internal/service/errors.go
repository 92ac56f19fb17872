package service

import "fmt"

var (
	ErrCannotPersistSession = fmt.Errorf("cannot persist session")
	ErrDuplicateSequence    = fmt.Errorf("duplicate sequence index")

	ErrSessionNotFound     = fmt.Errorf("session not found")
	ErrEntryNotFound       = fmt.Errorf("log entry not found")
	ErrBookmarkNotFound    = fmt.Errorf("bookmark not found")
	ErrBookmarkExists      = fmt.Errorf("entry already has a bookmark")
	ErrCannotLoadSession   = fmt.Errorf("cannot load session")
	ErrCannotLoadEntries   = fmt.Errorf("cannot load entries")
	ErrCannotSaveBookmark  = fmt.Errorf("cannot save bookmark")
	ErrCannotDeleteSession = fmt.Errorf("cannot delete session")
)
