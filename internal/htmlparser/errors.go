package htmlparser

import (
	"errors"
	"fmt"
)

var ErrNotLogTable = errors.New("document has no table rows")

// ParseError means a file is not a log table. It is recoverable: the caller
// drops the file and keeps the rest of its session.
type ParseError struct {
	FileIndex int
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse file %d: %v", e.FileIndex, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
