// Package classifier recognizes test-log files by name.
//
// A test-log file is named <TestName>_ID_<N>---<Y>.html. The session key is
// <TestName>_ID_<N>, Y is the file's sequence index within the session.
// Matching is case-sensitive; anything else is not a test log.
package classifier

import (
	"regexp"
	"strconv"
	"strings"
)

const idMarker = "_ID_"

// The greedy prefix makes the suffix the last "---<digits>.html".
var suffixRe = regexp.MustCompile(`^(.*)---(\d+)\.html$`)

type Result struct {
	SessionKey    string
	SequenceIndex int
}

// Classify returns the session key and sequence index encoded in filename,
// or false when filename is not a test-log file.
func Classify(filename string) (Result, bool) {
	m := suffixRe.FindStringSubmatch(filename)
	if m == nil {
		return Result{}, false
	}
	key, seq := m[1], m[2]

	// The first _ID_ after a non-empty test name must precede a non-empty
	// run id.
	pos := strings.Index(key[min(1, len(key)):], idMarker)
	if pos < 0 {
		return Result{}, false
	}
	pos++
	if pos+len(idMarker) >= len(key) {
		return Result{}, false
	}

	idx, err := strconv.Atoi(seq)
	if err != nil {
		return Result{}, false
	}

	return Result{SessionKey: key, SequenceIndex: idx}, true
}

// IsTestLog reports whether filename classifies.
func IsTestLog(filename string) bool {
	_, ok := Classify(filename)
	return ok
}
