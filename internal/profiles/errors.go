package profiles

import (
	"fmt"
	"strings"
)

// MalformedProfileError indicates a boundary payload that does not satisfy
// the profile schema and cannot be coerced into a typed profile.
type MalformedProfileError struct {
	Kind    string // "resume" or "job"
	Message string
	Fields  []string
	Cause   error
}

func (e *MalformedProfileError) Error() string {
	msg := fmt.Sprintf("malformed %s profile: %s", e.Kind, e.Message)
	if len(e.Fields) > 0 {
		msg += ": " + strings.Join(e.Fields, "; ")
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *MalformedProfileError) Unwrap() error {
	return e.Cause
}
