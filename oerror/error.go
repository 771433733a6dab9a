package oerror

import "fmt"

// Error is the error type returned by strider when a component cannot be set up. Frame updates never
// return errors: every physical edge case is handled as a state instead.
type Error struct {
	Err string
}

// New returns a new *Error with a message formatted from the format and args passed.
func New(format string, args ...interface{}) *Error {
	return &Error{Err: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Err
}
