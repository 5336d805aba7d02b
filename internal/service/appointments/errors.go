package appointments

import "fmt"

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

// ConflictError is returned by Create when the candidate's time window
// overlaps an existing non-cancelled appointment for the same doctor on the
// same day. It carries the doctor's name for display.
type ConflictError struct {
	Doctor string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("time conflict detected for %s", e.Doctor)
}
