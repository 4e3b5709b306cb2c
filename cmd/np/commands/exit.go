package commands

import (
	"fmt"
)

// ExitError ends the command with a status code once its message was already printed
type ExitError struct {
	Code int
	Err  error // Cause, nil when the message was the whole story
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
