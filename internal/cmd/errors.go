package cmd

import "fmt"

// Exit codes returned through ExitError.
const (
	ExitFailure       = 1
	ExitNoAssignments = 2
)

// ExitError carries a process exit code up to main.
type ExitError struct {
	Code    int
	Message string
}

// NewExitError creates an ExitError.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

func (e *ExitError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Message
}
