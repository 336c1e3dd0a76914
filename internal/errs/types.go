package errs

import "fmt"

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type ValidationError struct {
	ErrorMessage
}

// UnknownToolError is raised when the model asks for a tool that was not
// offered to it.
type UnknownToolError struct {
	ErrorMessage
	Tool string
}

type ToolRoundsExceededError struct {
	ErrorMessage
	Rounds int
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewUnknownToolError(tool string) *UnknownToolError {
	return &UnknownToolError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("model requested unknown tool: %s", tool)},
		Tool:         tool,
	}
}

func NewToolRoundsExceededError(rounds int) *ToolRoundsExceededError {
	return &ToolRoundsExceededError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("model still calling tools after %d rounds", rounds)},
		Rounds:       rounds,
	}
}
