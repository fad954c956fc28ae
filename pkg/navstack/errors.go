package navstack

import (
	"errors"
	"fmt"
)

// Sentinel errors for stack conditions.
var (
	// ErrDuplicateID indicates a push or setRoot with an id that is already on the stack.
	// This is a caller error; the stack is left unmodified.
	ErrDuplicateID = errors.New("duplicate screen id")

	// ErrNothingToPop indicates a pop with the stack at its minimum depth, or a popTo
	// target that is missing or already on top.
	ErrNothingToPop = errors.New("nothing to pop")

	// ErrEmptyStack indicates a pop on an IdStack with no entries.
	ErrEmptyStack = errors.New("stack is empty")

	// ErrNotFound indicates a keyed IdStack lookup for an id that is not present.
	ErrNotFound = errors.New("id not found")

	// ErrIndexOutOfRange indicates a positional IdStack lookup outside the stack bounds.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidArgument indicates a command was called with arguments it cannot act on,
	// such as setRoot with no children.
	ErrInvalidArgument = errors.New("invalid argument")
)

// CommandError is reported through a command listener's error channel.
// Kind is one of the sentinel errors above so callers can match with errors.Is,
// Message is the localized, human readable text.
type CommandError struct {
	Op      string // Command that failed (e.g., "push", "popTo")
	Kind    error  // Sentinel describing the failure
	Message string // Localized message
}

func (e *CommandError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Kind != nil {
		return fmt.Sprintf("navstack: %s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("navstack: %s", e.Op)
}

func (e *CommandError) Unwrap() error {
	return e.Kind
}

// NewCommandError creates a new command error.
func NewCommandError(op string, kind error, message string) *CommandError {
	return &CommandError{Op: op, Kind: kind, Message: message}
}

// IsCommandError checks if an error is a command error.
func IsCommandError(err error) bool {
	var cmdErr *CommandError
	return errors.As(err, &cmdErr)
}

// IsDuplicateID checks if an error reports a duplicate screen id.
func IsDuplicateID(err error) bool {
	return errors.Is(err, ErrDuplicateID)
}

// IsNothingToPop checks if an error reports that there was nothing to pop.
func IsNothingToPop(err error) bool {
	return errors.Is(err, ErrNothingToPop)
}
