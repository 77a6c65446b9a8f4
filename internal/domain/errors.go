package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrCancelled is returned when the user dismisses a picker or prompt
	ErrCancelled = errors.New("cancelled by user")

	// ErrNoProject is returned when no Clarinet project root could be found
	ErrNoProject = errors.New("Open a Clarity project folder first.")

	// ErrNoContractFiles is returned when the project holds no .clar files
	ErrNoContractFiles = errors.New("No .clar files found in the workspace.")

	// ErrNoFunctions is returned when no function definitions were found
	ErrNoFunctions = errors.New("No functions found in .clar files.")

	// ErrNonInteractive is returned when a prompt is required but disabled
	ErrNonInteractive = errors.New("interactive input not available in non-interactive mode")
)

// IsPrecondition reports whether err is a precondition failure that should be
// shown as a warning rather than an error
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrNoProject) ||
		errors.Is(err, ErrNoContractFiles) ||
		errors.Is(err, ErrNoFunctions)
}

// DefinitionNotFoundError is returned when a selected function's text cannot be extracted
type DefinitionNotFoundError struct {
	Function string
}

func (e DefinitionNotFoundError) Error() string {
	return fmt.Sprintf("could not find function definition for %s", e.Function)
}

// TestFailedError wraps an unexpected failure while testing a function
type TestFailedError struct {
	Err error
}

func (e *TestFailedError) Error() string {
	return fmt.Sprintf("failed to test function: %v", e.Err)
}

func (e *TestFailedError) Unwrap() error {
	return e.Err
}
