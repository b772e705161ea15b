package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/cadence/internal/logger"
)

var (
	// ErrUnauthenticated is returned by mutations when no owner identity is available
	ErrUnauthenticated = stderrors.New("not authenticated")
	// ErrNotFoundOrUnauthorized covers both a missing id and an id owned by someone else
	ErrNotFoundOrUnauthorized = stderrors.New("not found or unauthorized")
	// ErrDuplicateName is returned when an owner already has a category with the same name
	ErrDuplicateName = stderrors.New("category with this name already exists")
	// ErrReferentialConflict is returned when deleting a category that tasks still reference
	ErrReferentialConflict = stderrors.New("category is still referenced by tasks")
	// ErrInvalidInput is returned for malformed dates, times, recurrences or blank names
	ErrInvalidInput = stderrors.New("invalid input")
)

// Exit codes for the error taxonomy. Anything else exits with 1.
const (
	ExitUnauthenticated = 2
	ExitNotFound        = 3
	ExitConflict        = 4
	ExitInvalidInput    = 5
)

// ExitCode maps err onto a process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case stderrors.Is(err, ErrUnauthenticated):
		return ExitUnauthenticated
	case stderrors.Is(err, ErrNotFoundOrUnauthorized):
		return ExitNotFound
	case stderrors.Is(err, ErrDuplicateName), stderrors.Is(err, ErrReferentialConflict):
		return ExitConflict
	case stderrors.Is(err, ErrInvalidInput):
		return ExitInvalidInput
	default:
		return 1
	}
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with the code mapped by ExitCode
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(ExitCode(err))
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
