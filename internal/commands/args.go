package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"todo/internal/exitcode"
	"todo/internal/service"
	"todo/internal/store"
)

var (
	// ErrIndexRequired indicates no index argument was provided.
	ErrIndexRequired = errors.New("index required")

	// ErrInvalidIndex indicates the index argument is not a non-negative integer.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrStatusRequired indicates no status argument was provided.
	ErrStatusRequired = errors.New("status required")

	// ErrInvalidStatus indicates the status argument is neither "true" nor "false".
	ErrInvalidStatus = errors.New("invalid status")
)

// ParseIndex parses a 0-based task index.
// Only non-negative base-10 integers are accepted.
func ParseIndex(arg string) (int, error) {
	if arg == "" {
		return 0, ErrIndexRequired
	}
	if !isAllDigits(arg) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidIndex, arg)
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidIndex, arg)
	}
	return n, nil
}

// ParseStatus parses a completion status. Only "true" and "false" are accepted.
func ParseStatus(arg string) (bool, error) {
	switch arg {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "":
		return false, ErrStatusRequired
	default:
		return false, fmt.Errorf("%w: %s", ErrInvalidStatus, arg)
	}
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// argAt returns args[i], or "" when absent.
func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// joinText joins words into a single description.
func joinText(args []string) string {
	return strings.Join(args, " ")
}

// parseIndexArg parses args[0] as an index and reports failures on errOut.
func parseIndexArg(args []string, errOut io.Writer) (int, bool) {
	index, err := ParseIndex(argAt(args, 0))
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return 0, false
	}
	return index, true
}

// handleStoreErr reports an error from an index-taking store operation.
// An out-of-range index is a user-facing notice, not a failure.
func handleStoreErr(err error, out, errOut io.Writer) int {
	if errors.Is(err, store.ErrIndexOutOfRange) {
		fmt.Fprintln(out, "Invalid index")
		return exitcode.Success
	}
	fmt.Fprintf(errOut, "error: %v\n", err)
	return exitcode.StorageError
}

// save persists the store after a mutation.
func save(svc service.Service, errOut io.Writer) int {
	if err := svc.Save(); err != nil {
		fmt.Fprintf(errOut, "error: save failed: %v\n", err)
		return exitcode.StorageError
	}
	return exitcode.Success
}
