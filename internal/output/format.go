// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/task"
)

// FormatTask formats a task line for the list command.
// Format: "{INDEX}: {DESCRIPTION} ({STATUS})\n"
func FormatTask(w io.Writer, index int, t task.Task) {
	fmt.Fprintf(w, "%d: %s (%s)\n", index, normalizeDescription(t.Description), t.Status())
}

// FormatTaskDetail formats a single task for the get command.
// Format: "Task {INDEX}: {DESCRIPTION} ({STATUS})\n"
func FormatTaskDetail(w io.Writer, index int, t task.Task) {
	fmt.Fprintf(w, "Task %d: %s (%s)\n", index, normalizeDescription(t.Description), t.Status())
}

// normalizeDescription keeps each task on one output line.
// The stored description is left untouched.
func normalizeDescription(desc string) string {
	desc = strings.ReplaceAll(desc, "\r\n", " ")
	desc = strings.ReplaceAll(desc, "\r", " ")
	return strings.ReplaceAll(desc, "\n", " ")
}
