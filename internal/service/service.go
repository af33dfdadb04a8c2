// Package service defines the interface commands use to reach the task store.
package service

import (
	"iter"

	"todo/internal/task"
)

// Service is a loaded task store bound to its persistence location.
// Index-taking methods return an error matching store.ErrIndexOutOfRange
// when the index is outside [0, Len()).
type Service interface {
	// All iterates over (index, task) pairs in insertion order.
	All() iter.Seq2[int, task.Task]

	// Len returns the number of tasks.
	Len() int

	// Get returns the task at index.
	Get(index int) (task.Task, error)

	// Add appends a new pending task.
	Add(description string)

	// Remove deletes the task at index; later tasks shift down by one.
	Remove(index int) error

	// MarkStatus sets the done flag of the task at index.
	MarkStatus(index int, done bool) error

	// Edit replaces the description of the task at index.
	Edit(index int, description string) error

	// Save persists every task, replacing whatever was stored before.
	Save() error
}
