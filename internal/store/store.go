// Package store holds the ordered in-memory task collection.
//
// A task's index is its 0-based position in the store. Indices are always
// 0..Len()-1; removing a task shifts every later task down by one.
package store

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"todo/internal/task"
)

// ErrIndexOutOfRange is returned by every index-taking operation when the
// index is outside [0, Len()).
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError describes an out-of-range index.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

// Is reports whether target is ErrIndexOutOfRange.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// Store is an ordered collection of tasks. The zero value is an empty store.
type Store struct {
	tasks []task.Task
}

// New creates a store holding a copy of the given tasks in order.
func New(tasks ...task.Task) *Store {
	return &Store{tasks: slices.Clone(tasks)}
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Tasks returns a copy of all tasks in order.
func (s *Store) Tasks() []task.Task {
	return slices.Clone(s.tasks)
}

// All returns an iterator over (index, task) pairs in current order.
// The iterator can be ranged over any number of times.
func (s *Store) All() iter.Seq2[int, task.Task] {
	return func(yield func(int, task.Task) bool) {
		for i, t := range s.tasks {
			if !yield(i, t) {
				return
			}
		}
	}
}

// Add appends a new pending task.
func (s *Store) Add(description string) {
	s.tasks = append(s.tasks, task.New(description))
}

// Get returns the task at index.
func (s *Store) Get(index int) (task.Task, error) {
	if err := s.check(index); err != nil {
		return task.Task{}, err
	}
	return s.tasks[index], nil
}

// Remove deletes the task at index and shifts later tasks down.
func (s *Store) Remove(index int) error {
	if err := s.check(index); err != nil {
		return err
	}
	s.tasks = slices.Delete(s.tasks, index, index+1)
	return nil
}

// MarkStatus sets the done flag of the task at index.
func (s *Store) MarkStatus(index int, done bool) error {
	if err := s.check(index); err != nil {
		return err
	}
	if done {
		s.tasks[index].MarkDone()
	} else {
		s.tasks[index].MarkUndone()
	}
	return nil
}

// Edit replaces the description of the task at index.
func (s *Store) Edit(index int, description string) error {
	if err := s.check(index); err != nil {
		return err
	}
	s.tasks[index].EditDescription(description)
	return nil
}

func (s *Store) check(index int) error {
	if index < 0 || index >= len(s.tasks) {
		return &IndexError{Index: index, Len: len(s.tasks)}
	}
	return nil
}
