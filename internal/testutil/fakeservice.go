// Package testutil provides testing utilities.
package testutil

import (
	"todo/internal/store"
	"todo/internal/task"
)

// FakeService is an in-memory implementation of service.Service for testing.
// Saves are counted instead of written anywhere.
type FakeService struct {
	*store.Store

	// SaveErr, when set, is returned by Save.
	SaveErr error

	// Saves counts successful Save calls.
	Saves int

	// Saved holds the tasks as of the last successful Save.
	Saved []task.Task
}

// NewFakeService creates a FakeService holding pending tasks with the given descriptions.
func NewFakeService(descriptions ...string) *FakeService {
	s := store.New()
	for _, d := range descriptions {
		s.Add(d)
	}
	return &FakeService{Store: s}
}

// Save implements service.Service.
func (f *FakeService) Save() error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.Saves++
	f.Saved = f.Tasks()
	return nil
}

// Descriptions returns the current task descriptions in order.
func (f *FakeService) Descriptions() []string {
	out := make([]string, 0, f.Len())
	for _, t := range f.All() {
		out = append(out, t.Description)
	}
	return out
}
