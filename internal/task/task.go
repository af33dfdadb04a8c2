// Package task defines a single to-do item.
package task

// Status is the completion state of a task.
type Status int

const (
	// Pending means the task has not been completed.
	Pending Status = iota

	// Done means the task has been completed.
	Done
)

// String returns the display form used in list and get output.
func (s Status) String() string {
	if s == Done {
		return "done"
	}
	return "not done"
}

// Task is one to-do entry. It has no identity beyond its position in a store.
type Task struct {
	Description string
	Done        bool
}

// New creates a pending task. Any description is accepted, including "".
func New(description string) Task {
	return Task{Description: description}
}

// MarkDone marks the task completed.
func (t *Task) MarkDone() {
	t.Done = true
}

// MarkUndone marks the task pending.
func (t *Task) MarkUndone() {
	t.Done = false
}

// EditDescription replaces the description.
func (t *Task) EditDescription(description string) {
	t.Description = description
}

// Status reports whether the task is Pending or Done.
func (t *Task) Status() Status {
	if t.Done {
		return Done
	}
	return Pending
}
