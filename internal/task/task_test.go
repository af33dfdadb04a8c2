package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_IsPending(t *testing.T) {
	for _, desc := range []string{"Buy milk", "", "  multi\nline  "} {
		tk := New(desc)
		assert.Equal(t, desc, tk.Description)
		assert.False(t, tk.Done)
		assert.Equal(t, Pending, tk.Status())
	}
}

func TestMarkDoneUndone_RoundTrip(t *testing.T) {
	tk := New("Buy milk")

	tk.MarkDone()
	assert.True(t, tk.Done)
	assert.Equal(t, Done, tk.Status())

	tk.MarkUndone()
	assert.False(t, tk.Done)
	assert.Equal(t, Pending, tk.Status())
}

func TestMarkDone_Idempotent(t *testing.T) {
	tk := New("x")
	tk.MarkDone()
	tk.MarkDone()
	assert.True(t, tk.Done)

	tk.MarkUndone()
	tk.MarkUndone()
	assert.False(t, tk.Done)
}

func TestEditDescription_KeepsStatus(t *testing.T) {
	tk := New("old")
	tk.MarkDone()

	tk.EditDescription("new")
	assert.Equal(t, "new", tk.Description)
	assert.True(t, tk.Done)

	tk.EditDescription("")
	assert.Equal(t, "", tk.Description)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "not done", Pending.String())
	assert.Equal(t, "done", Done.String())
}
