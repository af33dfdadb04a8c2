package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/task"
)

func descriptions(s *Store) []string {
	var out []string
	for _, t := range s.All() {
		out = append(out, t.Description)
	}
	return out
}

func TestAdd_AppendsPendingTasks(t *testing.T) {
	s := New()
	for i, desc := range []string{"A", "B", "", "D"} {
		s.Add(desc)
		require.Equal(t, i+1, s.Len())

		got, err := s.Get(i)
		require.NoError(t, err)
		assert.Equal(t, desc, got.Description)
		assert.False(t, got.Done)
	}
}

func TestAll_BuyMilkScenario(t *testing.T) {
	s := New()
	s.Add("Buy milk")

	type row struct {
		index  int
		desc   string
		status task.Status
	}
	var rows []row
	for i, tk := range s.All() {
		rows = append(rows, row{i, tk.Description, tk.Status()})
	}
	assert.Equal(t, []row{{0, "Buy milk", task.Pending}}, rows)
}

func TestAll_RestartableAndStoppable(t *testing.T) {
	s := New(task.New("A"), task.New("B"), task.New("C"))

	assert.Equal(t, []string{"A", "B", "C"}, descriptions(s))
	assert.Equal(t, []string{"A", "B", "C"}, descriptions(s))

	var first []string
	for _, tk := range s.All() {
		first = append(first, tk.Description)
		break
	}
	assert.Equal(t, []string{"A"}, first)
}

func TestAll_EmptyStore(t *testing.T) {
	var s Store
	n := 0
	for range s.All() {
		n++
	}
	assert.Zero(t, n)
}

func TestNew_CopiesInput(t *testing.T) {
	in := []task.Task{task.New("A")}
	s := New(in...)
	in[0].Description = "changed"

	got, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Description)
}

func TestTasks_ReturnsCopy(t *testing.T) {
	s := New(task.New("A"))
	out := s.Tasks()
	out[0].Done = true

	got, _ := s.Get(0)
	assert.False(t, got.Done)
}

func TestMarkStatus_DoneScenario(t *testing.T) {
	s := New()
	s.Add("Buy milk")

	require.NoError(t, s.MarkStatus(0, true))

	got, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", got.Description)
	assert.Equal(t, task.Done, got.Status())

	require.NoError(t, s.MarkStatus(0, false))
	got, _ = s.Get(0)
	assert.Equal(t, task.Pending, got.Status())
}

func TestRemove_ShiftsLaterTasks(t *testing.T) {
	s := New(task.New("A"), task.New("B"), task.New("C"))

	require.NoError(t, s.Remove(1))
	assert.Equal(t, []string{"A", "C"}, descriptions(s))
	assert.Equal(t, 2, s.Len())
}

func TestRemove_FirstAndLast(t *testing.T) {
	s := New(task.New("A"), task.New("B"), task.New("C"), task.New("D"))
	require.NoError(t, s.MarkStatus(3, true))

	require.NoError(t, s.Remove(0))
	assert.Equal(t, []string{"B", "C", "D"}, descriptions(s))

	got, _ := s.Get(2)
	assert.True(t, got.Done)

	require.NoError(t, s.Remove(2))
	assert.Equal(t, []string{"B", "C"}, descriptions(s))
}

func TestEdit_ChangesOnlyDescriptionAtIndex(t *testing.T) {
	s := New(task.New("A"), task.New("B"), task.New("C"))
	require.NoError(t, s.MarkStatus(1, true))

	require.NoError(t, s.Edit(1, "B2"))

	assert.Equal(t, []string{"A", "B2", "C"}, descriptions(s))
	got, _ := s.Get(1)
	assert.True(t, got.Done)
	for _, i := range []int{0, 2} {
		other, _ := s.Get(i)
		assert.False(t, other.Done)
	}
}

func TestIndexOps_OutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		tasks []task.Task
		index int
	}{
		{"empty store", nil, 0},
		{"one past end", []task.Task{task.New("Buy milk")}, 1},
		{"far past end", []task.Task{task.New("Buy milk")}, 5},
		{"negative", []task.Task{task.New("Buy milk")}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.tasks...)
			before := s.Tasks()

			_, err := s.Get(tt.index)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
			assert.ErrorIs(t, s.Remove(tt.index), ErrIndexOutOfRange)
			assert.ErrorIs(t, s.MarkStatus(tt.index, true), ErrIndexOutOfRange)
			assert.ErrorIs(t, s.Edit(tt.index, "x"), ErrIndexOutOfRange)

			assert.Equal(t, before, s.Tasks())
		})
	}
}

func TestIndexError_Details(t *testing.T) {
	s := New(task.New("A"))
	err := s.Remove(5)

	var ie *IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 5, ie.Index)
	assert.Equal(t, 1, ie.Len)
	assert.Equal(t, "index 5 out of range [0, 1)", err.Error())
}
