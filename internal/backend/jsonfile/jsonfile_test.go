package jsonfile

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/store"
	"todo/internal/task"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")

	s := store.New()
	s.Add("A")
	s.Add("B with \"quotes\" and\nnewline")
	s.Add("")
	require.NoError(t, s.MarkStatus(1, true))

	require.NoError(t, Save(path, s))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s.Tasks(), loaded.Tasks())
}

func TestSave_WireFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	s := store.New(task.Task{Description: "Buy milk", Done: true})

	require.NoError(t, Save(path, s))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "{\n  \"tasks\": [\n    {\n      \"task\": \"Buy milk\",\n      \"done\": true\n    }\n  ]\n}\n"
	assert.Equal(t, want, string(data))
}

func TestSave_EmptyStoreWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, Save(path, store.New()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"tasks":[]}`, string(data))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Zero(t, loaded.Len())
}

func TestSave_OverwritesWholeFile(t *testing.T) {
	path := writeFile(t, `{"tasks":[{"task":"A","done":false},{"task":"B","done":false},{"task":"C","done":false}]}`)

	require.NoError(t, Save(path, store.New(task.New("only"))))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []task.Task{{Description: "only"}}, loaded.Tasks())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestSave_MissingDirectoryFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "tasks.json")
	err := Save(path, store.New(task.New("A")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write task file")
}

func TestLoad_CompactDocument(t *testing.T) {
	path := writeFile(t, `{"tasks":[{"task":"Buy milk","done":false},{"task":"Walk dog","done":true}]}`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []task.Task{
		{Description: "Buy milk"},
		{Description: "Walk dog", Done: true},
	}, s.Tasks())
}

func TestLoad_ToleratesExtraFields(t *testing.T) {
	path := writeFile(t, `{"version":1,"tasks":[{"task":"A","done":false,"note":"x"}]}`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var formatErr *FormatError
	assert.False(t, errors.As(err, &formatErr))
}

func TestLoad_FormatErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"not json", "hello"},
		{"truncated", `{"tasks":[{"task":"A"`},
		{"top-level array", `[]`},
		{"missing tasks", `{}`},
		{"null tasks", `{"tasks":null}`},
		{"tasks not array", `{"tasks":{}}`},
		{"missing done", `{"tasks":[{"task":"A"}]}`},
		{"missing task", `{"tasks":[{"done":true}]}`},
		{"done wrong type", `{"tasks":[{"task":"A","done":"yes"}]}`},
		{"task wrong type", `{"tasks":[{"task":1,"done":false}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.content)

			_, err := Load(path)
			require.Error(t, err)

			var formatErr *FormatError
			require.True(t, errors.As(err, &formatErr), "got %v", err)
			assert.Equal(t, path, formatErr.Path)
			assert.False(t, errors.Is(err, fs.ErrNotExist))
		})
	}
}

func TestOpen_LoadsExisting(t *testing.T) {
	path := writeFile(t, `{"tasks":[{"task":"A","done":true}]}`)

	f := Open(path, nil)
	assert.Equal(t, path, f.Path())
	got, err := f.Get(0)
	require.NoError(t, err)
	assert.Equal(t, task.Task{Description: "A", Done: true}, got)
}

func TestOpen_MissingFileStartsEmpty(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.WarnLevel})

	f := Open(filepath.Join(t.TempDir(), "tasks.json"), logger)
	assert.Zero(t, f.Len())
	assert.Empty(t, buf.String())
}

func TestOpen_MalformedFileStartsEmptyAndWarns(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.WarnLevel})

	f := Open(writeFile(t, "{not json"), logger)
	assert.Zero(t, f.Len())
	assert.Contains(t, buf.String(), "ignoring malformed task file")
}

func TestOpen_UnreadablePathStartsEmpty(t *testing.T) {
	f := Open(t.TempDir(), nil)
	assert.Zero(t, f.Len())
}

func TestFile_SaveThenOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")

	f := Open(path, nil)
	f.Add("A")
	f.Add("B")
	f.Add("C")
	require.NoError(t, f.Remove(1))
	require.NoError(t, f.MarkStatus(1, true))
	require.NoError(t, f.Save())

	reopened := Open(path, nil)
	assert.Equal(t, []task.Task{
		{Description: "A"},
		{Description: "C", Done: true},
	}, reopened.Tasks())
}

func TestFile_SaveError(t *testing.T) {
	f := Open(filepath.Join(t.TempDir(), "missing", "tasks.json"), nil)
	f.Add("A")
	assert.Error(t, f.Save())
}
