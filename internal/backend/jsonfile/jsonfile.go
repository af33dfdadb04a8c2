// Package jsonfile persists a task store as a single JSON document.
//
// The file holds the whole task sequence:
//
//	{"tasks":[{"task":"Buy milk","done":false}]}
//
// Every save rewrites the entire document. Nothing is appended or patched.
package jsonfile

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"todo/internal/store"
	"todo/internal/task"
)

//go:embed schema.json
var schemaJSON string

var taskSchema = jsonschema.MustCompileString("tasks.schema.json", schemaJSON)

// document is the on-disk shape of the task file.
type document struct {
	Tasks []entry `json:"tasks"`
}

type entry struct {
	Task string `json:"task"`
	Done bool   `json:"done"`
}

// FormatError reports a task file whose contents are not a valid task document.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed task file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying decode or validation error.
func (e *FormatError) Unwrap() error {
	return e.Err
}

// Load reads the task file at path.
// A missing or unreadable file yields an error wrapping the *fs.PathError;
// contents that fail to parse or validate yield a *FormatError.
func Load(path string) (*store.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}

	doc, err := decode(data)
	if err != nil {
		return nil, &FormatError{Path: path, Err: err}
	}

	tasks := make([]task.Task, len(doc.Tasks))
	for i, e := range doc.Tasks {
		tasks[i] = task.Task{Description: e.Task, Done: e.Done}
	}
	return store.New(tasks...), nil
}

func decode(data []byte) (*document, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if err := taskSchema.Validate(raw); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Save writes every task in s to path, replacing the file in one step.
// The document goes to a temp file in the same directory which is then
// renamed over path, so a failed write never leaves a truncated file.
func Save(path string, s *store.Store) error {
	doc := document{Tasks: make([]entry, 0, s.Len())}
	for _, t := range s.All() {
		doc.Tasks = append(doc.Tasks, entry{Task: t.Description, Done: t.Done})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal task file: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write task file: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write task file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write task file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write task file: %w", err)
	}
	return nil
}

// File is a task store loaded from, and saved back to, one path.
// It implements service.Service.
type File struct {
	*store.Store
	path   string
	logger *log.Logger
}

// Open loads the task file at path. When the file is missing or malformed
// the store starts empty; the next Save replaces whatever was there.
// A malformed file is reported at warn level since its contents are dropped.
func Open(path string, logger *log.Logger) *File {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	f := &File{path: path, logger: logger}

	s, err := Load(path)
	var formatErr *FormatError
	switch {
	case err == nil:
		logger.Debug("loaded tasks", "path", path, "count", s.Len())
		f.Store = s
		return f
	case errors.As(err, &formatErr):
		logger.Warn("ignoring malformed task file", "path", path, "err", formatErr.Err)
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug("no task file, starting empty", "path", path)
	default:
		logger.Debug("cannot read task file, starting empty", "path", path, "err", err)
	}

	f.Store = store.New()
	return f
}

// Path returns the task file location.
func (f *File) Path() string {
	return f.path
}

// Save writes the current tasks to the file's path.
func (f *File) Save() error {
	if err := Save(f.path, f.Store); err != nil {
		return err
	}
	f.logger.Debug("saved tasks", "path", f.path, "count", f.Len())
	return nil
}
