package names

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultPath is used by the file sink when no path is specified.
const DefaultPath = "tag-names.json"

// DefaultKey names the record in the sinks that can hold more than one.
const DefaultKey = "tag-names"

var (
	// ErrNotFound is returned by sinks when the record doesn't exist yet.
	ErrNotFound = errors.New("record not found")

	// ErrUnknownDriver is returned when opening a sink with an unsupported driver name.
	ErrUnknownDriver = errors.New("unknown sink driver")
)

// Sink implementations store the single record of the name cache.
type Sink interface {

	// Read returns the content of the record, or ErrNotFound when it doesn't exist.
	Read() ([]byte, error)

	// Write replaces the content of the record. Implementations should leave the previous content in
	// place when the write fails.
	Write([]byte) error

	// Close releases any resources taken by the sink implementation.
	Close()
}

// FileSink stores the record in a file.
type FileSink struct {
	path string
}

// NewFileSink creates a sink storing the record at path. The file and its directory are created on the
// first write.
func NewFileSink(path string) *FileSink {
	if path == "" {
		path = DefaultPath
	}

	return &FileSink{path: filepath.Clean(path)}
}

// Read returns the content of the file, or ErrNotFound when it doesn't exist.
func (s *FileSink) Read() ([]byte, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	return b, nil
}

// Write writes the record to a temporary file in the same directory, and renames it over the previous
// one.
func (s *FileSink) Write(b []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	f, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temporary file: %w", err)
	}

	tmp := f.Name()
	if _, err := f.Write(b); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", tmp, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}

	return nil
}

// Close does nothing, the file sink holds no open resources.
func (s *FileSink) Close() {}
