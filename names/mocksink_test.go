package names

import (
	"errors"
	"fmt"
)

type mockSink struct {
	data          []byte
	exists        bool
	failNextRead  bool
	failNextWrite bool

	// failReadAfterWrite makes the first read following the next successful write fail.
	failReadAfterWrite bool
	writes        int
	closed        bool
}

var errForgedError = errors.New("forged")

func (s *mockSink) Read() ([]byte, error) {
	if s.failNextRead {
		s.failNextRead = false
		return nil, errForgedError
	}

	if !s.exists {
		return nil, ErrNotFound
	}

	return s.data, nil
}

func (s *mockSink) Write(b []byte) error {
	if s.failNextWrite {
		s.failNextWrite = false
		return errForgedError
	}

	if s.failReadAfterWrite {
		s.failReadAfterWrite = false
		s.failNextRead = true
	}

	s.data = append([]byte(nil), b...)
	s.exists = true
	s.writes++
	return nil
}

func (s *mockSink) Close() { s.closed = true }

type mockLogger struct {
	errors []string
}

func (l *mockLogger) Debug(string, ...any) {}
func (l *mockLogger) Info(string, ...any)  {}
func (l *mockLogger) Warn(string, ...any)  {}

func (l *mockLogger) Error(msg string, args ...any) {
	l.errors = append(l.errors, fmt.Sprint(append([]any{msg}, args...)...))
}
