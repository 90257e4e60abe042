package multitag

import "fmt"

type logEntry struct {
	level, msg string
	args       []any
}

type mockLogger struct {
	entries []logEntry
}

func (l *mockLogger) add(level, msg string, args []any) {
	l.entries = append(l.entries, logEntry{level: level, msg: msg, args: args})
}

func (l *mockLogger) Debug(msg string, args ...any) { l.add("debug", msg, args) }
func (l *mockLogger) Info(msg string, args ...any)  { l.add("info", msg, args) }
func (l *mockLogger) Warn(msg string, args ...any)  { l.add("warn", msg, args) }
func (l *mockLogger) Error(msg string, args ...any) { l.add("error", msg, args) }

func (l *mockLogger) count(level string) int {
	var n int
	for _, e := range l.entries {
		if e.level == level {
			n++
		}
	}

	return n
}

func (l *mockLogger) String() string {
	return fmt.Sprint(l.entries)
}

type object struct {
	name   string
	parent *object
}

func (o *object) String() string { return o.name }

func parentOf(o *object) (*object, bool) {
	return o.parent, o.parent != nil
}

func newTestIndex() (*Index[*object], *mockLogger) {
	l := &mockLogger{}
	return NewIndex[*object](Options{Logger: l}), l
}
