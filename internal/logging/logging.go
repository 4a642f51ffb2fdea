// Package logging holds the converter's run record. Every conversion returns
// a Log: the ordered sequence of leveled entries produced while it ran. The
// CLI decides its exit code from the presence of Error entries; library
// callers can inspect the entries directly.
package logging

import "fmt"

// Level is the severity of a log entry.
type Level string

const (
	LevelTrace   Level = "trace"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Entry is one recorded message. Entries are never removed or reordered.
type Entry struct {
	Level   Level
	Message string
}

// Sink receives log messages as they are recorded, for live diagnostics.
// github.com/goliatone/go-logger loggers satisfy this interface directly.
type Sink interface {
	Trace(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Log is an append-only run record, optionally teeing entries to a live
// sink. A nil sink is valid and simply records.
type Log struct {
	entries []Entry
	sink    Sink
}

// New creates an empty log teeing to sink. Sink may be nil.
func New(sink Sink) *Log {
	return &Log{sink: sink}
}

// Tracef records a Trace entry.
func (l *Log) Tracef(format string, args ...any) {
	l.append(LevelTrace, format, args...)
	if l.sink != nil {
		l.sink.Trace(fmt.Sprintf(format, args...))
	}
}

// Infof records an Info entry.
func (l *Log) Infof(format string, args ...any) {
	l.append(LevelInfo, format, args...)
	if l.sink != nil {
		l.sink.Info(fmt.Sprintf(format, args...))
	}
}

// Warningf records a Warning entry.
func (l *Log) Warningf(format string, args ...any) {
	l.append(LevelWarning, format, args...)
	if l.sink != nil {
		l.sink.Warn(fmt.Sprintf(format, args...))
	}
}

// Errorf records an Error entry. Recording an error does not stop
// processing; callers decide whether to abort.
func (l *Log) Errorf(format string, args ...any) {
	l.append(LevelError, format, args...)
	if l.sink != nil {
		l.sink.Error(fmt.Sprintf(format, args...))
	}
}

func (l *Log) append(level Level, format string, args ...any) {
	l.entries = append(l.entries, Entry{Level: level, Message: fmt.Sprintf(format, args...)})
}

// Entries returns the recorded entries in order.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// HasErrors reports whether any Error entry was recorded.
func (l *Log) HasErrors() bool {
	for _, e := range l.entries {
		if e.Level == LevelError {
			return true
		}
	}
	return false
}
