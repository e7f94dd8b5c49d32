// Package errjournal implements the error journal described by the
// compiler design: an append-only record of (message, consequence) pairs
// attached to a single pipeline stage. Stages never raise across
// boundaries; they record entries here and the driver decides whether to
// continue.
package errjournal

import "fmt"

// Severity distinguishes entries that merely note something (Warning)
// from entries that mean the owning stage's output cannot be trusted
// (Error). HasErrors only counts the latter.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Entry is a single recorded failure (or warning) and its downstream effect.
type Entry struct {
	Severity    Severity
	Message     string
	Consequence string
}

func (e Entry) String() string {
	return fmt.Sprintf("%s: %s (consequence: %s)", e.Severity, e.Message, e.Consequence)
}

// Journal collects entries for one stage. The zero value is ready to use.
type Journal struct {
	entries []Entry
}

// New returns an empty journal.
func New() *Journal {
	return &Journal{}
}

// Add records a new error-severity entry.
func (j *Journal) Add(message, consequence string) {
	j.entries = append(j.entries, Entry{Severity: Error, Message: message, Consequence: consequence})
}

// Addf records a new error-severity entry with a formatted message.
func (j *Journal) Addf(consequence, format string, args ...any) {
	j.Add(fmt.Sprintf(format, args...), consequence)
}

// Warn records a warning-severity entry: noted, but does not by itself
// make HasErrors true.
func (j *Journal) Warn(message, consequence string) {
	j.entries = append(j.entries, Entry{Severity: Warning, Message: message, Consequence: consequence})
}

// HasErrors reports whether any error-severity entry has been recorded.
func (j *Journal) HasErrors() bool {
	if j == nil {
		return false
	}
	for _, e := range j.entries {
		if e.Severity == Error {
			return true
		}
	}
	return false
}

// Entries returns the recorded entries, warnings and errors alike, in
// insertion order.
func (j *Journal) Entries() []Entry {
	if j == nil {
		return nil
	}
	return j.entries
}

// Merge appends every entry of other into j, preserving order.
func (j *Journal) Merge(other *Journal) {
	if other == nil {
		return
	}
	j.entries = append(j.entries, other.entries...)
}
