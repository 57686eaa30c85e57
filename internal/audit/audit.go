// Package audit records every attempted file-custody action in an
// append-only, line-oriented log.
package audit

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/safebackup/safebackup/pkg/errclass"
	"github.com/safebackup/safebackup/pkg/fsutil"
	"github.com/safebackup/safebackup/pkg/model"
)

// DefaultPath is the audit log location, relative to the working directory.
const DefaultPath = "logfile.txt"

const fieldSep = ", "

// Recorder appends one entry per action attempt. A non-nil error means the
// trail could not be written and the caller must stop.
type Recorder interface {
	Record(action model.Action, status string) error
}

// FormatEntry renders e as a single log line without the trailing newline.
func FormatEntry(e model.LogEntry) string {
	return e.Timestamp.Format(time.RFC3339Nano) + fieldSep + string(e.Action) + fieldSep + oneLine(e.Status)
}

// ParseEntry parses a line produced by FormatEntry. The status may itself
// contain ", "; only the first two separators split fields.
func ParseEntry(line string) (model.LogEntry, error) {
	parts := strings.SplitN(strings.TrimRight(line, "\r\n"), fieldSep, 3)
	if len(parts) != 3 {
		return model.LogEntry{}, fmt.Errorf("malformed audit line: %q", line)
	}
	ts, err := time.Parse(time.RFC3339Nano, parts[0])
	if err != nil {
		return model.LogEntry{}, fmt.Errorf("parse audit timestamp: %w", err)
	}
	return model.LogEntry{Timestamp: ts, Action: model.Action(parts[1]), Status: parts[2]}, nil
}

// oneLine keeps an entry on a single line whatever the status text holds.
func oneLine(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}

// FileLogger appends entries to a plain-text file. Every Record reopens the
// file, so entries written by other processes are never clobbered.
type FileLogger struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// NewFileLogger creates a new FileLogger writing to path.
func NewFileLogger(path string) *FileLogger {
	if path == "" {
		path = DefaultPath
	}
	return &FileLogger{path: path, now: time.Now}
}

// Path returns the log file location.
func (l *FileLogger) Path() string {
	return l.path
}

// Record appends "<timestamp>, <action>, <status>" to the log.
func (l *FileLogger) Record(action model.Action, status string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := model.LogEntry{Timestamp: l.now(), Action: action, Status: status}
	if err := fsutil.AppendLine(l.path, []byte(FormatEntry(entry)+"\n"), 0644); err != nil {
		return fmt.Errorf("append audit log %s: %w", l.path, err)
	}
	return nil
}

// Probe checks that the log can be opened for append, creating it if absent.
// Nothing is written.
func (l *FileLogger) Probe() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open audit log %s: %w", l.path, err)
	}
	return f.Close()
}

// ReadEntries returns every well-formed entry in the log at path, oldest
// first. A missing log yields no entries.
func ReadEntries(path string) ([]model.LogEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	defer file.Close()

	var entries []model.LogEntry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		e, err := ParseEntry(scanner.Text())
		if err != nil {
			continue // skip malformed lines
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan audit log: %w", err)
	}
	return entries, nil
}

// MemoryLogger keeps entries in memory. Set Err to make Record fail.
type MemoryLogger struct {
	mu      sync.Mutex
	entries []model.LogEntry
	Err     error
}

// NewMemoryLogger creates an empty MemoryLogger.
func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (m *MemoryLogger) Record(action model.Action, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.entries = append(m.entries, model.LogEntry{Timestamp: time.Now(), Action: action, Status: status})
	return nil
}

// Entries returns a copy of the recorded entries.
func (m *MemoryLogger) Entries() []model.LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.LogEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Last returns the most recent entry; ok is false when nothing was recorded.
func (m *MemoryLogger) Last() (entry model.LogEntry, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.entries) == 0 {
		return model.LogEntry{}, false
	}
	return m.entries[len(m.entries)-1], true
}

// Conclude records the terminal status of an action and hands back opErr.
// If the entry cannot be written the audit failure replaces opErr: an
// action that was not audited must not be reported as merely failed or
// succeeded.
func Conclude(rec Recorder, action model.Action, status string, opErr error) error {
	if err := rec.Record(action, status); err != nil {
		return errclass.ErrAuditUnavailable.Wrap(err, fmt.Sprintf("cannot write audit log: %v", err))
	}
	return opErr
}
