// Package logging provides session-based diagnostics for the chunking core.
// It enables clean summary output while preserving detailed per-walk logs in
// a session file, the way the teacher's session logger separates debug
// detail from user-facing console output.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// SessionLogger writes verbose diagnostics (content-walk entry/exit, abort
// and split-restart events, chunk-group assembly milestones) to a session
// file, and mirrors terse milestones to the console unless quietMode is set.
type SessionLogger struct {
	mu          sync.Mutex
	sessionFile *os.File
	sessionPath string
	quietMode   bool
}

// New creates a session logger writing into logDir.
func New(logDir string, quietMode bool) (*SessionLogger, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("logging: failed to create session directory: %w", err)
	}

	sessionID := time.Now().Format("20060102-150405")
	sessionPath := filepath.Join(logDir, fmt.Sprintf("chunkgraph-%s.log", sessionID))

	file, err := os.OpenFile(sessionPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: failed to create session file: %w", err)
	}

	l := &SessionLogger{sessionFile: file, sessionPath: sessionPath, quietMode: quietMode}
	l.writeToFile("=== chunkgraph session %s started ===\n", sessionID)
	return l, nil
}

// SessionPath returns the path of the session log file.
func (l *SessionLogger) SessionPath() string {
	return l.sessionPath
}

// Debug writes a detail line to the session file only.
func (l *SessionLogger) Debug(format string, args ...any) {
	l.writeToFile(format+"\n", args...)
}

// Info writes a milestone to the session file and, unless quiet, the
// console.
func (l *SessionLogger) Info(format string, args ...any) {
	l.writeToFile(format+"\n", args...)
	if !l.quietMode {
		fmt.Printf(format+"\n", args...)
	}
}

// Error always reaches the console, quiet or not, as well as the session
// file.
func (l *SessionLogger) Error(format string, args ...any) {
	l.writeToFile("ERROR: "+format+"\n", args...)
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
}

func (l *SessionLogger) writeToFile(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.sessionFile, format, args...)
}

// Close flushes and closes the session file.
func (l *SessionLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sessionFile.Close()
}

var _ io.Closer = (*SessionLogger)(nil)
