package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// Path returns the location of the active log file.
func (l *Logger) Path() string {
	return filepath.Join(l.dir, l.fileName)
}

// Log appends one entry to the log file when file logging is enabled:
//
//	<2006-01-02 15:04:05.000> <SEVERITY> <title>: <message>
//
// The file is opened on first use and rotated before the write if it is
// already larger than the configured size. Failures are printed to the
// console and passed to the error handler; the entry is then dropped.
func (l *Logger) Log(title, message string, severity Severity) {
	if !l.writeToFile {
		return
	}
	entry := l.entry(title, message, severity)

	if err := l.Open(); err != nil {
		l.report(err)
		return
	}
	if l.oversized() {
		if err := l.rotate(); err != nil {
			l.report(err)
			return
		}
	}
	if _, err := io.WriteString(l.file, entry); err != nil {
		l.report(fmt.Errorf("%w %s: %w", ErrWrite, l.Path(), err))
	}
}

// Open opens the log file for appending, creating it if needed. It is a
// no-op when the file is already open.
func (l *Logger) Open() error {
	if l.file != nil {
		return nil
	}
	f, err := os.OpenFile(l.Path(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrFileOpen, l.Path(), err)
	}
	l.file = f
	return nil
}

// Close flushes and closes the log file. A failed flush is printed to the
// console rather than returned. Close on a closed Logger returns nil.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	f := l.file
	l.file = nil
	if err := f.Sync(); err != nil {
		l.Print("Error", fmt.Sprintf("Can't flush log file: %v", err), Error)
	}
	return f.Close()
}

func (l *Logger) entry(title, message string, severity Severity) string {
	var b strings.Builder
	b.Grow(len(LogTimestampFormat) + len(title) + len(message) + 12)
	b.WriteString(l.clock().Format(LogTimestampFormat))
	b.WriteByte(' ')
	b.WriteString(severity.String())
	b.WriteByte(' ')
	b.WriteString(title)
	b.WriteString(": ")
	b.WriteString(message)
	b.WriteByte('\n')
	return b.String()
}

// oversized reports whether the open file is larger than the threshold. A
// file that cannot be stat'ed is treated as small.
func (l *Logger) oversized() bool {
	fi, err := l.file.Stat()
	if err != nil {
		return false
	}
	return fi.Size() > int64(l.maxFileSize)
}

// rotatedPath returns "<log timestamp>.<name>" next to the active file.
func (l *Logger) rotatedPath() string {
	stamp := rotationStamp(l.clock(), runtime.GOOS)
	return filepath.Join(l.dir, stamp+"."+l.fileName)
}

// rotationStamp formats t for a rotated file name on goos. Windows does not
// allow ':' in file names, so it becomes '-' there.
func rotationStamp(t time.Time, goos string) string {
	stamp := t.Format(LogTimestampFormat)
	if goos == "windows" {
		stamp = strings.ReplaceAll(stamp, ":", "-")
	}
	return stamp
}

// rotate renames the current file to its rotated name and opens a fresh
// file at the original path.
func (l *Logger) rotate() error {
	rotated := l.rotatedPath()
	if _, err := os.Lstat(rotated); err == nil {
		return fmt.Errorf("%w: %s already exists", ErrRotation, rotated)
	}

	// Windows refuses to rename an open file.
	_ = l.Close()

	if err := os.Rename(l.Path(), rotated); err != nil {
		return fmt.Errorf("%w: %w", ErrRotation, err)
	}
	if err := l.Open(); err != nil {
		return fmt.Errorf("%w: %w", ErrRotation, err)
	}
	return nil
}

// release drops the open handle so the next Log reopens at the current path.
func (l *Logger) release() {
	_ = l.Close()
}

func (l *Logger) report(err error) {
	l.Print("Error", err.Error(), Error)
	if l.onError != nil {
		l.onError(err)
	}
}
