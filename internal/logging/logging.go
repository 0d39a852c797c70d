// Package logging prints colored messages to the console and appends plain
// entries to a log file that is rotated once it grows past a size threshold.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"time"

	"github.com/palog/palog/internal/terminal"
)

// Defaults applied by New.
const (
	DefaultLogFilePath            = "application.log"
	DefaultMaxFileSize     uint32 = 10_000_000
	DefaultConsoleTimestampFormat = "02.01.2006 15:04:05"

	// LogTimestampFormat stamps file entries and rotated file names.
	LogTimestampFormat = "2006-01-02 15:04:05.000"
)

// Configuration errors, returned by the setters.
var (
	ErrInvalidFileName = errors.New("invalid log file name")
	ErrInvalidSize     = errors.New("invalid max file size")
	ErrInvalidFormat   = errors.New("invalid timestamp format")
)

// Runtime errors. Log reports them on the console and to the error handler.
var (
	ErrFileOpen = errors.New("cannot open log file")
	ErrRotation = errors.New("cannot rotate log file")
	ErrWrite    = errors.New("cannot write log file")
)

var validFileName = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Logger writes to the console and, when enabled, to a rotating log file.
// Build one with New; a zero Logger prints to stdout and has file logging
// off. A Logger is not safe for concurrent use.
type Logger struct {
	writeToFile     bool
	fileName        string
	dir             string
	maxFileSize     uint32
	timestampFormat string

	console io.Writer
	color   bool
	onError func(error)
	now     func() time.Time

	file *os.File
}

// New returns a Logger with file logging enabled, writing application.log in
// the working directory.
func New() *Logger {
	return &Logger{
		writeToFile:     true,
		fileName:        DefaultLogFilePath,
		maxFileSize:     DefaultMaxFileSize,
		timestampFormat: DefaultConsoleTimestampFormat,
		console:         os.Stdout,
		color:           terminal.Interactive(os.Stdout),
		now:             time.Now,
	}
}

// SetFileLoggingEnabled turns file logging on or off.
func (l *Logger) SetFileLoggingEnabled(enabled bool) {
	l.writeToFile = enabled
}

// FileLoggingEnabled reports whether Log writes to the file.
func (l *Logger) FileLoggingEnabled() bool {
	return l.writeToFile
}

// SetLogFilePath sets the log file name. Only letters, digits, '.', '_' and
// '-' are accepted.
func (l *Logger) SetLogFilePath(name string) error {
	if !validFileName.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidFileName, name)
	}
	if name != l.fileName {
		l.release()
	}
	l.fileName = name
	return nil
}

// LogFilePath returns the configured log file name.
func (l *Logger) LogFilePath() string {
	return l.fileName
}

// SetLogDir sets the directory holding the log file and its rotated copies.
// An empty dir means the working directory.
func (l *Logger) SetLogDir(dir string) {
	if dir != l.dir {
		l.release()
	}
	l.dir = dir
}

// LogDir returns the configured log directory.
func (l *Logger) LogDir() string {
	return l.dir
}

// SetMaxFileSize sets the size in bytes above which the file is rotated.
func (l *Logger) SetMaxFileSize(bytes uint32) error {
	if bytes == 0 {
		return fmt.Errorf("%w: size must be greater than zero", ErrInvalidSize)
	}
	l.maxFileSize = bytes
	return nil
}

// MaxFileSize returns the rotation threshold in bytes.
func (l *Logger) MaxFileSize() uint32 {
	return l.maxFileSize
}

// SetConsoleTimestampFormat sets the time layout used by Print. The layout
// is not checked beyond being non-empty.
func (l *Logger) SetConsoleTimestampFormat(format string) error {
	if format == "" {
		return fmt.Errorf("%w: format is empty", ErrInvalidFormat)
	}
	l.timestampFormat = format
	return nil
}

// ConsoleTimestampFormat returns the time layout used by Print.
func (l *Logger) ConsoleTimestampFormat() string {
	return l.timestampFormat
}

// SetConsole redirects console output. A nil writer discards it.
func (l *Logger) SetConsole(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	l.console = w
}

// SetColor enables or disables ANSI styling of titles.
func (l *Logger) SetColor(enabled bool) {
	l.color = enabled
}

// ColorEnabled reports whether titles are styled.
func (l *Logger) ColorEnabled() bool {
	return l.color
}

func (l *Logger) clock() time.Time {
	if l.now == nil {
		return time.Now()
	}
	return l.now()
}

func (l *Logger) out() io.Writer {
	if l.console == nil {
		return os.Stdout
	}
	return l.console
}

// SetErrorHandler registers fn to receive runtime file errors in addition to
// the console report. A nil fn removes the handler.
func (l *Logger) SetErrorHandler(fn func(error)) {
	l.onError = fn
}
