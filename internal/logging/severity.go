package logging

import (
	"fmt"
	"strings"
)

// Severity classifies a message. It picks the console color of the title and
// the label written to the log file.
type Severity uint8

// Severities.
const (
	Success Severity = iota
	Error
	Warn
	Info
	Debug
	Trace
)

// ANSI escape sequences for bold colored titles.
const (
	ansiReset   = "\033[0m"
	ansiRed     = "\033[1;31m"
	ansiGreen   = "\033[1;32m"
	ansiYellow  = "\033[1;33m"
	ansiBlue    = "\033[1;34m"
	ansiMagenta = "\033[1;35m"
	ansiWhite   = "\033[1;37m"
)

var severityLabels = [...]string{
	Success: "SUCCESS",
	Error:   "ERROR",
	Warn:    "WARN",
	Info:    "INFO",
	Debug:   "DEBUG",
	Trace:   "TRACE",
}

var severityStyles = [...]string{
	Success: ansiGreen,
	Error:   ansiRed,
	Warn:    ansiYellow,
	Info:    ansiWhite,
	Debug:   ansiBlue,
	Trace:   ansiMagenta,
}

// String returns the uppercase label used in log file entries.
func (s Severity) String() string {
	if int(s) < len(severityLabels) {
		return severityLabels[s]
	}
	return fmt.Sprintf("Severity(%d)", uint8(s))
}

func (s Severity) style() string {
	if int(s) < len(severityStyles) {
		return severityStyles[s]
	}
	return ansiWhite
}

// ParseSeverity maps a label such as "warn" or "SUCCESS" to its Severity.
func ParseSeverity(label string) (Severity, error) {
	for i, l := range severityLabels {
		if strings.EqualFold(l, label) {
			return Severity(i), nil
		}
	}
	return 0, fmt.Errorf("unknown severity %q", label)
}
