package logging

import (
	"io"
	"strings"
)

// Print writes one line to the console:
//
//	[ <timestamp> ] <title> <message>
//
// The title is styled by severity when color is enabled. With an empty title
// the line is "[ <timestamp> ] <message>". Console write errors are ignored.
func (l *Logger) Print(title, message string, severity Severity) {
	var b strings.Builder
	b.Grow(len(title) + len(message) + 48)

	b.WriteString("[ ")
	b.WriteString(l.clock().Format(l.timestampFormat))
	b.WriteString(" ] ")
	if title != "" {
		if l.color {
			b.WriteString(severity.style())
			b.WriteString(title)
			b.WriteString(ansiReset)
		} else {
			b.WriteString(title)
		}
		b.WriteByte(' ')
	}
	b.WriteString(message)
	b.WriteByte('\n')

	_, _ = io.WriteString(l.out(), b.String())
}

// PrintAndLog calls Print and then Log with the same arguments.
func (l *Logger) PrintAndLog(title, message string, severity Severity) {
	l.Print(title, message, severity)
	l.Log(title, message, severity)
}
