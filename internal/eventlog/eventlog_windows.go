//go:build windows

package eventlog

import (
	"fmt"

	"golang.org/x/sys/windows/svc/eventlog"

	"github.com/palog/palog/internal/logging"
)

// Write records message under Source. Error and Warn map to the matching
// event types, every other severity to an informational event.
func Write(severity logging.Severity, eventID uint32, message string) error {
	el, err := eventlog.Open(Source)
	if err != nil {
		return fmt.Errorf("open event log %s: %w", Source, err)
	}
	defer el.Close()

	switch severity {
	case logging.Error:
		return el.Error(eventID, message)
	case logging.Warn:
		return el.Warning(eventID, message)
	default:
		return el.Info(eventID, message)
	}
}

// Install registers Source in the registry. Requires administrator rights.
func Install() error {
	return eventlog.InstallAsEventCreate(Source, eventlog.Error|eventlog.Warning|eventlog.Info)
}
