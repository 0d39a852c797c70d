//go:build !windows

package eventlog

import "github.com/palog/palog/internal/logging"

// Write drops the message outside Windows.
func Write(severity logging.Severity, eventID uint32, message string) error {
	return nil
}

// Install returns ErrUnsupported outside Windows.
func Install() error {
	return ErrUnsupported
}
