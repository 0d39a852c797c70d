// Package eventlog mirrors logger messages into the Windows event log. On
// other platforms writes are dropped.
package eventlog

import (
	"errors"

	"github.com/palog/palog/internal/logging"
)

// Source is the event source name registered by Install.
const Source = "Palog"

// ErrUnsupported is returned by Install outside Windows.
var ErrUnsupported = errors.New("event log not supported on this platform")

// writeEvent is Write; tests replace it to observe Mirror.
var writeEvent = Write

// Mirror returns a logging error handler that records each runtime file
// failure as an error event with the given ID.
func Mirror(eventID uint32) func(error) {
	return func(err error) {
		_ = writeEvent(logging.Error, eventID, err.Error())
	}
}
