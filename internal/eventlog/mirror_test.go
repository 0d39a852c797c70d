package eventlog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palog/palog/internal/logging"
)

type event struct {
	severity logging.Severity
	id       uint32
	message  string
}

func captureEvents(t *testing.T) *[]event {
	t.Helper()
	var events []event
	orig := writeEvent
	writeEvent = func(severity logging.Severity, eventID uint32, message string) error {
		events = append(events, event{severity, eventID, message})
		return nil
	}
	t.Cleanup(func() { writeEvent = orig })
	return &events
}

func TestMirror_WritesErrorEvent(t *testing.T) {
	events := captureEvents(t)

	Mirror(1001)(errors.New("cannot open log file app.log: permission denied"))

	require.Len(t, *events, 1)
	assert.Equal(t, event{logging.Error, 1001, "cannot open log file app.log: permission denied"}, (*events)[0])
}

func TestMirror_AsLoggerErrorHandler(t *testing.T) {
	events := captureEvents(t)

	l := logging.New()
	l.SetConsole(nil)
	l.SetLogDir(t.TempDir() + "/missing")
	l.SetErrorHandler(Mirror(7))

	l.Log("Test", "hello", logging.Info)

	require.Len(t, *events, 1)
	assert.Equal(t, logging.Error, (*events)[0].severity)
	assert.Equal(t, uint32(7), (*events)[0].id)
	assert.Contains(t, (*events)[0].message, "cannot open log file")
}
