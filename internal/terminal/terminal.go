// Package terminal decides whether console output goes to a person.
package terminal

import (
	"os"

	service "github.com/kardianos/service"
	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether fd refers to a terminal, including Cygwin and
// MSYS pseudo terminals on Windows.
func IsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Interactive reports whether f is a terminal and the process is not running
// under a service manager.
func Interactive(f *os.File) bool {
	if f == nil || !service.Interactive() {
		return false
	}
	return IsTerminal(f.Fd())
}
