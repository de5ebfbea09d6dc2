//go:build windows

package daemon

import (
	"fmt"
	"os"
	"syscall"
)

// Running reports the recorded server and whether its process is alive.
func (f *StateFile) Running() (State, bool) {
	st, err := f.Load()
	if err != nil {
		return State{}, false
	}
	proc, err := os.FindProcess(st.PID)
	if err != nil {
		return st, false
	}
	// FindProcess always succeeds on Windows.
	return st, proc.Signal(syscall.Signal(0)) == nil
}

// Stop terminates the recorded server. Windows has no SIGTERM, so the
// process is killed.
func (f *StateFile) Stop() error {
	st, err := f.Load()
	if err != nil {
		return fmt.Errorf("read state file: %w", err)
	}
	proc, err := os.FindProcess(st.PID)
	if err != nil {
		return fmt.Errorf("find process %d: %w", st.PID, err)
	}
	return proc.Kill()
}
