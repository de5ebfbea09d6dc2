//go:build !windows

package daemon

import (
	"fmt"
	"syscall"
)

// Running reports the recorded server and whether its process is alive.
func (f *StateFile) Running() (State, bool) {
	st, err := f.Load()
	if err != nil {
		return State{}, false
	}
	// Signal 0 checks for the process without delivering anything.
	return st, syscall.Kill(st.PID, 0) == nil
}

// Stop asks the recorded server to shut down gracefully.
func (f *StateFile) Stop() error {
	st, err := f.Load()
	if err != nil {
		return fmt.Errorf("read state file: %w", err)
	}
	return syscall.Kill(st.PID, syscall.SIGTERM)
}
