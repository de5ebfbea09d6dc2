// Package daemon tracks the running API server so that other gedref
// invocations can find and stop it.
package daemon

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// State describes a running server.
type State struct {
	PID  int
	Port int
}

// StateFile is the file a server writes while it is listening.
type StateFile struct {
	Path string
}

// NewStateFile returns a state file at path.
func NewStateFile(path string) *StateFile {
	return &StateFile{Path: path}
}

// Save records the current process as serving on port.
func (f *StateFile) Save(port int) error {
	return f.SaveState(State{PID: os.Getpid(), Port: port})
}

// SaveState writes st to the file.
func (f *StateFile) SaveState(st State) error {
	return os.WriteFile(f.Path, []byte(fmt.Sprintf("%d %d\n", st.PID, st.Port)), 0o644)
}

// Load reads the recorded state.
func (f *StateFile) Load() (State, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return State{}, err
	}
	fields := strings.Fields(string(data))
	if len(fields) != 2 {
		return State{}, fmt.Errorf("invalid state file %s: want \"PID PORT\"", f.Path)
	}
	pid, err := strconv.Atoi(fields[0])
	if err != nil {
		return State{}, fmt.Errorf("invalid state file pid: %w", err)
	}
	port, err := strconv.Atoi(fields[1])
	if err != nil {
		return State{}, fmt.Errorf("invalid state file port: %w", err)
	}
	return State{PID: pid, Port: port}, nil
}

// Remove deletes the file. A missing file is not an error.
func (f *StateFile) Remove() error {
	if err := os.Remove(f.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
