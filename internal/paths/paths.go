// Package paths resolves the per-user locations focusstation reads and writes.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "focusstation"

// HomeDir returns the current user's home directory.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return home, nil
}

// DefaultConfigDir returns the directory holding config.toml.
func DefaultConfigDir() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", appName), nil
}

// DefaultDataDir returns the directory holding the task list, the profile
// and the offline session log.
func DefaultDataDir() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".local", "share", appName), nil
}

// DefaultTasksPath returns the location of user_tasks.json.
func DefaultTasksPath() (string, error) {
	return inDataDir("user_tasks.json")
}

// DefaultProfilePath returns the location of user_config.json.
func DefaultProfilePath() (string, error) {
	return inDataDir("user_config.json")
}

// DefaultSessionsPath returns the session log used when no remote URL is
// configured.
func DefaultSessionsPath() (string, error) {
	return inDataDir("sessions.json")
}

// ResolveWithDefault returns override when set, otherwise the result of
// fallback.
func ResolveWithDefault(override string, fallback func() (string, error)) (string, error) {
	if override != "" {
		return override, nil
	}
	return fallback()
}

func inDataDir(name string) (string, error) {
	dir, err := DefaultDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
