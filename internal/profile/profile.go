// Package profile stores the local user's display name.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultUsername is used until the user logs in.
const DefaultUsername = "Guest"

// ErrEmptyUsername is returned when logging in with a blank name.
var ErrEmptyUsername = errors.New("username is empty")

// Profile is the content of user_config.json.
type Profile struct {
	Username string `json:"username"`
}

// Load reads the profile at path. A missing or unreadable file, or one
// without a username, yields the guest profile and false.
func Load(path string) (Profile, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{Username: DefaultUsername}, false
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return Profile{Username: DefaultUsername}, false
	}
	p.Username = strings.TrimSpace(p.Username)
	if p.Username == "" {
		return Profile{Username: DefaultUsername}, false
	}
	return p, true
}

// Save writes p to path.
func Save(path string, p Profile) error {
	p.Username = strings.TrimSpace(p.Username)
	if p.Username == "" {
		return ErrEmptyUsername
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create profile dir: %w", err)
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}
