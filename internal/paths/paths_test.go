package paths

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestDefaultDirsUseHome(t *testing.T) {
	home := filepath.Join("/tmp", "test-home")
	t.Setenv("HOME", home)

	cases := []struct {
		name string
		fn   func() (string, error)
		want string
	}{
		{name: "home", fn: HomeDir, want: home},
		{name: "config", fn: DefaultConfigDir, want: filepath.Join(home, ".config", "focusstation")},
		{name: "data", fn: DefaultDataDir, want: filepath.Join(home, ".local", "share", "focusstation")},
		{name: "tasks", fn: DefaultTasksPath, want: filepath.Join(home, ".local", "share", "focusstation", "user_tasks.json")},
		{name: "profile", fn: DefaultProfilePath, want: filepath.Join(home, ".local", "share", "focusstation", "user_config.json")},
		{name: "sessions", fn: DefaultSessionsPath, want: filepath.Join(home, ".local", "share", "focusstation", "sessions.json")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fn()
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestResolveWithDefault(t *testing.T) {
	t.Run("returns override when provided", func(t *testing.T) {
		result, err := ResolveWithDefault("/custom/path", DefaultDataDir)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result != "/custom/path" {
			t.Fatalf("expected /custom/path, got %s", result)
		}
	})

	t.Run("calls fallback when override is empty", func(t *testing.T) {
		result, err := ResolveWithDefault("", func() (string, error) {
			return "/fallback", nil
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result != "/fallback" {
			t.Fatalf("expected /fallback, got %s", result)
		}
	})

	t.Run("propagates fallback errors", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := ResolveWithDefault("", func() (string, error) {
			return "", boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}
