package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/amonks/focusstation/internal/config"
	"github.com/amonks/focusstation/internal/testsupport"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	testsupport.SetupTestHome(t)

	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Remote.URL != "" {
		t.Errorf("expected empty remote URL, got %q", cfg.Remote.URL)
	}
	if cfg.Remote.Timeout != config.DefaultTimeout {
		t.Errorf("Timeout = %s, expected %s", cfg.Remote.Timeout, config.DefaultTimeout)
	}
	if cfg.Timer.DefaultMinutes != 25 || cfg.Timer.SpinFrames != 25 {
		t.Errorf("unexpected timer defaults %+v", cfg.Timer)
	}
	if !cfg.Notify.Enabled {
		t.Error("expected notifications enabled by default")
	}
	if cfg.Server.Addr != config.DefaultServerAddr || cfg.Server.Storage != "file" || cfg.Server.RedisKey != config.DefaultRedisKey {
		t.Errorf("unexpected server defaults %+v", cfg.Server)
	}
}

func TestLoad_Full(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeFile(t, filepath.Join(tmpDir, "focusstation.toml"), `
[remote]
url = "https://example.firebaseio.com/leaderboard.json"
timeout = "3s"

[timer]
default-minutes = 50
spin-frames = 0

[notify]
enabled = false

[server]
addr = ":9000"
storage = "redis"
data-file = "/var/lib/focus/sessions.json"
redis-url = "redis://localhost:6379/0"
redis-key = "focus:test"
`)

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Remote.URL != "https://example.firebaseio.com/leaderboard.json" {
		t.Errorf("URL = %q", cfg.Remote.URL)
	}
	if cfg.Remote.Timeout != 3*time.Second {
		t.Errorf("Timeout = %s", cfg.Remote.Timeout)
	}
	if cfg.Timer.DefaultMinutes != 50 || cfg.Timer.SpinFrames != 0 {
		t.Errorf("Timer = %+v", cfg.Timer)
	}
	if cfg.Notify.Enabled {
		t.Error("expected notifications disabled")
	}
	want := config.Server{
		Addr:     ":9000",
		Storage:  "redis",
		DataFile: "/var/lib/focus/sessions.json",
		RedisURL: "redis://localhost:6379/0",
		RedisKey: "focus:test",
	}
	if cfg.Server != want {
		t.Errorf("Server = %+v, expected %+v", cfg.Server, want)
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	home := testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeFile(t, filepath.Join(home, ".config", "focusstation", "config.toml"), `
[remote]
url = "https://global.example.com/leaderboard.json"

[timer]
default-minutes = 40
`)
	writeFile(t, filepath.Join(tmpDir, "focusstation.toml"), `
[remote]
url = "file:///tmp/team.json"
`)

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Remote.URL != "file:///tmp/team.json" {
		t.Errorf("URL = %q, expected project value", cfg.Remote.URL)
	}
	if cfg.Timer.DefaultMinutes != 40 {
		t.Errorf("DefaultMinutes = %d, expected global value", cfg.Timer.DefaultMinutes)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeFile(t, filepath.Join(tmpDir, "focusstation.toml"), `
[remote]
url = "https://from-file.example.com"
`)
	writeFile(t, filepath.Join(tmpDir, ".env"), `
FOCUS_REMOTE_URL=https://from-dotenv.example.com
FOCUS_REDIS_URL=redis://dotenv:6379/1
`)
	t.Setenv(config.EnvServerAddr, "0.0.0.0:1234")
	t.Setenv(config.EnvRedisURL, "redis://process:6379/2")

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Remote.URL != "https://from-dotenv.example.com" {
		t.Errorf("URL = %q, expected .env value", cfg.Remote.URL)
	}
	if cfg.Server.RedisURL != "redis://process:6379/2" {
		t.Errorf("RedisURL = %q, expected process env to win over .env", cfg.Server.RedisURL)
	}
	if cfg.Server.Addr != "0.0.0.0:1234" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeFile(t, filepath.Join(tmpDir, "focusstation.toml"), "[remote\nurl = ")

	if _, err := config.Load(tmpDir); err == nil {
		t.Fatal("expected parse error")
	}
}
