// Package config handles loading focusstation.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/amonks/focusstation/internal/paths"
)

// Defaults applied when neither config file sets a value.
const (
	DefaultTimeout        = 10 * time.Second
	DefaultMinutes        = 25
	DefaultSpinFrames     = 25
	DefaultServerAddr     = "127.0.0.1:8723"
	DefaultStorage        = "file"
	DefaultRedisKey       = "focusstation:sessions"
	ProjectConfigFileName = "focusstation.toml"
)

// Environment variables that override the config files.
const (
	EnvRemoteURL  = "FOCUS_REMOTE_URL"
	EnvRedisURL   = "FOCUS_REDIS_URL"
	EnvServerAddr = "FOCUS_SERVER_ADDR"
)

// Config represents the focusstation.toml configuration file.
type Config struct {
	Remote Remote `toml:"remote"`
	Timer  Timer  `toml:"timer"`
	Notify Notify `toml:"notify"`
	Server Server `toml:"server"`
}

// Remote configures the shared session log.
type Remote struct {
	// URL is an http(s) endpoint, a file:// URL or a plain path. Empty means
	// the local log in the data directory.
	URL string `toml:"url"`

	// Timeout bounds each request to the session log.
	Timeout time.Duration `toml:"timeout"`
}

// Timer configures focus sessions.
type Timer struct {
	// DefaultMinutes is the session length when none is given.
	DefaultMinutes int `toml:"default-minutes"`

	// SpinFrames is the number of wheel frames shown before a pick.
	SpinFrames int `toml:"spin-frames"`
}

// Notify configures desktop notifications.
type Notify struct {
	Enabled bool `toml:"enabled"`
}

// Server configures `focus serve`.
type Server struct {
	Addr string `toml:"addr"`

	// Storage is "file" or "redis".
	Storage string `toml:"storage"`

	// DataFile is the JSON file used by file storage.
	DataFile string `toml:"data-file"`

	RedisURL string `toml:"redis-url"`
	RedisKey string `toml:"redis-key"`
}

// Load loads configuration from the global config file and the project
// directory, then applies the environment. A .env file in dir is read
// first; variables already set in the process environment win over it.
// Returns defaults if no config files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := globalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(dir, ProjectConfigFileName))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta)

	env, err := loadEnv(filepath.Join(dir, ".env"))
	if err != nil {
		return nil, err
	}
	applyEnv(merged, env)

	return merged, nil
}

func globalConfigPath() (string, error) {
	dir, err := paths.DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	pick := func(key ...string) (*Config, bool) {
		if projectMeta.IsDefined(key...) {
			return projectCfg, true
		}
		if globalMeta.IsDefined(key...) {
			return globalCfg, true
		}
		return nil, false
	}

	merged := Config{
		Remote: Remote{Timeout: DefaultTimeout},
		Timer:  Timer{DefaultMinutes: DefaultMinutes, SpinFrames: DefaultSpinFrames},
		Notify: Notify{Enabled: true},
		Server: Server{Addr: DefaultServerAddr, Storage: DefaultStorage, RedisKey: DefaultRedisKey},
	}

	if cfg, ok := pick("remote", "url"); ok {
		merged.Remote.URL = strings.TrimSpace(cfg.Remote.URL)
	}
	if cfg, ok := pick("remote", "timeout"); ok && cfg.Remote.Timeout > 0 {
		merged.Remote.Timeout = cfg.Remote.Timeout
	}
	if cfg, ok := pick("timer", "default-minutes"); ok && cfg.Timer.DefaultMinutes > 0 {
		merged.Timer.DefaultMinutes = cfg.Timer.DefaultMinutes
	}
	if cfg, ok := pick("timer", "spin-frames"); ok && cfg.Timer.SpinFrames >= 0 {
		merged.Timer.SpinFrames = cfg.Timer.SpinFrames
	}
	if cfg, ok := pick("notify", "enabled"); ok {
		merged.Notify.Enabled = cfg.Notify.Enabled
	}
	if cfg, ok := pick("server", "addr"); ok {
		merged.Server.Addr = mergeString(cfg.Server.Addr, merged.Server.Addr)
	}
	if cfg, ok := pick("server", "storage"); ok {
		merged.Server.Storage = mergeString(cfg.Server.Storage, merged.Server.Storage)
	}
	if cfg, ok := pick("server", "data-file"); ok {
		merged.Server.DataFile = strings.TrimSpace(cfg.Server.DataFile)
	}
	if cfg, ok := pick("server", "redis-url"); ok {
		merged.Server.RedisURL = strings.TrimSpace(cfg.Server.RedisURL)
	}
	if cfg, ok := pick("server", "redis-key"); ok {
		merged.Server.RedisKey = mergeString(cfg.Server.RedisKey, merged.Server.RedisKey)
	}

	return &merged
}

func mergeString(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}

// loadEnv returns the variables of the .env file at path, if any.
func loadEnv(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return env, nil
}

func applyEnv(cfg *Config, dotenv map[string]string) {
	lookup := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return strings.TrimSpace(value)
		}
		return strings.TrimSpace(dotenv[key])
	}

	if value := lookup(EnvRemoteURL); value != "" {
		cfg.Remote.URL = value
	}
	if value := lookup(EnvRedisURL); value != "" {
		cfg.Server.RedisURL = value
	}
	if value := lookup(EnvServerAddr); value != "" {
		cfg.Server.Addr = value
	}
}
