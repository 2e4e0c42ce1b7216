package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL  = "https://ball-machine.waltair.io"
	DefaultUsername = "nick.bollettier6@example.com"
	DefaultPasscode = "ServeAce2022"
)

type RuntimeConfig struct {
	BaseURL     string
	Username    string
	Passcode    string
	Timeout     time.Duration
	Bind        string
	Port        string
	TokenSecret string
	TokenTTL    time.Duration
	RateLimit   int
	RateBurst   int
	Target      string
	Debug       bool
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func envBoolOr(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func homeDir() string {
	h, _ := os.UserHomeDir()
	return h
}

func (c *RuntimeConfig) ListenAddr() string {
	return c.Bind + ":" + c.Port
}

// Local reports whether the suite should run against the in-process fake.
func (c *RuntimeConfig) Local() bool {
	return strings.EqualFold(c.Target, "local")
}

type FileConfig struct {
	BaseURL     string `yaml:"baseUrl,omitempty"`
	Username    string `yaml:"username,omitempty"`
	Passcode    string `yaml:"passcode,omitempty"`
	TimeoutSec  int    `yaml:"timeoutSec,omitempty"`
	Port        string `yaml:"port,omitempty"`
	TokenSecret string `yaml:"tokenSecret,omitempty"`
	TokenTTLSec int    `yaml:"tokenTtlSec,omitempty"`
	RateLimit   *int   `yaml:"rateLimit,omitempty"`
	RateBurst   *int   `yaml:"rateBurst,omitempty"`
}

// Path returns the config file location, honouring BALLCHECK_CONFIG.
func Path() string {
	return envOr("BALLCHECK_CONFIG", filepath.Join(homeDir(), ".ballcheck", "config.yaml"))
}

func Load() *RuntimeConfig {
	cfg := &RuntimeConfig{
		BaseURL:     strings.TrimRight(envOr("BALLCHECK_BASE_URL", DefaultBaseURL), "/"),
		Username:    envOr("BALLCHECK_USERNAME", DefaultUsername),
		Passcode:    envOr("BALLCHECK_PASSCODE", DefaultPasscode),
		Timeout:     time.Duration(envIntOr("BALLCHECK_TIMEOUT", 30)) * time.Second,
		Bind:        envOr("BALLCHECK_BIND", "127.0.0.1"),
		Port:        envOr("BALLCHECK_PORT", "8787"),
		TokenSecret: os.Getenv("BALLCHECK_TOKEN_SECRET"),
		TokenTTL:    time.Duration(envIntOr("BALLCHECK_TOKEN_TTL", 3600)) * time.Second,
		RateLimit:   envIntOr("BALLCHECK_RATE_LIMIT", 50),
		RateBurst:   envIntOr("BALLCHECK_RATE_BURST", 100),
		Target:      os.Getenv("BALLCHECK_TARGET"),
		Debug:       envBoolOr("BALLCHECK_DEBUG", false),
	}

	data, err := os.ReadFile(Path())
	if err != nil {
		return cfg
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg
	}

	if fc.BaseURL != "" && os.Getenv("BALLCHECK_BASE_URL") == "" {
		cfg.BaseURL = strings.TrimRight(fc.BaseURL, "/")
	}
	if fc.Username != "" && os.Getenv("BALLCHECK_USERNAME") == "" {
		cfg.Username = fc.Username
	}
	if fc.Passcode != "" && os.Getenv("BALLCHECK_PASSCODE") == "" {
		cfg.Passcode = fc.Passcode
	}
	if fc.TimeoutSec > 0 && os.Getenv("BALLCHECK_TIMEOUT") == "" {
		cfg.Timeout = time.Duration(fc.TimeoutSec) * time.Second
	}
	if fc.Port != "" && os.Getenv("BALLCHECK_PORT") == "" {
		cfg.Port = fc.Port
	}
	if fc.TokenSecret != "" && os.Getenv("BALLCHECK_TOKEN_SECRET") == "" {
		cfg.TokenSecret = fc.TokenSecret
	}
	if fc.TokenTTLSec > 0 && os.Getenv("BALLCHECK_TOKEN_TTL") == "" {
		cfg.TokenTTL = time.Duration(fc.TokenTTLSec) * time.Second
	}
	if fc.RateLimit != nil && os.Getenv("BALLCHECK_RATE_LIMIT") == "" {
		cfg.RateLimit = *fc.RateLimit
	}
	if fc.RateBurst != nil && os.Getenv("BALLCHECK_RATE_BURST") == "" {
		cfg.RateBurst = *fc.RateBurst
	}

	return cfg
}

func DefaultFileConfig() FileConfig {
	limit, burst := 50, 100
	return FileConfig{
		BaseURL:     DefaultBaseURL,
		Username:    DefaultUsername,
		TimeoutSec:  30,
		Port:        "8787",
		TokenTTLSec: 3600,
		RateLimit:   &limit,
		RateBurst:   &burst,
	}
}

// WriteDefault writes DefaultFileConfig to path. An existing file is left
// alone unless overwrite is set.
func WriteDefault(path string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return fmt.Errorf("config file already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(DefaultFileConfig())
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func MaskToken(t string) string {
	if t == "" {
		return "(none)"
	}
	if len(t) <= 8 {
		return "***"
	}
	return t[:4] + "..." + t[len(t)-4:]
}
