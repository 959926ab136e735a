// Package config loads CI configuration from environment variables.
package config

import (
	"errors"
	"log/slog"
	"os"
)

// Sentinel errors for missing required inputs.
var (
	ErrMissingToken = errors.New("GH_TOKEN not set")
	ErrMissingEvent = errors.New("GH_EVENT not set")
	ErrMissingRef   = errors.New("GH_REF not set")
)

// Getenv looks up an environment variable. os.Getenv in production.
type Getenv func(key string) string

// Config holds the inputs passed to the scripts by the workflow.
type Config struct {
	GitHubToken string
	Event       []byte // Raw JSON webhook payload from GH_EVENT.
	Ref         string // GH_REF; may be empty, callers decide whether it is required.
	APIURL      string // GITHUB_API_URL; empty means api.github.com.
	Debug       bool
}

// RequireRef returns the ref or ErrMissingRef when it was not provided.
func (c *Config) RequireRef() (string, error) {
	if c.Ref == "" {
		return "", ErrMissingRef
	}
	return c.Ref, nil
}

// LogLevel returns the slog level matching the runner debug setting.
func (c *Config) LogLevel() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Load reads GH_TOKEN and GH_EVENT (both required) plus the optional GH_REF,
// GITHUB_API_URL and RUNNER_DEBUG. A nil getenv falls back to os.Getenv.
func Load(getenv Getenv) (*Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	token := getenv("GH_TOKEN")
	if token == "" {
		return nil, ErrMissingToken
	}

	event := getenv("GH_EVENT")
	if event == "" {
		return nil, ErrMissingEvent
	}

	apiURL := getenv("GITHUB_API_URL")
	if apiURL == "https://api.github.com" {
		apiURL = ""
	}

	return &Config{
		GitHubToken: token,
		Event:       []byte(event),
		Ref:         getenv("GH_REF"),
		APIURL:      apiURL,
		Debug:       getenv("RUNNER_DEBUG") == "1",
	}, nil
}
