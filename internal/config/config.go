// Package config parses the ncall configuration file.
//
// The file is human-friendly JSON: comments and trailing commas are
// allowed. For example:
//
//	{
//		// the config file version
//		"version": 1,
//		"base_url": "https://api.example.com/v1",
//		"timeout": "30s",
//		"headers": {"X-Client": "ncall"},
//	}
package config

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/pkg/errors"
	"github.com/tailscale/hujson"
)

// Version is the current version of the configuration file.
const Version = 1

// ErrWrongVersion means that the configuration file has the wrong version number.
var ErrWrongVersion = errors.New("wrong config version")

// Defaults used when the corresponding setting is missing.
const (
	DefaultMaxConcurrency = 8
	DefaultMaxBodySize    = 1 << 22
	DefaultTimeout        = 60 * time.Second
	DefaultUserAgent      = "ncall/0.1.0"
)

// Config is the ncall configuration.
type Config struct {
	// Comment is ignored.
	Comment string `json:"_,omitempty"`

	// Version is the MANDATORY file version.
	Version int64 `json:"version"`

	// BaseURL is the OPTIONAL URL against which relative URLs are resolved.
	BaseURL string `json:"base_url,omitempty"`

	// UserAgent is the OPTIONAL User-Agent.
	UserAgent string `json:"user_agent,omitempty"`

	// Authorization is the OPTIONAL Authorization header.
	Authorization string `json:"authorization,omitempty"`

	// Timeout is the OPTIONAL call timeout (e.g. "30s").
	Timeout Duration `json:"timeout,omitempty"`

	// MaxConcurrency is the OPTIONAL maximum number of concurrent calls.
	MaxConcurrency int64 `json:"max_concurrency,omitempty"`

	// MaxBodySize is the OPTIONAL maximum response body size.
	MaxBodySize int64 `json:"max_body_size,omitempty"`

	// Headers contains OPTIONAL extra headers.
	Headers map[string]string `json:"headers,omitempty"`

	// LogLevel is the OPTIONAL apex/log level (e.g. "debug").
	LogLevel string `json:"log_level,omitempty"`
}

// Duration is a time.Duration serialized as a string.
type Duration time.Duration

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	value, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(value)
	return nil
}

// Unmarshal parses human-friendly JSON into v.
func Unmarshal(data []byte, v any) error {
	data, err := hujson.Standardize(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// ReadConfig reads the configuration from the given path.
func ReadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := ParseConfig(b)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return c, nil
}

// ParseConfig returns the config from JSONC bytes.
func ParseConfig(b []byte) (*Config, error) {
	var c Config
	if err := Unmarshal(b, &c); err != nil {
		return nil, errors.Wrap(err, "parsing json")
	}
	if c.Version != Version {
		return nil, fmt.Errorf("%w: expected=%d got=%d", ErrWrongVersion, Version, c.Version)
	}
	c.Default()
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating")
	}
	return &c, nil
}

// New returns a Config initialized with default settings.
func New() *Config {
	c := &Config{Version: Version}
	c.Default()
	return c
}

// Default fills the missing settings with their default values.
func (c *Config) Default() {
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.Timeout <= 0 {
		c.Timeout = Duration(DefaultTimeout)
	}
	if c.MaxConcurrency <= 0 {
		c.MaxConcurrency = DefaultMaxConcurrency
	}
	if c.MaxBodySize <= 0 {
		c.MaxBodySize = DefaultMaxBodySize
	}
	if c.LogLevel == "" {
		c.LogLevel = log.InfoLevel.String()
	}
}

// Validate the config.
func (c *Config) Validate() error {
	if c.BaseURL != "" {
		URL, err := url.Parse(c.BaseURL)
		if err != nil {
			return errors.Wrap(err, "base_url")
		}
		if URL.Scheme != "http" && URL.Scheme != "https" {
			return errors.Errorf("base_url: unsupported scheme %q", URL.Scheme)
		}
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	return nil
}

// Header returns the configured headers as an http.Header.
func (c *Config) Header() http.Header {
	header := http.Header{}
	for key, value := range c.Headers {
		header.Set(key, value)
	}
	return header
}

// Level returns the configured log level.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
