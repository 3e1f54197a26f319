package audit

import (
	"fmt"
	"time"

	"github.com/nmeilick/oabutils/common/duration"
)

// Default configuration constants
const (
	DefaultMaxSize    = 10 // MB
	DefaultMaxBackups = 3
	DefaultMaxAge     = 30 * 24 * time.Hour
)

// Config defines where and how mutations are recorded. An empty File
// disables auditing.
type Config struct {
	// File is the path of the audit log
	File string `hcl:"file,optional"`

	// MaxSize is the maximum size of the audit log in megabytes before rotation
	MaxSize int `hcl:"max_size,optional"`

	// MaxBackups is the maximum number of rotated files to retain
	MaxBackups int `hcl:"max_backups,optional"`

	// MaxAge is how long rotated files are kept, e.g. "30d" or "2w"
	MaxAge string `hcl:"max_age,optional"`

	// Compress determines if rotated files are gzipped
	Compress bool `hcl:"compress,optional"`

	parsedMaxAge time.Duration
}

// DefaultConfig returns a new Config with default values. Auditing stays
// disabled until File is set.
func DefaultConfig() *Config {
	return &Config{
		MaxSize:      DefaultMaxSize,
		MaxBackups:   DefaultMaxBackups,
		MaxAge:       "30d",
		parsedMaxAge: DefaultMaxAge,
	}
}

// Normalize sets default values for vital settings that haven't been set
func (c *Config) Normalize() error {
	if c.MaxSize == 0 {
		c.MaxSize = DefaultMaxSize
	}
	if c.MaxBackups == 0 {
		c.MaxBackups = DefaultMaxBackups
	}

	if c.MaxAge != "" {
		d, err := duration.Parse(c.MaxAge)
		if err != nil {
			return fmt.Errorf("invalid max_age: %w", err)
		}
		c.parsedMaxAge = d
	}
	if c.parsedMaxAge <= 0 {
		c.parsedMaxAge = DefaultMaxAge
	}

	return c.Validate()
}

// Validate checks the audit configuration for errors
func (c *Config) Validate() error {
	if c.MaxSize < 0 {
		return fmt.Errorf("max_size must not be negative")
	}
	if c.MaxBackups < 0 {
		return fmt.Errorf("max_backups must not be negative")
	}
	return nil
}

// Enabled reports whether an audit file is configured.
func (c *Config) Enabled() bool {
	return c != nil && c.File != ""
}

// GetMaxAge returns the parsed retention period
func (c *Config) GetMaxAge() time.Duration {
	return c.parsedMaxAge
}
