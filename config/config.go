package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/nmeilick/oabutils/audit"
	"github.com/nmeilick/oabutils/common"
	"github.com/urfave/cli/v2"
)

// EnvConfigPath names the environment variable that overrides the search.
var EnvConfigPath = common.EnvPrefix + "CONFIG"

// Config holds the application configuration
type Config struct {
	Verbose bool          `hcl:"verbose,optional"`
	Audit   *audit.Config `hcl:"audit,block"`
}

// DefaultConfig returns the configuration used when no file is found
func DefaultConfig() *Config {
	return &Config{Audit: audit.DefaultConfig()}
}

// Normalize sets default values for vital settings that haven't been set
func (c *Config) Normalize() error {
	if c.Audit == nil {
		c.Audit = audit.DefaultConfig()
	}
	if err := c.Audit.Normalize(); err != nil {
		return fmt.Errorf("audit: %w", err)
	}
	return nil
}

// getConfigLocations returns all standard locations where config files are searched
func getConfigLocations() []string {
	var locations []string

	// Get executable path to check for config in same directory
	execPath, err := os.Executable()
	if err == nil {
		execDir := filepath.Dir(execPath)
		locations = append(locations, filepath.Join(execDir, common.AppName+".hcl"))
	}

	// XDG paths for Linux, appropriate equivalents for macOS
	userConfigFile, err := xdg.ConfigFile(common.AppName + ".hcl")
	if err == nil {
		locations = append(locations, userConfigFile)
	}

	// Also check for config in XDG subdirectory
	userConfigDir, err := xdg.ConfigFile(common.AppName)
	if err == nil {
		locations = append(locations, filepath.Join(userConfigDir, "config.hcl"))
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		locations = append(locations,
			filepath.Join(homeDir, "."+common.AppName, "config.hcl"),
			filepath.Join(homeDir, "."+common.AppName+".hcl"),
		)
	}

	switch runtime.GOOS {
	case "darwin":
		locations = append(locations,
			"/Library/Application Support/"+common.AppName+"/config.hcl",
			"/etc/"+common.AppName+"/config.hcl",
			"/etc/"+common.AppName+".hcl",
		)
	default:
		locations = append(locations,
			"/etc/"+common.AppName+"/config.hcl",
			"/etc/"+common.AppName+".hcl",
		)
	}

	return locations
}

// FindConfigFile looks for the configuration file in standard locations
func FindConfigFile() string {
	for _, loc := range getConfigLocations() {
		if stat, err := os.Stat(loc); err == nil && stat.Mode().IsRegular() {
			return loc
		}
	}

	return ""
}

// decodeName returns the file name handed to the HCL decoder, which picks the
// syntax by extension. Anything that is not JSON is read as native HCL.
func decodeName(path string) string {
	name := filepath.Base(path)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".hcl", ".json":
		return name
	}
	return name + ".hcl"
}

// Load decodes the file at path, or returns the defaults when path is empty.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		cfg = &Config{}
		if err := hclsimple.Decode(decodeName(path), data, nil, cfg); err != nil {
			return nil, fmt.Errorf("parsing failed: %w", err)
		}
	}

	if err := cfg.Normalize(); err != nil {
		return nil, fmt.Errorf("config has problems: %s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfig loads the configuration from the --config flag or a standard
// location. Unlike an explicit path, a missing file is not an error: the
// built-in defaults are used.
func LoadConfig(c *cli.Context) (*Config, string, error) {
	path := c.String("config")
	if path == "" {
		path = FindConfigFile()
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	if path == "" {
		path = "<defaults>"
	}
	return cfg, path, nil
}
