package config

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/tockdev/tock/internal/validate"
)

// DefaultSeconds is the fallback countdown duration (25 minutes) used when
// neither the command line nor the config file provides one.
const DefaultSeconds = 1500

// systemConfigPath is the machine-wide config consulted before the user file.
const systemConfigPath = "/etc/tock/config.yaml"

// Data represents the structure of the config file.
type Data struct {
	// DefaultSeconds overrides the built-in default countdown duration.
	DefaultSeconds int `yaml:"default_seconds,omitempty" validate:"omitempty,gt=0"`
	// InstallUUID identifies this installation in debug logs.
	InstallUUID string `yaml:"install_uuid,omitempty" validate:"omitempty,uuid_rfc4122"`
}

// Config handles the loading and saving of the config file.
type Config struct {
	Path string `validate:"required,filepath"`
	Data Data
}

// New creates a new Config instance, loading the file at path if it exists.
func New(path string) (*Config, error) {
	expandedPath, err := expandTilde(path)
	if err != nil {
		return nil, err
	}

	c := &Config{Path: expandedPath}

	// Seed from the machine-wide config before the user file overrides it.
	if sys := readSystemConfig(); sys.DefaultSeconds > 0 {
		c.Data.DefaultSeconds = sys.DefaultSeconds
	}

	if err := c.Load(); err != nil {
		// If the file doesn't exist, we can ignore the error.
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	// Ensure InstallUUID present: generate one when the file never held one.
	if c.Data.InstallUUID == "" {
		c.Data.InstallUUID = uuid.NewString()
	}

	return c, nil
}

// NewOrExisting returns existing config if the file exists, or creates a new
// one otherwise. When creating, the initial structure is written to disk
// immediately so the InstallUUID is stable across runs.
func NewOrExisting(path string) (*Config, error) {
	expandedPath, err := expandTilde(path)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(expandedPath); err == nil {
		return New(path)
	} else if os.IsNotExist(err) {
		c, err := New(path)
		if err != nil {
			return nil, err
		}
		if err := c.Save(); err != nil {
			return nil, err
		}
		return c, nil
	} else {
		return nil, err
	}
}

// Load reads the config file, validating loaded data and self-healing when
// possible rather than failing the run over a bad preferences file.
func (c *Config) Load() error {
	logrus.Debug("Loading config file from: ", c.Path)
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, &c.Data); err != nil {
		return err
	}

	if err := validate.Struct(c.Data); err != nil {
		changed := false
		if c.Data.DefaultSeconds != 0 && validate.Var(c.Data.DefaultSeconds, "gt=0") != nil {
			logrus.Warn("Invalid default_seconds found in config; clearing.")
			c.Data.DefaultSeconds = 0
			changed = true
		}
		if c.Data.InstallUUID != "" && validate.Var(c.Data.InstallUUID, "uuid_rfc4122") != nil {
			logrus.Warn("Invalid install_uuid found in config; regenerating.")
			c.Data.InstallUUID = uuid.NewString()
			changed = true
		}
		if changed {
			if err := c.Save(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Save writes the config data to the file.
func (c *Config) Save() error {
	logrus.Debug("Saving config file to: ", c.Path)
	// Ensure parent directory exists.
	if err := os.MkdirAll(filepath.Dir(c.Path), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(c.Data)
	if err != nil {
		return err
	}

	return os.WriteFile(c.Path, data, 0o600)
}

// Default returns the effective default countdown duration in seconds.
func (c *Config) Default() int {
	if c.Data.DefaultSeconds > 0 {
		return c.Data.DefaultSeconds
	}
	return DefaultSeconds
}

// expandTilde expands the tilde in a path to the user's home directory.
func expandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// readSystemConfig reads the machine-wide config. A missing or malformed file
// is silently treated as absent.
func readSystemConfig() Data {
	var d Data
	raw, err := os.ReadFile(systemConfigPath)
	if err != nil {
		return Data{}
	}
	if err := yaml.Unmarshal(raw, &d); err != nil {
		logrus.Debugf("error reading system config: %v", err)
		return Data{}
	}
	if d.DefaultSeconds != 0 && validate.Var(d.DefaultSeconds, "gt=0") != nil {
		logrus.Warn("Invalid default_seconds in system config; ignoring.")
		d.DefaultSeconds = 0
	}
	return d
}
