package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pfio-labs/pfio/internal/branding"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"

	// FormatVersion is the config file format this build writes.
	FormatVersion = "1.0.0"
	// supportedFormats is the range of config file formats this build reads.
	supportedFormats = "^1"
)

// Setting keys.
const (
	KeyVersion    = "version"
	KeyLogLevel   = "log.level"
	KeyLogFormat  = "log.format"
	KeyFilePerm   = "file.perm"
	KeyDemoPath   = "demo.path"
	KeyDemoText   = "demo.text"
	KeyDemoBuffer = "demo.buffer"
)

// ErrUnsupportedVersion is returned when the config file format is outside
// the range this build understands.
var ErrUnsupportedVersion = errors.New("unsupported config version")

// Config is a loaded settings value.
type Config struct {
	v    *viper.Viper
	path string
}

// Dir returns the path to the config directory (~/.pfio/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the default config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load reads settings from path (FilePath() when empty) on fsys, overlaid
// with PFIO_* environment variables. A missing file is not an error.
func Load(fsys afero.Fs, path string) (*Config, error) {
	if path == "" {
		path = FilePath()
	}

	v := newViper(fsys, path)
	if err := v.ReadInConfig(); err != nil {
		if _, statErr := fsys.Stat(path); statErr == nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	c := &Config{v: v, path: path}
	if err := c.checkVersion(); err != nil {
		return nil, err
	}
	return c, nil
}

// Defaults returns the built-in settings overlaid with PFIO_* environment
// variables, without reading any file.
func Defaults() *Config {
	path := FilePath()
	return &Config{v: newViper(afero.NewMemMapFs(), path), path: path}
}

func newViper(fsys afero.Fs, path string) *viper.Viper {
	v := viper.New()
	v.SetFs(fsys)
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyVersion, FormatVersion)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyFilePerm, "0666")
	v.SetDefault(KeyDemoPath, "t.txt")
	v.SetDefault(KeyDemoText, "hello")
	v.SetDefault(KeyDemoBuffer, 255)
	return v
}

func (c *Config) checkVersion() error {
	raw := c.v.GetString(KeyVersion)
	ver, err := semver.NewVersion(strings.TrimPrefix(raw, "v"))
	if err != nil {
		return fmt.Errorf("parsing config version %q: %w", raw, err)
	}
	constraint, err := semver.NewConstraint(supportedFormats)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}
	if !constraint.Check(ver) {
		return fmt.Errorf("%w: %s (want %s)", ErrUnsupportedVersion, raw, supportedFormats)
	}
	return nil
}

// Path returns the config file location.
func (c *Config) Path() string { return c.path }

// Get returns a config value by key. Returns empty string if not set.
func (c *Config) Get(key string) string {
	return c.v.GetString(key)
}

// LogLevel returns the configured log level name.
func (c *Config) LogLevel() string { return c.v.GetString(KeyLogLevel) }

// LogFormat returns the configured log format (text or json).
func (c *Config) LogFormat() string { return c.v.GetString(KeyLogFormat) }

// FilePerm returns the permission for files created by the CLI.
func (c *Config) FilePerm() (os.FileMode, error) {
	raw := c.v.GetString(KeyFilePerm)
	perm, err := strconv.ParseUint(raw, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("parsing %s %q: %w", KeyFilePerm, raw, err)
	}
	return os.FileMode(perm).Perm(), nil
}

// DemoPath returns the file the demo command works on.
func (c *Config) DemoPath() string { return c.v.GetString(KeyDemoPath) }

// DemoText returns the text the demo command writes.
func (c *Config) DemoText() string { return c.v.GetString(KeyDemoText) }

// DemoBuffer returns the read-back buffer capacity for the demo command.
func (c *Config) DemoBuffer() int { return c.v.GetInt(KeyDemoBuffer) }

// Set writes a config key-value pair and saves the config file. Only the
// keys already in the file plus key are written; defaults and PFIO_*
// environment overrides stay out of it.
func (c *Config) Set(fsys afero.Fs, key, value string) error {
	dir := filepath.Dir(c.path)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	file := viper.New()
	file.SetFs(fsys)
	file.SetConfigFile(c.path)
	file.SetConfigType(fileType)
	if err := file.ReadInConfig(); err != nil {
		if _, statErr := fsys.Stat(c.path); statErr == nil {
			return fmt.Errorf("reading config file %s: %w", c.path, err)
		}
	}
	if !file.IsSet(KeyVersion) {
		file.Set(KeyVersion, FormatVersion)
	}
	file.Set(key, value)

	if err := file.WriteConfigAs(c.path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	c.v.Set(key, value)
	return nil
}
