// Package config loads coffeeline settings from a YAML file and
// COFFEELINE_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/coffeeline/importer"
)

const (
	EnvPrefix = "COFFEELINE"
	// LocalFile is looked up in the working directory before Path.
	LocalFile = "coffeeline.yaml"
)

type Config struct {
	Import  ImportConfig  `mapstructure:"import" yaml:"import"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	LSP     LSPConfig     `mapstructure:"lsp" yaml:"lsp"`

	// Extensions maps extra file extensions to registered language names.
	Extensions map[string]string `mapstructure:"extensions" yaml:"extensions,omitempty"`
}

type ImportConfig struct {
	TabWidth   int  `mapstructure:"tab_width" yaml:"tab_width"`
	Directives bool `mapstructure:"directives" yaml:"directives"`
	Cleanup    bool `mapstructure:"cleanup" yaml:"cleanup"`
}

type LoggingConfig struct {
	Verbosity int    `mapstructure:"verbosity" yaml:"verbosity"`
	File      string `mapstructure:"file" yaml:"file,omitempty"`
}

type LSPConfig struct {
	PollInterval string `mapstructure:"poll_interval" yaml:"poll_interval"`
}

func Default() *Config {
	return &Config{
		Import: ImportConfig{
			TabWidth:   importer.DefaultTabWidth,
			Directives: true,
			Cleanup:    true,
		},
		LSP: LSPConfig{
			PollInterval: "1s",
		},
	}
}

// Path returns the default configuration file location.
func Path() string {
	home := os.Getenv("HOME")
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	return filepath.Join(home, ".config", "coffeeline", "config.yaml")
}

// Load reads the configuration at path, or at LocalFile or Path when
// path is empty. A missing file yields the defaults. Environment
// variables override the file, e.g. COFFEELINE_IMPORT_TAB_WIDTH.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = Path()
		if _, err := os.Stat(LocalFile); err == nil {
			path = LocalFile
		}
	}
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes c to path as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	text, err := c.MarshalText()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	if err := os.WriteFile(path, text, 0o644); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

func (c *Config) MarshalText() ([]byte, error) {
	text, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return text, nil
}

func (c *Config) Validate() error {
	if c.Import.TabWidth <= 0 {
		return fmt.Errorf("invalid import.tab_width %d: must be positive", c.Import.TabWidth)
	}
	if c.Logging.Verbosity < 0 {
		return fmt.Errorf("invalid logging.verbosity %d: must not be negative", c.Logging.Verbosity)
	}
	if _, err := c.PollInterval(); err != nil {
		return err
	}
	return nil
}

// PollInterval parses lsp.poll_interval. "0" and "" disable polling.
func (c *Config) PollInterval() (time.Duration, error) {
	if c.LSP.PollInterval == "" || c.LSP.PollInterval == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.LSP.PollInterval)
	if err != nil {
		return 0, fmt.Errorf("invalid lsp.poll_interval: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid lsp.poll_interval %s: must not be negative", d)
	}
	return d, nil
}

// ImportOptions translates the import section into importer options.
func (c *Config) ImportOptions() []importer.Option {
	opts := []importer.Option{importer.WithDirectives(c.Import.Directives)}
	if !c.Import.Cleanup {
		opts = append(opts, importer.WithoutCleanup())
	}
	return opts
}

// RegisterExtensions adds the configured extension mappings to the
// language registry.
func (c *Config) RegisterExtensions() error {
	exts := make([]string, 0, len(c.Extensions))
	for ext := range c.Extensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	for _, ext := range exts {
		if err := importer.RegisterExtension(ext, c.Extensions[ext]); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	defaults := Default()
	v.SetDefault("import.tab_width", defaults.Import.TabWidth)
	v.SetDefault("import.directives", defaults.Import.Directives)
	v.SetDefault("import.cleanup", defaults.Import.Cleanup)
	v.SetDefault("logging.verbosity", defaults.Logging.Verbosity)
	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("lsp.poll_interval", defaults.LSP.PollInterval)
}
