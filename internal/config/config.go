package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/genricoloni/wallfetch/internal/domain"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	appName         = "wallfetch"
	envPrefix       = "WALLFETCH"
	defaultLogLevel = "warn"
)

// Settings mirrors the config file
type Settings struct {
	Categories  []domain.Category    `mapstructure:"categories"`
	Suppliers   []domain.SupplierRef `mapstructure:"suppliers"`
	SetCommand  string               `mapstructure:"set_command"`
	CacheDir    string               `mapstructure:"cache_dir"`
	Notify      bool                 `mapstructure:"notify"`
	MatchScreen bool                 `mapstructure:"match_screen"`
	LogLevel    string               `mapstructure:"log_level"`
}

// AppConfig holds application configuration
type AppConfig struct {
	settings Settings
	root     string
	file     string
}

// NewViper prepares a viper instance for the given config file, or for the
// default search path when file is empty
func NewViper(file string) *viper.Viper {
	v := viper.New()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(Dir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("cache_dir", DefaultCacheDir())
	v.SetDefault("set_command", "")
	v.SetDefault("notify", false)
	v.SetDefault("match_screen", false)
	v.SetDefault("log_level", defaultLogLevel)
	return v
}

// Load reads and validates the configuration held by v.
// A missing default config file yields an empty configuration; a missing
// explicit file is an error.
func Load(logger *zap.Logger, v *viper.Viper) (*AppConfig, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || v.ConfigFileUsed() != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		logger.Warn("No config file found, continuing with defaults", zap.String("dir", Dir()))
	}

	var s Settings
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&s, hook); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", v.ConfigFileUsed(), err)
	}

	root := Dir()
	if used := v.ConfigFileUsed(); used != "" {
		root = filepath.Dir(used)
	}

	cacheDir, err := expandPath(s.CacheDir)
	if err != nil {
		return nil, fmt.Errorf("invalid cache_dir %q: %w", s.CacheDir, err)
	}
	s.CacheDir = cacheDir

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", v.ConfigFileUsed(), err)
	}
	if s.SetCommand != "" && !strings.Contains(s.SetCommand, "{path}") {
		logger.Warn("set_command has no {path} placeholder, the image path will not be passed",
			zap.String("set_command", s.SetCommand))
	}

	logger.Info("Configuration loaded",
		zap.String("file", v.ConfigFileUsed()),
		zap.Int("categories", len(s.Categories)),
		zap.Int("suppliers", len(s.Suppliers)),
		zap.String("cacheDir", s.CacheDir))

	return &AppConfig{settings: s, root: root, file: v.ConfigFileUsed()}, nil
}

// NewStatic wraps already decoded settings, used when the config does not
// come from a file
func NewStatic(root string, s Settings) *AppConfig {
	return &AppConfig{settings: s, root: root}
}

// Validate reports every problem found in the settings at once
func (s Settings) Validate() error {
	var err error

	seen := make(map[string]bool)
	for i, c := range s.Categories {
		if strings.TrimSpace(c.Name) == "" {
			err = multierr.Append(err, fmt.Errorf("categories[%d]: name is required", i))
			continue
		}
		key := "category:" + strings.ToLower(c.Name)
		if seen[key] {
			err = multierr.Append(err, fmt.Errorf("categories[%d]: duplicate name %q", i, c.Name))
		}
		seen[key] = true
	}

	for i, sup := range s.Suppliers {
		if strings.TrimSpace(sup.Name) == "" {
			err = multierr.Append(err, fmt.Errorf("suppliers[%d]: name is required", i))
			continue
		}
		if strings.TrimSpace(sup.File) == "" {
			err = multierr.Append(err, fmt.Errorf("suppliers[%d] (%s): file is required", i, sup.Name))
		}
		key := "supplier:" + strings.ToLower(sup.Name)
		if seen[key] {
			err = multierr.Append(err, fmt.Errorf("suppliers[%d]: duplicate name %q", i, sup.Name))
		}
		seen[key] = true
	}

	return err
}

// GetCategories returns the configured categories in file order
func (c *AppConfig) GetCategories() []domain.Category { return c.settings.Categories }

// GetSuppliers returns the configured supplier references in file order
func (c *AppConfig) GetSuppliers() []domain.SupplierRef { return c.settings.Suppliers }

// GetSetCommand returns the apply command template
func (c *AppConfig) GetSetCommand() string { return c.settings.SetCommand }

// GetCacheDir returns the content-addressed cache root
func (c *AppConfig) GetCacheDir() string { return c.settings.CacheDir }

// GetConfigRoot returns the directory relative supplier files resolve against
func (c *AppConfig) GetConfigRoot() string { return c.root }

// NotifyEnabled reports whether a desktop notification follows a successful apply
func (c *AppConfig) NotifyEnabled() bool { return c.settings.Notify }

// MatchScreen reports whether the display ratio is used when none is configured
func (c *AppConfig) MatchScreen() bool { return c.settings.MatchScreen }

// LogLevel returns the configured log level
func (c *AppConfig) LogLevel() string { return c.settings.LogLevel }

// File returns the config file in use, empty when none was found
func (c *AppConfig) File() string { return c.file }

// Dir returns the directory searched for config.{toml,yaml}
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", appName)
	}
	return "." + appName
}

// DefaultCacheDir returns the default cache root
func DefaultCacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".cache", appName)
	}
	return "." + appName + "-cache"
}

// expandPath expands environment variables and a leading ~, then makes the
// path absolute
func expandPath(p string) (string, error) {
	p = os.ExpandEnv(p)
	if len(p) > 0 && p[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			p = filepath.Join(home, p[1:])
		}
	}
	return filepath.Abs(p)
}
