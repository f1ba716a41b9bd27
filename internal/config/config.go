// Package config resolves site settings from defaults, an optional YAML
// file, MDSITE_* environment variables, and command-line flags, in that
// order of increasing precedence. The merge is done by viper; the YAML file
// is decoded strictly first so unknown keys (including static_dir, which is
// always derived) are rejected instead of silently ignored.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfig          = errors.New("invalid configuration")
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Recognized configuration keys.
const (
	KeyAddress         = "address"
	KeyAssetsDir       = "assets_dir"
	KeyMaxInlineSize   = "max_inline_size"
	KeyDisablePreload  = "disable_preload"
	KeyEnableInlineCSS = "enable_inline_css"
	KeyEnableInlineSVG = "enable_inline_svg"
	KeyWorkers         = "workers"
)

// Defaults for unset keys.
const (
	DefaultAddress       = "0.0.0.0:80"
	DefaultAssetsDir     = "assets"
	DefaultMaxInlineSize = 12 * 1024
	DefaultWorkers       = 1
)

// EnvPrefix is prepended to upper-cased keys to form environment variable
// names, e.g. MDSITE_ASSETS_DIR.
const EnvPrefix = "MDSITE"

// StaticSubdir is the static asset directory name under the assets directory.
const StaticSubdir = "static"

// Field length limits.
const (
	MaxAddressLength   = 255
	MaxAssetsDirLength = 4096
)

// Config holds the resolved site settings.
type Config struct {
	Address         string `mapstructure:"address" yaml:"address"`
	AssetsDir       string `mapstructure:"assets_dir" yaml:"assets_dir"`
	StaticDir       string `mapstructure:"-" yaml:"static_dir"` // always AssetsDir/static
	MaxInlineSize   int64  `mapstructure:"max_inline_size" yaml:"max_inline_size"`
	DisablePreload  bool   `mapstructure:"disable_preload" yaml:"disable_preload"`
	EnableInlineCSS bool   `mapstructure:"enable_inline_css" yaml:"enable_inline_css"`
	EnableInlineSVG bool   `mapstructure:"enable_inline_svg" yaml:"enable_inline_svg"`
	Workers         int    `mapstructure:"workers" yaml:"workers"` // 0 = auto
}

// fileConfig mirrors the keys accepted in a config file. Pointer fields
// distinguish "absent" from zero values so only present keys are merged.
type fileConfig struct {
	Address         *string `yaml:"address"`
	AssetsDir       *string `yaml:"assets_dir"`
	MaxInlineSize   *int64  `yaml:"max_inline_size"`
	DisablePreload  *bool   `yaml:"disable_preload"`
	EnableInlineCSS *bool   `yaml:"enable_inline_css"`
	EnableInlineSVG *bool   `yaml:"enable_inline_svg"`
	Workers         *int    `yaml:"workers"`
}

// NewViper returns a viper instance with defaults registered and
// MDSITE_* environment lookup enabled.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyAddress, DefaultAddress)
	v.SetDefault(KeyAssetsDir, DefaultAssetsDir)
	v.SetDefault(KeyMaxInlineSize, DefaultMaxInlineSize)
	v.SetDefault(KeyDisablePreload, false)
	v.SetDefault(KeyEnableInlineCSS, false)
	v.SetDefault(KeyEnableInlineSVG, false)
	v.SetDefault(KeyWorkers, DefaultWorkers)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// BindFlags registers one flag per configuration key on fs and binds it to v.
// Flag names use dashes (--assets-dir) for the underscore keys.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	fs.String(flagName(KeyAddress), DefaultAddress, "socket address to listen on")
	fs.String(flagName(KeyAssetsDir), DefaultAssetsDir, "directory holding md/ and static/")
	fs.Int64(flagName(KeyMaxInlineSize), DefaultMaxInlineSize, "largest CSS/SVG file inlined, in bytes")
	fs.Bool(flagName(KeyDisablePreload), false, "do not emit Link preload headers")
	fs.Bool(flagName(KeyEnableInlineCSS), false, "inline small stylesheets")
	fs.Bool(flagName(KeyEnableInlineSVG), false, "inline small local SVG images")
	fs.Int(flagName(KeyWorkers), DefaultWorkers, "pages compiled in parallel (0 = auto)")

	for _, key := range keys() {
		if err := v.BindPFlag(key, fs.Lookup(flagName(key))); err != nil {
			return fmt.Errorf("binding flag for %s: %w", key, err)
		}
	}
	return nil
}

func keys() []string {
	return []string{
		KeyAddress, KeyAssetsDir, KeyMaxInlineSize,
		KeyDisablePreload, KeyEnableInlineCSS, KeyEnableInlineSVG,
		KeyWorkers,
	}
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// New resolves the settings currently visible through v into a Config.
// StaticDir is recomputed from AssetsDir on every call.
func New(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	cfg.StaticDir = filepath.Join(cfg.AssetsDir, StaticSubdir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration obtained with no file, environment, or flags.
func Default() *Config {
	return &Config{
		Address:       DefaultAddress,
		AssetsDir:     DefaultAssetsDir,
		StaticDir:     filepath.Join(DefaultAssetsDir, StaticSubdir),
		MaxInlineSize: DefaultMaxInlineSize,
		Workers:       DefaultWorkers,
	}
}

// Validate checks required fields and value ranges.
func (c *Config) Validate() error {
	if err := validateFieldLength(KeyAddress, c.Address, MaxAddressLength); err != nil {
		return err
	}
	if err := validateFieldLength(KeyAssetsDir, c.AssetsDir, MaxAssetsDirLength); err != nil {
		return err
	}
	if c.AssetsDir == "" {
		return fmt.Errorf("%w: %s: required", ErrConfig, KeyAssetsDir)
	}
	if _, _, err := net.SplitHostPort(c.Address); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConfig, KeyAddress, err)
	}
	if c.MaxInlineSize < 0 {
		return fmt.Errorf("%w: %s: must not be negative, got %d", ErrConfig, KeyMaxInlineSize, c.MaxInlineSize)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: %s: must not be negative, got %d", ErrConfig, KeyWorkers, c.Workers)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// MergeFile loads a YAML config file and merges its keys into v below
// environment variables and flags. If nameOrPath contains a path separator,
// it's treated as a file path; otherwise it's searched as a config name.
func MergeFile(v *viper.Viper, nameOrPath string) error {
	if nameOrPath == "" {
		return ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yamlutil.UnmarshalStrict(data, &fc); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	return v.MergeConfigMap(fc.settings())
}

// settings returns the keys present in the file.
func (fc *fileConfig) settings() map[string]any {
	m := make(map[string]any)
	if fc.Address != nil {
		m[KeyAddress] = *fc.Address
	}
	if fc.AssetsDir != nil {
		m[KeyAssetsDir] = *fc.AssetsDir
	}
	if fc.MaxInlineSize != nil {
		m[KeyMaxInlineSize] = *fc.MaxInlineSize
	}
	if fc.DisablePreload != nil {
		m[KeyDisablePreload] = *fc.DisablePreload
	}
	if fc.EnableInlineCSS != nil {
		m[KeyEnableInlineCSS] = *fc.EnableInlineCSS
	}
	if fc.EnableInlineSVG != nil {
		m[KeyEnableInlineSVG] = *fc.EnableInlineSVG
	}
	if fc.Workers != nil {
		m[KeyWorkers] = *fc.Workers
	}
	return m
}

// SearchPaths returns the locations tried for a config name, in order.
// Tries extensions .yaml then .yml, in the current directory then
// ~/.config/go-mdsite/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-mdsite", name+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
