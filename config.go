package mdsite

import "github.com/alnah/go-mdsite/internal/config"

// Config holds the resolved site settings. StaticDir is always derived
// from AssetsDir.
type Config = config.Config

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	return config.Default()
}
