package config

import "github.com/spf13/viper"

// DefaultSource is the well-known roadmap document fetched on startup
// when no source is configured.
const DefaultSource = "https://raw.githubusercontent.com/alexanderramin/wayfarer/main/roadmaps/go-developer.json"

// Config holds all runtime configuration for a wayfarer session.
// Values are populated from .wayfarer.yaml, WAYFARER_* env vars, and
// CLI flags.
type Config struct {
	Source    string `mapstructure:"source"`
	ExportDir string `mapstructure:"export_dir"`
	LogFile   string `mapstructure:"log_file"`
	Verbose   bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for
// any values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("source", DefaultSource)
	viper.SetDefault("export_dir", ".")
	viper.SetDefault("log_file", "")
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
