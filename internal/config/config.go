package config

import (
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/thoreinstein/medianame/internal/errors"
	"github.com/thoreinstein/medianame/internal/paths"
	"github.com/thoreinstein/medianame/internal/rename"
)

// AppName is the application name used for config file placement.
const AppName = "medianame"

// DefaultLogFile is where operational messages are appended when --log
// is not given.
const DefaultLogFile = "renaming.log"

// Config represents the top-level configuration structure.
type Config struct {
	LogFile          string   `mapstructure:"log_file" yaml:"log_file"`
	IgnoreDirs       []string `mapstructure:"ignore_dirs" yaml:"ignore_dirs"`
	IgnoreExtensions []string `mapstructure:"ignore_extensions" yaml:"ignore_extensions"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(filepath.Join(paths.ConfigHome(), AppName))

	// Environment variable support
	viper.SetEnvPrefix("MEDIANAME")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("log_file", DefaultLogFile)
	viper.SetDefault("ignore_dirs", []string{})
	viper.SetDefault("ignore_extensions", rename.DefaultIgnoredExtensions)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	return &cfg, nil
}
