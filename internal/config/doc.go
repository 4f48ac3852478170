// Package config provides configuration management for medianame using Viper.
//
// Configuration is optional: the tool runs fully from its defaults and
// flags. When present, a config.yaml in the current directory or in the
// XDG config home can set the log file path and extend the ignore
// catalogs, and every key can be overridden through MEDIANAME_*
// environment variables.
package config
