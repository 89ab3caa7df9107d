package config

import "github.com/plugforge/plughost/logging"

// Host is the top-level host configuration.
type Host struct {
	// PluginDir is the plugin directory, relative to the working
	// directory unless absolute. Scanned non-recursively.
	PluginDir string `mapstructure:"plugin-dir" json:"pluginDir" yaml:"plugin-dir" default:"plugins" validate:"required"`

	// WatchPlugins keeps watching the plugin directory after the
	// initial scan and loads modules dropped into it.
	WatchPlugins bool `mapstructure:"watch-plugins" json:"watchPlugins" yaml:"watch-plugins"`

	// Status configures the HTTP status surface.
	Status Status `mapstructure:"status" json:"status" yaml:"status"`

	// Logging configures the structured logger.
	Logging logging.Config `mapstructure:"logging" json:"logging" yaml:"logging"`
}

// Status configures the HTTP status listener.
type Status struct {
	// Enabled turns the status listener on.
	Enabled bool `mapstructure:"enabled" json:"enabled" yaml:"enabled"`

	// Addr is the listen address.
	Addr string `mapstructure:"addr" json:"addr" yaml:"addr" default:":8085" validate:"required_with=Enabled"`
}
