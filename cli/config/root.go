// Package config carries the flags shared by every hedgecalc subcommand.
package config

import appconfig "github.com/quantrlabs/hedgecalc/config"

// RootConfig holds the persistent flag values set on the root command.
type RootConfig struct {
	ConfigPath string
	DBPath     string
	LogLevel   string
}

// Load resolves the effective configuration: file if --config was given,
// built-in defaults otherwise, with the --db flag overriding the data path
// either way.
func (rc *RootConfig) Load() (*appconfig.Config, error) {
	cfg := appconfig.Default()
	if rc.ConfigPath != "" {
		loaded, err := appconfig.LoadFromFile(rc.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if rc.DBPath != "" {
		cfg.Data.DBPath = rc.DBPath
	}
	return cfg, nil
}
