package commands

import (
	"os"
	"path/filepath"

	"github.com/colonyops/tuikit/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	Theme      string
	Now        string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Warnings holds the values Sanitize replaced while loading Config.
	Warnings []config.ValidationWarning
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tuikit", "config.yaml")
}
