package config

import (
	"os"
	"strings"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	GitHubToken string
	DebugMode   bool
}

// FromEnvironment creates a Config from environment variables.
func FromEnvironment() Config {
	debug := os.Getenv("DEBUG")
	debugMode := debug != "" && debug != "0" && strings.ToLower(debug) != "false"

	return Config{
		GitHubToken: os.Getenv("GITHUB_TOKEN"),
		DebugMode:   debugMode,
	}
}
