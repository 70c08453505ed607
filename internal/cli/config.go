package cli

import (
	"fmt"
	"os"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	AdminKey  string
	Output    string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("INBOXCTL_SERVER", "http://localhost:8080"),
		AdminKey:  os.Getenv("INBOXCTL_KEY"),
		Output:    "text",
	}
}

// Validate checks flag values
func (c *Config) Validate() error {
	if c.Output != "text" && c.Output != "json" {
		return fmt.Errorf("invalid output format %q: must be text or json", c.Output)
	}
	if c.ServerURL == "" {
		return fmt.Errorf("--server must not be empty")
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
