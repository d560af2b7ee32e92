package server

import "time"

// Config holds configuration for the HTTP report server.
type Config struct {
	// Host is the interface to bind; empty means all interfaces.
	Host string `mapstructure:"host" default:""`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// ShutdownSeconds bounds graceful shutdown.
	ShutdownSeconds int `mapstructure:"shutdown_seconds" default:"10"`
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// AuthEnabled reports whether requests must carry an API key.
func (c Config) AuthEnabled() bool {
	return c.ApiKey != ""
}

// ShutdownTimeout returns the graceful shutdown bound, 10s when unset.
func (c Config) ShutdownTimeout() time.Duration {
	if c.ShutdownSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.ShutdownSeconds) * time.Second
}
