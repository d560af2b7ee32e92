// Package server holds the HTTP report server configuration.
//
// The serve command starts the server; this package only defines the settings
// it needs: bind address, optional API key and graceful shutdown bound.
//
// # Usage
//
// This package is embedded by core/config and read by cmd/serve.
package server
