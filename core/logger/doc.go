// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports development and
// production modes and integrates with the Fiber web framework used by the
// report server.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID set by the rayid middleware from a
// Fiber context and attaches it to the log entry, so every line written for
// one request can be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error (default info)
//   - Format: console (default) or json
//
// Logs are written to stderr. Command output such as validation reports is
// printed to stdout separately.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Generated key type", zap.Int("keys", n))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Validation failed", zap.Error(err))
package logger
