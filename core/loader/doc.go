// Package loader provides the feature loading system of the report server.
//
// Each feature implements the Feature interface, which names it, says whether
// it is enabled and registers its routes.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager struct holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Loading of enabled features via LoadAll()
//
// The validation and generate features are registered this way by cmd/serve.
package loader
