// Package middleware contains HTTP middleware for the report server.
//
// # Components
//
//   - auth: API key validation through the X-API-Key header. Disabled when no
//     key is configured.
//   - rayid: assigns each request a RayID, stores it under the "ray_id" local
//     and echoes it in the X-Ray-ID response header for tracing.
//
// The serve command registers rayid first so authentication failures are
// logged with an id.
package middleware
