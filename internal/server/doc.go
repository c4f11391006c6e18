// Package server serves the spiral gallery over HTTP.
//
// Every request for the page lists the source directory and rebuilds the
// spiral, so added or removed images show up on reload.
//
// # Endpoints
//
//   - GET / - the rendered gallery page
//   - GET /files/<name> - files from the source directory
//   - GET /health - liveness check
package server
