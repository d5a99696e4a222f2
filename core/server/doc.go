// Package server holds the HTTP server configuration, binds its listener and
// translates bind failures into operator-readable messages.
//
// # Configuration
//
// The Config struct defines the bind address, the API key, the process name
// and the optional admin media path.
//
// # Bind Errors
//
// Listen wraps every failure in *Error. Translate maps the socket errors an
// operator can act on to fixed messages:
//
//   - EACCES: "You don't have permission to access that port."
//   - EADDRINUSE: "That port is already in use."
//   - EADDRNOTAVAIL: "That IP address can't be assigned-to."
//
// Any other error is reported with its own text.
package server
