// Package health provides the contrib.health app.
//
// # HTTP Endpoints
//
//   - GET /health : Reports the settings module, process name, timezone,
//     number of installed apps and, when DATABASES.default is connected,
//     whether it answers a ping. Responds 503 when it does not.
package health
