// Package diffsettings provides the contrib.diffsettings app.
//
// # HTTP Endpoints
//
//   - GET /settings/diff : Lists the settings that differ from the defaults,
//     with secrets masked. Responds 404 unless DEBUG is set.
//   - GET /settings/{name} : Returns one setting by its upper-case name,
//     masked the same way. Responds 404 unless DEBUG is set or when the
//     name is unknown.
package diffsettings
