// Package handler constructs the process's request handler.
//
// Build returns a Fiber app carrying the request middleware, the API docs
// at /swagger/* and every app named in INSTALLED_APPS. BuildWithMedia
// additionally serves a media directory, or an s3://bucket/prefix location,
// under ADMIN_MEDIA_PREFIX. Media and API docs are not protected by the API
// key.
//
// Failures are wrapped with ErrBuild.
package handler
