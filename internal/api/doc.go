// Package api exposes the forum over REST. Handlers decode and validate
// JSON bodies, resolve the authenticated actor from the request context,
// call the services and render DTOs. errors.go maps domain, store and auth
// errors to status codes, client-safe messages and a machine-readable type.
package api
