// Package middleware holds the HTTP middleware of the versync server.
//
// Two concerns live here:
//
//   - auth: API key validation for the API routes. An empty configured key
//     leaves the server open, which is the local development default.
//   - rayid: assigns every request a ray id, reusing the X-Ray-ID header
//     when an upstream proxy already set one. Handlers read it back from
//     the request locals to tag their log lines.
//
// Both are registered globally in the start command; rayid runs first so
// the request logging middleware already sees the id.
package middleware
