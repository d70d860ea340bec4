// Package server holds the HTTP server configuration.
//
// The serve command handles the actual startup; this package only defines
// the configuration structure so core/config can embed it and the auth
// middleware can pick up the API key.
package server
