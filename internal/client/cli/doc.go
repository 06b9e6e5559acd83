// Package cli provides the interactive command-line front end for launcher
// authentication.
//
// It wires configuration, logging, the client identity store, the HTTP
// transport and the auth service, then runs a small REPL. The user is asked
// to log in on start; the resolved account lives in memory only.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
