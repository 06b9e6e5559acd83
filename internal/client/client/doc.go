// Package client is the HTTP plumbing between the launcher and the remote
// authentication services.
//
// Transport is the contract the auth service depends on; HTTPTransport is the
// net/http implementation used by the CLI. Request timeouts are configured on
// the transport, not by its callers.
//
// # Error Handling
//
// Failures to reach a server match ErrUnavailable. Non-2xx responses in
// strict mode are *StatusError values that also match ErrRejected (4xx) or
// ErrUnavailable (5xx) with errors.Is.
package client
