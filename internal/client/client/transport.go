package client

import "context"

// Request describes a single call to a remote endpoint.
type Request struct {
	URL    string
	Method string
	Header map[string]string
	Body   []byte
}

// Transport sends requests and returns the response body.
//
// In strict mode (lenient == false) a non-2xx response is returned as a
// *StatusError. In lenient mode the body is returned whatever the status, so
// the caller can inspect an error payload. A response without a body yields
// (nil, nil). Failures to reach the server match ErrUnavailable.
type Transport interface {
	Send(ctx context.Context, req *Request, lenient bool) ([]byte, error)
}
