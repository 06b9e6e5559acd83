package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxBodySize caps how much of a response is read into memory.
const maxBodySize = 1 << 20

// HTTPTransport is a Transport over net/http.
type HTTPTransport struct {
	client    *http.Client
	userAgent string
}

// NewHTTPTransport returns a transport whose requests time out after timeout
// (no limit when zero) and carry userAgent unless they set their own.
func NewHTTPTransport(timeout time.Duration, userAgent string) *HTTPTransport {
	return &HTTPTransport{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

func (t *HTTPTransport) Send(ctx context.Context, r *Request, lenient bool) ([]byte, error) {
	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, v := range r.Header {
		req.Header.Set(k, v)
	}
	if req.Header.Get("User-Agent") == "" && t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrUnavailable, r.Method, r.URL, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", ErrUnavailable, err)
	}

	if !lenient && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		return nil, &StatusError{Code: resp.StatusCode, Body: b}
	}
	if len(b) == 0 {
		return nil, nil
	}
	return b, nil
}
