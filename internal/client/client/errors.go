package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrRejected    = errors.New("request rejected")
)

// StatusError reports a non-2xx response received in strict mode.
type StatusError struct {
	Code int
	Body []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.Code, http.StatusText(e.Code))
}

// Is lets callers match 4xx responses with ErrRejected and 5xx responses with
// ErrUnavailable.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrRejected:
		return e.Code >= 400 && e.Code < 500
	case ErrUnavailable:
		return e.Code >= 500
	}
	return false
}
