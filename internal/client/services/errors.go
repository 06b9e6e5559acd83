package services

import (
	"errors"
	"fmt"
)

// Kind classifies an authentication failure so callers can branch on it.
// A Kind is itself an error, so errors.Is(err, KindNotEntitled) works on
// anything returned by AuthService.
type Kind int

const (
	KindUnknown Kind = iota
	// KindTransportUnavailable: the service could not be reached.
	KindTransportUnavailable
	// KindInvalidLogin: the credential exchange was rejected or unreadable.
	KindInvalidLogin
	// KindNotEntitled: the exchange returned no session token, i.e. the
	// account does not own the game.
	KindNotEntitled
	// KindAccountNotFound: the token was issued but no profile resolves for it.
	KindAccountNotFound
	// KindIdentityPersistenceDegraded is never returned; identity.Store logs
	// it and authentication proceeds with a temporary client identifier.
	KindIdentityPersistenceDegraded
	// KindAborted: the attempt was cut short by a panicking progress callback.
	KindAborted
)

func (k Kind) String() string {
	switch k {
	case KindTransportUnavailable:
		return "transport unavailable"
	case KindInvalidLogin:
		return "invalid login"
	case KindNotEntitled:
		return "not entitled"
	case KindAccountNotFound:
		return "account not found"
	case KindIdentityPersistenceDegraded:
		return "identity persistence degraded"
	case KindAborted:
		return "aborted"
	default:
		return fmt.Sprintf("unknown (%d)", int(k))
	}
}

func (k Kind) Error() string {
	return k.String()
}

// Messages shown to the player.
const (
	msgUnavailable     = "Authentication server is unavailable. Please try again later."
	msgInvalidLogin    = "Invalid Login"
	msgNotEntitled     = "You do not own Minecraft. Please buy it at minecraft.net"
	msgAccountNotFound = "Minecraft Account could not be found."
	msgAborted         = "Authentication was aborted."
)

// AuthError is a failed authentication attempt.
type AuthError struct {
	Kind Kind
	// Msg is safe to show to the end user.
	Msg string
	Err error
}

func newAuthError(kind Kind, msg string, err error) *AuthError {
	return &AuthError{Kind: kind, Msg: msg, Err: err}
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *AuthError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindOf returns the Kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnknown
}

// UserMessage returns the text to show the player for err.
func UserMessage(err error) string {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Msg
	}
	return err.Error()
}
