package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthError_MatchesKindAndCause(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := fmt.Errorf("login: %w", newAuthError(KindTransportUnavailable, msgUnavailable, cause))

	assert.ErrorIs(t, err, KindTransportUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, KindInvalidLogin)
	assert.Equal(t, KindTransportUnavailable, KindOf(err))
	assert.Equal(t, msgUnavailable, UserMessage(err))
	assert.Equal(t, msgUnavailable+": dial tcp: refused", errors.Unwrap(err).Error())
}

func TestAuthError_WithoutCause(t *testing.T) {
	err := newAuthError(KindNotEntitled, msgNotEntitled, nil)

	assert.Equal(t, msgNotEntitled, err.Error())
	assert.ErrorIs(t, err, KindNotEntitled)
}

func TestKindOf_PlainError(t *testing.T) {
	err := errors.New("something else")

	assert.Equal(t, KindUnknown, KindOf(err))
	assert.Equal(t, "something else", UserMessage(err))
}

func TestKind_String(t *testing.T) {
	tests := map[Kind]string{
		KindTransportUnavailable:        "transport unavailable",
		KindInvalidLogin:                "invalid login",
		KindNotEntitled:                 "not entitled",
		KindAccountNotFound:             "account not found",
		KindIdentityPersistenceDegraded: "identity persistence degraded",
		KindAborted:                     "aborted",
		KindUnknown:                     "unknown (0)",
	}
	for k, want := range tests {
		assert.Equal(t, want, k.String())
		assert.Equal(t, want, k.Error())
	}
}
