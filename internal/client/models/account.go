package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Account is a game account resolved from a valid session token.
//
// Skins is the raw "skins" array from the profile response; the client
// passes it through untouched. ExpiresAt is zero when the token does not
// carry a readable expiry.
type Account struct {
	Name        string          `json:"name"`
	ID          string          `json:"id"`
	AccessToken string          `json:"-"`
	Skins       json.RawMessage `json:"skins"`
	ExpiresAt   time.Time       `json:"expires_at,omitzero"`
}

// String renders the account without its token.
func (a *Account) String() string {
	if a == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s (%s)", a.Name, a.ID)
}

// Expired reports whether the session token is known to have expired at now.
func (a *Account) Expired(now time.Time) bool {
	return !a.ExpiresAt.IsZero() && !now.Before(a.ExpiresAt)
}
