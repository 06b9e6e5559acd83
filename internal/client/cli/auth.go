package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/mcauth/internal/client/services"
	"github.com/dmitrijs2005/mcauth/internal/common"
)

// getSimpleText and getPassword point to the interactive input helpers and
// are swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for an email and password and authenticates them.
//
// Progress messages are printed as the attempt advances. On success the
// account is kept for the rest of the session; on failure the user-facing
// message is printed and the error returned. The password is wiped before
// returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res := <-a.authService.Authenticate(ctx, email, password, func(status string) {
		fmt.Fprintln(a.out, status)
	})
	if res.Err != nil {
		switch services.KindOf(res.Err) {
		case services.KindUnknown, services.KindAborted:
			a.logger.Error(ctx, "login failed", "error", res.Err)
		}
		fmt.Fprintln(a.out, services.UserMessage(res.Err))
		return res.Err
	}

	a.account = res.Account
	return nil
}

// WhoAmI prints the account of the current session.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	fmt.Fprintf(a.out, "%s\n", a.account)
	if !a.account.ExpiresAt.IsZero() {
		state := "expires"
		if a.account.Expired(time.Now()) {
			state = "expired"
		}
		fmt.Fprintf(a.out, "Session %s at %s\n", state, a.account.ExpiresAt.Local().Format(time.RFC1123))
	}
	return nil
}

// Logout forgets the current session. Nothing is stored, so nothing is
// cleaned up on disk.
func (a *App) Logout(ctx context.Context) error {
	a.account = nil
	return nil
}
