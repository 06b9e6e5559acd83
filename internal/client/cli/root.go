package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	if a.account == nil {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.account.Name)
}

// Root greets the user, asks for credentials straight away and then serves
// the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the launcher (type 'help' for commands)")

	_ = a.Login(ctx)

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}
