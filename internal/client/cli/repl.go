package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL drives. App satisfies it; tests
// use a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads commands from reader until EOF or "exit"/"quit".
//
//	help           show available commands
//	login          authenticate (not logged in)
//	whoami         show the current account
//	logout         forget the current account
//	exit | quit    leave the program
//
// Errors from handlers are not fatal; handlers report them to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "mcauth %s> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: whoami, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: login, exit")
			}

		case "login":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Already logged in, logout first")
				continue
			}
			_ = a.Login(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
