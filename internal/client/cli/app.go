package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/dmitrijs2005/mcauth/internal/client/client"
	"github.com/dmitrijs2005/mcauth/internal/client/config"
	"github.com/dmitrijs2005/mcauth/internal/client/models"
	"github.com/dmitrijs2005/mcauth/internal/client/services"
	"github.com/dmitrijs2005/mcauth/internal/identity"
	"github.com/dmitrijs2005/mcauth/internal/logging"
)

// authenticator is the part of services.AuthService the CLI uses.
type authenticator interface {
	Authenticate(ctx context.Context, email string, password []byte, progress services.ProgressFunc) <-chan services.Result
}

// logOutput receives the structured log; tests replace it.
var logOutput io.Writer = os.Stderr

type App struct {
	config      *config.Config
	logger      logging.Logger
	authService authenticator
	account     *models.Account
	reader      *bufio.Reader
	out         io.Writer
}

// NewApp wires the identity store, HTTP transport and auth service described
// by c. It fails only on an unusable endpoint URL.
func NewApp(c *config.Config) (*App, error) {
	for _, u := range []string{c.AuthURL, c.ProfileURL} {
		if _, err := url.ParseRequestURI(u); err != nil {
			return nil, fmt.Errorf("invalid endpoint %q: %w", u, err)
		}
	}

	logger := logging.Setup(c.LogFormat, c.LogLevel, logOutput)

	ids := identity.NewStore(c.ClientIDFile(), logger)
	transport := client.NewHTTPTransport(c.RequestTimeout, c.UserAgent)
	as := services.NewAuthService(transport, ids, c.Endpoints(), logger)
	logger.Debug(context.Background(), "client identity ready",
		"path", ids.Path(), "client_token", as.ClientToken())

	return &App{
		config:      c,
		logger:      logger,
		authService: as,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.account != nil
}

// Account returns the account of the current session, or nil.
func (a *App) Account() *models.Account {
	return a.account
}
