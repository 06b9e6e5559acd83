// Package services contains application services for the launcher client.
// This file defines the authentication service: credential exchange for a
// session token, then resolution of the token into an account profile.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/mcauth/internal/client/client"
	"github.com/dmitrijs2005/mcauth/internal/client/models"
	"github.com/dmitrijs2005/mcauth/internal/common"
	"github.com/dmitrijs2005/mcauth/internal/identity"
	"github.com/dmitrijs2005/mcauth/internal/logging"
)

const (
	DefaultAuthURL    = "https://authserver.mojang.com/authenticate"
	DefaultProfileURL = "https://api.minecraftservices.com/minecraft/profile"
	DefaultUserAgent  = "MCDocker"
)

// Progress messages, in the order they are reported.
const (
	StatusAuthenticating = "Authenticating"
	StatusVerifying      = "Verifying"
)

// ProgressFunc receives coarse progress messages. It runs inline on the
// goroutine doing the network calls, so it must return quickly.
type ProgressFunc func(status string)

// Endpoints configures where and as whom the service talks.
type Endpoints struct {
	AuthURL    string
	ProfileURL string
	UserAgent  string
}

// DefaultEndpoints returns the production endpoints.
func DefaultEndpoints() Endpoints {
	return Endpoints{AuthURL: DefaultAuthURL, ProfileURL: DefaultProfileURL, UserAgent: DefaultUserAgent}
}

// Result is the single completion value of Authenticate.
type Result struct {
	Account *models.Account
	Err     error
}

type agent struct {
	Name    string `json:"name"`
	Version int    `json:"version"`
}

// authenticateRequest holds only value fields, so copying it copies
// everything: the template kept by AuthService is never shared with an
// attempt.
type authenticateRequest struct {
	Agent       agent  `json:"agent"`
	ClientToken string `json:"clientToken"`
	Username    string `json:"username"`
	Password    string `json:"password"`
}

func (r authenticateRequest) withCredentials(username, password string) authenticateRequest {
	r.Username = username
	r.Password = password
	return r
}

type authenticateResponse struct {
	AccessToken string `json:"accessToken"`
}

type profileResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Skins json.RawMessage `json:"skins"`
	Error json.RawMessage `json:"error"`
}

// AuthService exchanges credentials for an Account. It is safe for
// concurrent use; attempts share nothing but the immutable request template.
type AuthService struct {
	transport client.Transport
	endpoints Endpoints
	logger    logging.Logger
	template  authenticateRequest
}

// NewAuthService loads the client identifier once from ids and binds the
// service to transport t. A nil logger discards everything.
func NewAuthService(t client.Transport, ids identity.Provider, ep Endpoints, l logging.Logger) *AuthService {
	if l == nil {
		l = logging.Discard()
	}
	return &AuthService{
		transport: t,
		endpoints: ep,
		logger:    l.With("component", "auth"),
		template: authenticateRequest{
			Agent:       agent{Name: "Minecraft", Version: 1},
			ClientToken: ids.LoadOrCreate(context.Background()),
		},
	}
}

// ClientToken returns the client identifier sent with every request.
func (a *AuthService) ClientToken() string {
	return a.template.ClientToken
}

// Authenticate runs Login on its own goroutine and returns immediately. The
// returned channel yields exactly one Result and is then closed. password is
// copied, so the caller may wipe its slice as soon as Authenticate returns.
// A panic in progress ends the attempt with an *AuthError of KindAborted.
func (a *AuthService) Authenticate(ctx context.Context, email string, password []byte, progress ProgressFunc) <-chan Result {
	out := make(chan Result, 1)
	pw := append([]byte(nil), password...)

	go func() {
		defer close(out)
		defer common.WipeByteArray(pw)
		defer func() {
			if r := recover(); r != nil {
				out <- Result{Err: newAuthError(KindAborted, msgAborted, fmt.Errorf("panic: %v", r))}
			}
		}()

		acc, err := a.Login(ctx, email, pw, progress)
		out <- Result{Account: acc, Err: err}
	}()

	return out
}

// Login performs the credential exchange and profile resolution on the
// calling goroutine. Failures are *AuthError values; nothing is retried.
// progress may be nil.
//
// The exchange is sent in strict mode. A 4xx it raises is the service
// refusing the credentials and maps to KindInvalidLogin; an unreachable
// server or a 5xx maps to KindTransportUnavailable.
func (a *AuthService) Login(ctx context.Context, email string, password []byte, progress ProgressFunc) (*models.Account, error) {
	if progress == nil {
		progress = func(string) {}
	}

	body, err := json.Marshal(a.template.withCredentials(email, string(password)))
	if err != nil {
		return nil, fmt.Errorf("encode authenticate request: %w", err)
	}

	progress(StatusAuthenticating)

	res, err := a.transport.Send(ctx, &client.Request{
		URL:    a.endpoints.AuthURL,
		Method: http.MethodPost,
		Header: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
			"User-Agent":   a.endpoints.UserAgent,
		},
		Body: body,
	}, false)
	if err != nil {
		if errors.Is(err, client.ErrRejected) {
			return nil, a.fail(ctx, KindInvalidLogin, msgInvalidLogin, err)
		}
		return nil, a.fail(ctx, KindTransportUnavailable, msgUnavailable, err)
	}
	if res == nil {
		return nil, a.fail(ctx, KindInvalidLogin, msgInvalidLogin, nil)
	}

	// A non-string accessToken fails to decode (InvalidLogin); an empty one
	// counts as absent (NotEntitled).
	var reply authenticateResponse
	if err := json.Unmarshal(res, &reply); err != nil {
		return nil, a.fail(ctx, KindInvalidLogin, msgInvalidLogin, err)
	}
	if reply.AccessToken == "" {
		return nil, a.fail(ctx, KindNotEntitled, msgNotEntitled, nil)
	}

	progress(StatusVerifying)

	account, err := a.Resolve(ctx, reply.AccessToken)
	if err != nil {
		return nil, a.fail(ctx, KindTransportUnavailable, msgUnavailable, err)
	}
	if account == nil {
		return nil, a.fail(ctx, KindAccountNotFound, msgAccountNotFound, nil)
	}

	progress("Welcome, " + account.Name + ".")
	a.logger.Info(ctx, "authenticated", "account", account.Name, "id", account.ID)

	return account, nil
}

// Resolve fetches the profile behind token. A profile response carrying an
// error field, or one that cannot be read as a profile, yields (nil, nil);
// an error is returned only when the profile service cannot be reached.
func (a *AuthService) Resolve(ctx context.Context, token string) (*models.Account, error) {
	res, err := a.transport.Send(ctx, &client.Request{
		URL:    a.endpoints.ProfileURL,
		Method: http.MethodGet,
		Header: map[string]string{
			"Authorization": "Bearer " + token,
			"User-Agent":    a.endpoints.UserAgent,
		},
	}, true)
	if err != nil {
		return nil, fmt.Errorf("resolve profile: %w", err)
	}
	if res == nil {
		return nil, nil
	}

	var p profileResponse
	if err := json.Unmarshal(res, &p); err != nil {
		a.logger.Warn(ctx, "unreadable profile response", "error", err)
		return nil, nil
	}
	if len(p.Error) > 0 || p.Name == "" || p.ID == "" {
		return nil, nil
	}

	return &models.Account{
		Name:        p.Name,
		ID:          p.ID,
		AccessToken: token,
		Skins:       p.Skins,
		ExpiresAt:   tokenExpiry(token),
	}, nil
}

func (a *AuthService) fail(ctx context.Context, kind Kind, msg string, err error) *AuthError {
	a.logger.Warn(ctx, "authentication failed", "kind", kind.String(), "error", err)
	return newAuthError(kind, msg, err)
}
