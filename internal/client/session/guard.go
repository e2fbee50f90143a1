package session

import (
	"context"
	"errors"

	"github.com/trademinutes/tmclient/internal/client/models"
	"github.com/trademinutes/tmclient/internal/client/nav"
	"github.com/trademinutes/tmclient/internal/common"
	"github.com/trademinutes/tmclient/internal/logging"
)

// TokenSource yields the current session token or ErrAuthMissing.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type ProfileFetcher interface {
	FetchProfile(ctx context.Context, token string) (models.Profile, error)
}

// Guard gates protected pages. It runs once per mount and is not
// re-validated while the page stays open.
type Guard struct {
	tokens  TokenSource
	fetcher ProfileFetcher
	nav     nav.Navigator
	log     logging.Logger
}

func NewGuard(tokens TokenSource, fetcher ProfileFetcher, n nav.Navigator, log logging.Logger) *Guard {
	return &Guard{tokens: tokens, fetcher: fetcher, nav: n, log: log}
}

// Check reads the token and validates it with one profile fetch. On any
// failure it navigates to the login route and returns the cause; no stored
// state is cleared. Without a token no request is made.
func (g *Guard) Check(ctx context.Context) (models.Profile, error) {
	tok, err := g.tokens.Token(ctx)
	if err != nil {
		if errors.Is(err, ErrAuthMissing) {
			g.log.Warn(ctx, "no token found, redirecting to login")
		} else {
			g.log.Error(ctx, "reading token failed, redirecting to login", "error", err)
		}
		g.nav.Navigate(common.RouteLogin)
		return models.Profile{}, err
	}

	p, err := g.fetcher.FetchProfile(ctx, tok)
	if err != nil {
		g.log.Error(ctx, "profile fetch failed, redirecting to login", "error", err)
		g.nav.Navigate(common.RouteLogin)
		return models.Profile{}, err
	}

	return p, nil
}
