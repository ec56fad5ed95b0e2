package authenticator

import (
	"context"

	"golang.org/x/oauth2"
)

type OAuth2User struct {
	ID       string
	Username string
}

// IOAuth2Service matches the parts of oauth2.Config the login flow needs, so
// the embedded config satisfies it directly.
type IOAuth2Service interface {
	Service() string
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string
	Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)
	VerifyIDToken(ctx context.Context, token *oauth2.Token) (OAuth2User, error)
}
