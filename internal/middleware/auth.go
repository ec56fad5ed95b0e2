package middleware

import (
	"context"
	"strings"

	"github.com/wyrmsheet/backend/internal/model"
	"github.com/wyrmsheet/backend/pkg/router"
	"github.com/wyrmsheet/backend/pkg/xcontext"
)

// Authenticate resolves the request user from a Bearer header or the access
// token cookie. An anonymous or invalid token leaves the request
// unauthenticated, the domain layer decides whether that is acceptable.
func Authenticate() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		token := tokenFromRequest(ctx)
		if token == "" {
			return nil, nil
		}

		var accessToken model.AccessToken
		if err := xcontext.TokenEngine(ctx).Verify(token, &accessToken); err != nil {
			xcontext.Logger(ctx).Debugf("Failed to verify access token: %v", err)
			return nil, nil
		}

		return xcontext.WithRequestUserID(ctx, accessToken.ID), nil
	}
}

func tokenFromRequest(ctx context.Context) string {
	req := xcontext.HTTPRequest(ctx)

	authorization := req.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(authorization, "Bearer "); ok {
		return token
	}

	cookie, err := req.Cookie(xcontext.Configs(ctx).Auth.AccessToken.Name)
	if err != nil {
		return ""
	}

	return cookie.Value
}
