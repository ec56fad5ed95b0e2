package middleware

import (
	"context"
	"html/template"
	"net/http"
	"time"

	"github.com/wyrmsheet/backend/pkg/router"
	"github.com/wyrmsheet/backend/pkg/xcontext"
)

// Responses opt into extra transport behavior by implementing one or more of
// these interfaces. The matching after-middleware picks them up.
type (
	RedirectInfoer interface {
		RedirectInfo() (statusCode int, url string)
	}

	SessionInfoer interface {
		SessionInfo() map[string]any
	}

	AccessTokenInfoer interface {
		AccessTokenInfo() (accessToken, refreshToken string)
	}

	TemplateInfoer interface {
		TemplateInfo() (name string, data any)
	}
)

// HandleSaveSession persists response session values into the cookie session.
func HandleSaveSession() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		info, ok := xcontext.GetResponse(ctx).(SessionInfoer)
		if !ok {
			return nil, nil
		}

		req := xcontext.HTTPRequest(ctx)
		session, err := xcontext.SessionStore(ctx).Get(req)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get the session: %v", err)
			return nil, nil
		}

		for name, value := range info.SessionInfo() {
			session.Values[name] = value
		}

		if err := xcontext.SessionStore(ctx).Save(req, xcontext.HTTPWriter(ctx), session); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot save the session: %v", err)
		}

		return nil, nil
	}
}

// HandleSetAccessToken turns token-bearing responses into cookies so browser
// flows work without a javascript client. Empty tokens delete the cookies.
func HandleSetAccessToken() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		info, ok := xcontext.GetResponse(ctx).(AccessTokenInfoer)
		if !ok {
			return nil, nil
		}

		accessToken, refreshToken := info.AccessTokenInfo()
		cfg := xcontext.Configs(ctx).Auth
		w := xcontext.HTTPWriter(ctx)

		setTokenCookie(w, cfg.AccessToken.Name, accessToken, cfg.AccessToken.Expiration)
		setTokenCookie(w, cfg.RefreshToken.Name, refreshToken, cfg.RefreshToken.Expiration)
		return nil, nil
	}
}

func setTokenCookie(w http.ResponseWriter, name, value string, expiration time.Duration) {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(expiration),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	if value == "" {
		cookie.Expires = time.Time{}
		cookie.MaxAge = -1
	}

	http.SetCookie(w, cookie)
}

// HandleRedirect writes a redirect when the response asks for one.
func HandleRedirect() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		if xcontext.ResponseWritten(ctx) {
			return nil, nil
		}

		info, ok := xcontext.GetResponse(ctx).(RedirectInfoer)
		if !ok {
			return nil, nil
		}

		code, url := info.RedirectInfo()
		if url == "" {
			return nil, nil
		}

		http.Redirect(xcontext.HTTPWriter(ctx), xcontext.HTTPRequest(ctx), url, code)
		xcontext.SetResponseWritten(ctx)
		return nil, nil
	}
}

// HandleRenderTemplate renders html pages for responses that name a
// template. It must run after HandleRedirect so redirects win.
func HandleRenderTemplate(tmpl *template.Template) router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		if xcontext.ResponseWritten(ctx) {
			return nil, nil
		}

		info, ok := xcontext.GetResponse(ctx).(TemplateInfoer)
		if !ok {
			return nil, nil
		}

		name, data := info.TemplateInfo()
		w := xcontext.HTTPWriter(ctx)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot execute template %s: %v", name, err)
		}

		xcontext.SetResponseWritten(ctx)
		return nil, nil
	}
}
