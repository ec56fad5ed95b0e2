package router

import (
	"context"
	"net/http"

	"github.com/rs/cors"
	"github.com/wyrmsheet/backend/config"
	"github.com/wyrmsheet/backend/pkg/authenticator"
	"github.com/wyrmsheet/backend/pkg/logger"
	"github.com/wyrmsheet/backend/pkg/session"
	"github.com/wyrmsheet/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc may derive a new context (e.g. to attach the authenticated
// user id). Returning a nil context keeps the current one.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

type CloserFunc func(ctx context.Context)

type Router struct {
	mux *http.ServeMux

	cfg          config.Configs
	logger       logger.Logger
	db           *gorm.DB
	tokenEngine  authenticator.TokenEngine
	sessionStore *session.Store

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, logger logger.Logger) *Router {
	return &Router{
		mux:          http.NewServeMux(),
		cfg:          cfg,
		logger:       logger,
		db:           db,
		tokenEngine:  authenticator.NewTokenEngine(cfg.Auth.TokenSecret),
		sessionStore: session.NewCookieStore(cfg.Session.Name, []byte(cfg.Session.Secret)),
	}
}

// Branch returns a router sharing the same mux but with an independent
// middleware chain, seeded with the current one.
func (r *Router) Branch() *Router {
	return &Router{
		mux:          r.mux,
		cfg:          r.cfg,
		logger:       r.logger,
		db:           r.db,
		tokenEngine:  r.tokenEngine,
		sessionStore: r.sessionStore,
		befores:      slices.Clone(r.befores),
		afters:       slices.Clone(r.afters),
		closers:      slices.Clone(r.closers),
	}
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) After(middleware MiddlewareFunc) {
	r.afters = append(r.afters, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc("GET "+pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc("POST "+pattern, wrapHandler(r, http.MethodPost, handler))
}

func (r *Router) Static(pattern, root string) {
	r.mux.Handle(pattern, http.StripPrefix(pattern, http.FileServer(http.Dir(root))))
}

func (r *Router) Handler() http.Handler {
	return cors.New(cors.Options{
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowCredentials: true,
	}).Handler(r.mux)
}

func wrapHandler[Request, Response any](
	r *Router, method string, handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	befores := slices.Clone(r.befores)
	afters := slices.Clone(r.afters)
	closers := slices.Clone(r.closers)

	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		ctx = xcontext.WithHTTPRequest(ctx, req)
		ctx = xcontext.WithHTTPWriter(ctx, w)
		ctx = xcontext.WithDB(ctx, r.db)
		ctx = xcontext.WithConfigs(ctx, r.cfg)
		ctx = xcontext.WithLogger(ctx, r.logger)
		ctx = xcontext.WithTokenEngine(ctx, r.tokenEngine)
		ctx = xcontext.WithSessionStore(ctx, r.sessionStore)
		ctx = xcontext.WithRequestState(ctx)

		func() {
			for _, middleware := range befores {
				newCtx, err := middleware(ctx)
				if err != nil {
					xcontext.SetError(ctx, err)
					return
				}
				if newCtx != nil {
					ctx = newCtx
				}
			}

			var request Request
			if err := bindRequest(ctx, method, &request); err != nil {
				xcontext.SetError(ctx, err)
				return
			}

			resp, err := handler(ctx, &request)
			if err != nil {
				xcontext.SetError(ctx, err)
				return
			}
			if resp != nil {
				xcontext.SetResponse(ctx, resp)
			}

			for _, middleware := range afters {
				newCtx, err := middleware(ctx)
				if err != nil {
					xcontext.SetError(ctx, err)
					return
				}
				if newCtx != nil {
					ctx = newCtx
				}
			}
		}()

		writeResponse(ctx)

		for _, closer := range closers {
			closer(ctx)
		}
	}
}
