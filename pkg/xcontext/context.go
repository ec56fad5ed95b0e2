package xcontext

import (
	"context"
	"net/http"

	"github.com/wyrmsheet/backend/config"
	"github.com/wyrmsheet/backend/pkg/authenticator"
	"github.com/wyrmsheet/backend/pkg/logger"
	"github.com/wyrmsheet/backend/pkg/session"
	"gorm.io/gorm"
)

type (
	dbKey            struct{}
	loggerKey        struct{}
	configsKey       struct{}
	sessionStoreKey  struct{}
	tokenEngineKey   struct{}
	httpRequestKey   struct{}
	httpWriterKey    struct{}
	requestUserIDKey struct{}
)

// dbState allows WithCommitDBTransaction and WithRollbackDBTransaction to
// close over the same transaction that WithDBTransaction opened, without
// returning a new context from every call site.
type dbState struct {
	db *gorm.DB
	tx *gorm.DB
}

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, &dbState{db: db})
}

func DB(ctx context.Context) *gorm.DB {
	state := ctx.Value(dbKey{}).(*dbState)
	if state.tx != nil {
		return state.tx
	}
	return state.db
}

// WithDBTransaction replaces the value returned by DB with a transaction. It
// must be paired with WithCommitDBTransaction or WithRollbackDBTransaction;
// after either one, DB falls back to the original connection.
func WithDBTransaction(ctx context.Context) context.Context {
	state := ctx.Value(dbKey{}).(*dbState)
	return context.WithValue(ctx, dbKey{}, &dbState{db: state.db, tx: state.db.Begin()})
}

func WithCommitDBTransaction(ctx context.Context) {
	state := ctx.Value(dbKey{}).(*dbState)
	if state.tx != nil {
		state.tx.Commit()
		state.tx = nil
	}
}

func WithRollbackDBTransaction(ctx context.Context) {
	state := ctx.Value(dbKey{}).(*dbState)
	if state.tx != nil {
		state.tx.Rollback()
		state.tx = nil
	}
}

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func Logger(ctx context.Context) logger.Logger {
	return ctx.Value(loggerKey{}).(logger.Logger)
}

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	return ctx.Value(configsKey{}).(config.Configs)
}

func WithSessionStore(ctx context.Context, store *session.Store) context.Context {
	return context.WithValue(ctx, sessionStoreKey{}, store)
}

func SessionStore(ctx context.Context) *session.Store {
	return ctx.Value(sessionStoreKey{}).(*session.Store)
}

func WithTokenEngine(ctx context.Context, engine authenticator.TokenEngine) context.Context {
	return context.WithValue(ctx, tokenEngineKey{}, engine)
}

func TokenEngine(ctx context.Context) authenticator.TokenEngine {
	return ctx.Value(tokenEngineKey{}).(authenticator.TokenEngine)
}

func WithHTTPRequest(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, httpRequestKey{}, r)
}

func HTTPRequest(ctx context.Context) *http.Request {
	r, _ := ctx.Value(httpRequestKey{}).(*http.Request)
	return r
}

func WithHTTPWriter(ctx context.Context, w http.ResponseWriter) context.Context {
	return context.WithValue(ctx, httpWriterKey{}, w)
}

func HTTPWriter(ctx context.Context) http.ResponseWriter {
	w, _ := ctx.Value(httpWriterKey{}).(http.ResponseWriter)
	return w
}

func WithRequestUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestUserIDKey{}, id)
}

// RequestUserID returns the authenticated user id, or an empty string for an
// anonymous request.
func RequestUserID(ctx context.Context) string {
	id, _ := ctx.Value(requestUserIDKey{}).(string)
	return id
}
