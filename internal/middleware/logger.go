package middleware

import (
	"context"

	"github.com/wyrmsheet/backend/pkg/router"
	"github.com/wyrmsheet/backend/pkg/xcontext"
)

// Logger logs every finished request with its outcome.
func Logger() router.CloserFunc {
	return func(ctx context.Context) {
		req := xcontext.HTTPRequest(ctx)
		if err := xcontext.GetError(ctx); err != nil {
			xcontext.Logger(ctx).Infof("%s %s failed: %v", req.Method, req.URL.Path, err)
			return
		}

		xcontext.Logger(ctx).Debugf("%s %s done", req.Method, req.URL.Path)
	}
}
