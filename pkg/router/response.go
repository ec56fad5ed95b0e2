package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wyrmsheet/backend/pkg/errorx"
	"github.com/wyrmsheet/backend/pkg/xcontext"
)

func httpStatus(code errorx.Code) int {
	switch code {
	case errorx.BadRequest:
		return http.StatusBadRequest
	case errorx.PermissionDenied:
		return http.StatusForbidden
	case errorx.NotFound:
		return http.StatusNotFound
	case errorx.Unauthenticated, errorx.TokenExpired, errorx.StolenDetected:
		return http.StatusUnauthorized
	case errorx.AlreadyExists:
		return http.StatusConflict
	case errorx.Unavailable:
		return http.StatusServiceUnavailable
	case errorx.NotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// writeResponse renders the default JSON response, unless an After middleware
// already wrote the body (redirect, template page).
func writeResponse(ctx context.Context) {
	if xcontext.ResponseWritten(ctx) {
		return
	}

	w := xcontext.HTTPWriter(ctx)
	w.Header().Set("Content-Type", "application/json")

	if err := xcontext.GetError(ctx); err != nil {
		errx := errorx.Error{}
		if !errors.As(err, &errx) {
			errx = errorx.Unknown
		}

		w.WriteHeader(httpStatus(errx.Code))
		if err := json.NewEncoder(w).Encode(map[string]any{"error": errx.Message}); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot write the error response: %v", err)
		}
		return
	}

	resp := xcontext.GetResponse(ctx)
	if resp == nil {
		resp = map[string]any{}
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot write the response: %v", err)
	}
}
