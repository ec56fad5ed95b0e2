package xcontext

import "context"

type stateKey struct{}

// requestState is shared mutable per-request state. Middlewares run with
// contexts derived at different points of the chain, so the response and
// error live behind a pointer every derivation can reach.
type requestState struct {
	response any
	err      error
	written  bool
}

func WithRequestState(ctx context.Context) context.Context {
	return context.WithValue(ctx, stateKey{}, &requestState{})
}

func state(ctx context.Context) *requestState {
	return ctx.Value(stateKey{}).(*requestState)
}

func SetResponse(ctx context.Context, resp any) {
	state(ctx).response = resp
}

func GetResponse(ctx context.Context) any {
	return state(ctx).response
}

func SetError(ctx context.Context, err error) {
	state(ctx).err = err
}

func GetError(ctx context.Context) error {
	return state(ctx).err
}

// SetResponseWritten records that a middleware already wrote the response
// body, so the router must not write its default JSON rendering.
func SetResponseWritten(ctx context.Context) {
	state(ctx).written = true
}

func ResponseWritten(ctx context.Context) bool {
	return state(ctx).written
}
