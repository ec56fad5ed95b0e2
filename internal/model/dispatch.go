package model

type DispatchRequest struct {
	Model  string `uri:"model"`
	Method string `uri:"method"`
}

// DispatchResponse is keyed by the wire names of the invoked method and any
// chained methods that succeeded.
type DispatchResponse map[string]any
