package authenticator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeTokenObject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestTokenEngine(t *testing.T) {
	engine := NewTokenEngine("secret")

	token, err := engine.Generate(time.Minute, fakeTokenObject{ID: "id", Name: "name"})
	require.NoError(t, err)

	var obj fakeTokenObject
	require.NoError(t, engine.Verify(token, &obj))
	require.Equal(t, fakeTokenObject{ID: "id", Name: "name"}, obj)
}

func TestTokenEngineExpired(t *testing.T) {
	engine := NewTokenEngine("secret")

	token, err := engine.Generate(-time.Minute, fakeTokenObject{ID: "id"})
	require.NoError(t, err)

	var obj fakeTokenObject
	require.Error(t, engine.Verify(token, &obj))
}

func TestTokenEngineWrongSecret(t *testing.T) {
	token, err := NewTokenEngine("secret").Generate(time.Minute, fakeTokenObject{ID: "id"})
	require.NoError(t, err)

	var obj fakeTokenObject
	require.Error(t, NewTokenEngine("another-secret").Verify(token, &obj))
}
