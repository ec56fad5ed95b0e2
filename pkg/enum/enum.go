package enum

import (
	"fmt"
	"reflect"
)

var enumManager = map[string]any{}

type enum[T comparable] struct {
	toEnum   map[string]T
	toString map[T]string
}

// New registers value under its enum type with a human-readable name. It
// returns the value unchanged so it can be used in a var declaration.
func New[T comparable](value T, name string) T {
	t := reflect.TypeOf(value)
	if _, ok := enumManager[t.Name()]; !ok {
		enumManager[t.Name()] = enum[T]{
			toEnum:   make(map[string]T),
			toString: make(map[T]string),
		}
	}

	enumManager[t.Name()].(enum[T]).toEnum[name] = value
	enumManager[t.Name()].(enum[T]).toString[value] = name
	return value
}

func ToEnum[T comparable](s string) (T, error) {
	var defaultT T
	e, ok := enumManager[reflect.TypeOf(defaultT).Name()]
	if !ok {
		return defaultT, fmt.Errorf("not found enum type %T", defaultT)
	}

	t, ok := e.(enum[T]).toEnum[s]
	if !ok {
		return defaultT, fmt.Errorf("not found value %s in enum %T", s, defaultT)
	}

	return t, nil
}

// ToString returns the registered name of value, or an empty string if value
// was never registered.
func ToString[T comparable](value T) string {
	e, ok := enumManager[reflect.TypeOf(value).Name()]
	if !ok {
		return ""
	}

	return e.(enum[T]).toString[value]
}

// IsValid reports whether value was registered with New.
func IsValid[T comparable](value T) bool {
	e, ok := enumManager[reflect.TypeOf(value).Name()]
	if !ok {
		return false
	}

	_, ok = e.(enum[T]).toString[value]
	return ok
}
