// Package builtin registers the typed component and event-action codecs for
// the stock content types. Call Register (or use Default) before the first
// Marshal/Unmarshal; the registry is read-only after start-up.
package builtin

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/blockforge/mcaddon"
)

// jsonCodec maps a component struct to its wire value through its JSON
// encoding. Scalar-valued components implement MarshalJSON/UnmarshalJSON to
// emit bare values instead of objects. check runs typed payload constraints
// beyond generic schema shape, both on encode and decode.
type jsonCodec[T mcaddon.Component] struct {
	name  string
	check func(T) error
}

func codecFor[T mcaddon.Component](name string) jsonCodec[T] {
	return jsonCodec[T]{name: name}
}

func checkedCodec[T mcaddon.Component](name string, check func(T) error) jsonCodec[T] {
	return jsonCodec[T]{name: name, check: check}
}

func (c jsonCodec[T]) Name() string { return c.name }

func (c jsonCodec[T]) Encode(comp mcaddon.Component) (any, error) {
	t, ok := comp.(T)
	if !ok {
		return nil, mcaddon.Issues{{
			Path:    "/",
			Code:    mcaddon.CodeComponentCodec,
			Message: fmt.Sprintf("codec %q cannot encode %T", c.name, comp),
		}}
	}
	if c.check != nil {
		if err := c.check(t); err != nil {
			return nil, err
		}
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, mcaddon.Issues{{Path: "/", Code: mcaddon.CodeComponentCodec, Message: err.Error(), Cause: err}}
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, mcaddon.Issues{{Path: "/", Code: mcaddon.CodeComponentCodec, Message: err.Error(), Cause: err}}
	}
	return v, nil
}

func (c jsonCodec[T]) Decode(v any) (mcaddon.Component, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, mcaddon.Issues{{Path: "/", Code: mcaddon.CodeComponentCodec, Message: err.Error(), Cause: err}}
	}
	var t T
	if err := json.Unmarshal(b, &t); err != nil {
		return nil, mcaddon.Issues{{
			Path:    "/",
			Code:    mcaddon.CodeComponentCodec,
			Message: fmt.Sprintf("component %q: %v", c.name, err),
			Cause:   err,
		}}
	}
	if c.check != nil {
		if err := c.check(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func constraint(msg string, params map[string]any) error {
	return mcaddon.Issues{{
		Path:    "/",
		Code:    mcaddon.CodeComponentConstraint,
		Message: msg,
		Params:  params,
	}}
}
