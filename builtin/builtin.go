package builtin

import (
	"sync"

	"github.com/blockforge/mcaddon"
)

// Register seeds a registry with every built-in codec: block components,
// item components and event actions. It is the one call sites make during
// start-up, before the first document is serialized or deserialized.
func Register(reg *mcaddon.Registry) error {
	if reg == nil {
		return mcaddon.Issues{{Path: "/", Code: mcaddon.CodeComponentCodec, Message: "nil registry"}}
	}
	if err := registerBlock(reg); err != nil {
		return err
	}
	if err := registerItem(reg); err != nil {
		return err
	}
	return registerActions(reg)
}

var (
	defaultOnce sync.Once
	defaultReg  *mcaddon.Registry
)

// Default returns the shared registry pre-seeded with every built-in codec.
func Default() *mcaddon.Registry {
	defaultOnce.Do(func() {
		reg := mcaddon.NewRegistry()
		if err := Register(reg); err != nil {
			panic(err) // built-in tables are part of the build
		}
		defaultReg = reg
	})
	return defaultReg
}
