package mcaddon

// Package mcaddon models the content packages consumed by the Bedrock engine:
// structured, version-tagged JSON documents describing blocks, items,
// features, recipes, geometry and similar definitions.
//
// The package provides:
//
// - A typed entity/component object graph with last-write-wins component
//   insertion and ordered events (Entity, Component, Registry)
// - Version-aware serialization: a Pipeline resolves the schema for a
//   requested format version, emits the matching JSON shape, and validates
//   it before handing the bytes over (Marshal/Unmarshal/Load/Save)
// - A stable error model via Issues (JSON Pointer, code, message) that
//   reports every violation instead of stopping at the first
// - Forward-compatible passthrough: unknown components and fields round-trip
//   verbatim as Opaque values and properties
//
// Design policy:
// - Keep only public APIs in the root package; bundled schemas live under
//   schema/, typed codecs under builtin/, templates under template/, and the
//   CLI under cmd/mcaddon.
// - Registries are write-once at start-up, then read-only; register every
//   codec before the first Marshal/Unmarshal call.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	pipe := mcaddon.NewPipeline(builtin.Default(), schema.Default())
//	e, err := pipe.Load("ore_feature.json")
//	data, err := pipe.Marshal(e)
