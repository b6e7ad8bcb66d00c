// Package manifest supplies the pack-level metadata document consumed by the
// packaging layer: header and module UUIDs, pack semver, and the minimum
// engine version. The add-on core treats the result as opaque bytes.
package manifest

import (
	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/blockforge/mcaddon"
	"github.com/blockforge/mcaddon/schema"
)

// FormatVersion is the wire format version manifests are written at.
const FormatVersion = 2

// MinEngineVersion is the engine floor new packs declare by default.
var MinEngineVersion = [3]int{1, 20, 51}

// ModuleType enumerates the pack module kinds.
type ModuleType string

const (
	ModuleResources     ModuleType = "resources"
	ModuleData          ModuleType = "data"
	ModuleClientData    ModuleType = "client_data"
	ModuleInterface     ModuleType = "interface"
	ModuleWorldTemplate ModuleType = "world_template"
)

// Header identifies the pack.
type Header struct {
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	UUID             string `json:"uuid"`
	Version          [3]int `json:"version"`
	MinEngineVersion [3]int `json:"min_engine_version,omitempty"`
}

// Module declares one content module inside the pack.
type Module struct {
	Type        ModuleType `json:"type"`
	Description string     `json:"description,omitempty"`
	UUID        string     `json:"uuid"`
	Version     [3]int     `json:"version"`
}

// Manifest is the pack manifest document.
type Manifest struct {
	Format  int            `json:"format_version"`
	Header  Header         `json:"header"`
	Modules []Module       `json:"modules,omitempty"`
	Deps    []any          `json:"dependencies,omitempty"`
	Meta    map[string]any `json:"metadata,omitempty"`
}

// New builds a manifest with fresh UUIDs and the default engine floor.
func New(name string) *Manifest {
	return &Manifest{
		Format: FormatVersion,
		Header: Header{
			Name:             name,
			UUID:             uuid.NewString(),
			Version:          [3]int{1, 0, 0},
			MinEngineVersion: MinEngineVersion,
		},
	}
}

// AddModule appends a module with a fresh UUID, mirroring the header
// version.
func (m *Manifest) AddModule(t ModuleType, description string) *Module {
	m.Modules = append(m.Modules, Module{
		Type:        t,
		Description: description,
		UUID:        uuid.NewString(),
		Version:     m.Header.Version,
	})
	return &m.Modules[len(m.Modules)-1]
}

// Marshal renders the manifest and validates it against the bundled manifest
// schema for its format version.
func (m *Manifest) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	v := mcaddon.VersionOf(m.Format)
	if err := schema.Default().Validate("manifest", v, data); err != nil {
		return nil, err
	}
	return data, nil
}

// Load parses and validates a manifest document.
func Load(data []byte) (*Manifest, error) {
	var probe struct {
		Format int `json:"format_version"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, mcaddon.Issues{{Path: "/", Code: mcaddon.CodeParseError, Message: err.Error(), Cause: err}}
	}
	v, err := schema.Default().Resolve("manifest", mcaddon.VersionOf(probe.Format))
	if err != nil {
		return nil, err
	}
	if err := schema.Default().Validate("manifest", v, data); err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, mcaddon.Issues{{Path: "/", Code: mcaddon.CodeParseError, Message: err.Error(), Cause: err}}
	}
	return &m, nil
}
