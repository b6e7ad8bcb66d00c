package builtin

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/blockforge/mcaddon"
)

// Trigger fires a block event in response to a world interaction. The engine
// fills the event's namespace from the block when authoring tools leave it
// bare.
type Trigger struct {
	Event     string         `json:"event,omitempty"`
	Target    string         `json:"target,omitempty"`
	Condition mcaddon.Molang `json:"condition,omitempty"`
	name      string         `json:"-"`
}

func (t Trigger) ComponentName() string { return t.name }

// OnInteract fires when the player interacts with the block.
func OnInteract(event string) Trigger {
	return Trigger{Event: event, name: "minecraft:on_interact"}
}

// OnStepOn fires when an actor steps onto the block.
func OnStepOn(event string) Trigger {
	return Trigger{Event: event, name: "minecraft:on_step_on"}
}

// OnStepOff fires when an actor steps off the block.
func OnStepOff(event string) Trigger {
	return Trigger{Event: event, name: "minecraft:on_step_off"}
}

// OnFallOn fires when an actor falls onto the block.
func OnFallOn(event string) Trigger {
	return Trigger{Event: event, name: "minecraft:on_fall_on"}
}

// OnPlaced fires when the block is placed.
func OnPlaced(event string) Trigger {
	return Trigger{Event: event, name: "minecraft:on_placed"}
}

// triggerCodec keeps the codec name on decoded triggers so they re-encode
// under the key they came from.
type triggerCodec struct{ name string }

func (c triggerCodec) Name() string { return c.name }

func (c triggerCodec) Encode(comp mcaddon.Component) (any, error) {
	t, ok := comp.(Trigger)
	if !ok {
		return nil, mcaddon.Issues{{Path: "/", Code: mcaddon.CodeComponentCodec,
			Message: fmt.Sprintf("codec %q cannot encode %T", c.name, comp)}}
	}
	out := map[string]any{}
	if t.Event != "" {
		out["event"] = t.Event
	}
	if t.Target != "" {
		out["target"] = t.Target
	}
	if t.Condition != "" {
		out["condition"] = string(t.Condition)
	}
	return out, nil
}

func (c triggerCodec) Decode(v any) (mcaddon.Component, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, mcaddon.Issues{{Path: "/", Code: mcaddon.CodeComponentCodec, Message: err.Error(), Cause: err}}
	}
	var t Trigger
	if err := json.Unmarshal(b, &t); err != nil {
		return nil, mcaddon.Issues{{Path: "/", Code: mcaddon.CodeComponentCodec, Message: err.Error(), Cause: err}}
	}
	t.name = c.name
	return t, nil
}

// Friction controls how much actors slide on the block (engine range 0–0.9).
type Friction struct{ Value float64 }

func (Friction) ComponentName() string          { return "minecraft:friction" }
func (f Friction) MarshalJSON() ([]byte, error) { return json.Marshal(f.Value) }
func (f *Friction) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &f.Value)
}

// LightEmission is the light level the block emits (0–15).
type LightEmission struct{ Level int }

func (LightEmission) ComponentName() string          { return "minecraft:light_emission" }
func (l LightEmission) MarshalJSON() ([]byte, error) { return json.Marshal(l.Level) }
func (l *LightEmission) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &l.Level)
}

// LightDampening is the amount of light the block filters out (0–15).
type LightDampening struct{ Level int }

func (LightDampening) ComponentName() string          { return "minecraft:light_dampening" }
func (l LightDampening) MarshalJSON() ([]byte, error) { return json.Marshal(l.Level) }
func (l *LightDampening) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &l.Level)
}

// DisplayName is the localization key shown for the block.
type DisplayName struct{ Key string }

func (DisplayName) ComponentName() string          { return "minecraft:display_name" }
func (d DisplayName) MarshalJSON() ([]byte, error) { return json.Marshal(d.Key) }
func (d *DisplayName) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &d.Key)
}

// Loot points at the loot table dropped when the block is destroyed.
type Loot struct{ Table string }

func (Loot) ComponentName() string          { return "minecraft:loot" }
func (l Loot) MarshalJSON() ([]byte, error) { return json.Marshal(l.Table) }
func (l *Loot) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &l.Table)
}

// MapColor is the color the block contributes to maps.
type MapColor struct{ Color string }

func (MapColor) ComponentName() string          { return "minecraft:map_color" }
func (m MapColor) MarshalJSON() ([]byte, error) { return json.Marshal(m.Color) }
func (m *MapColor) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &m.Color)
}

// BlockGeometry references the model rendered for the block.
type BlockGeometry struct{ Model string }

func (BlockGeometry) ComponentName() string          { return "minecraft:geometry" }
func (g BlockGeometry) MarshalJSON() ([]byte, error) { return json.Marshal(g.Model) }
func (g *BlockGeometry) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &g.Model)
}

// Box is the shared shape of collision and selection boxes.
type Box struct {
	Origin [3]float64 `json:"origin"`
	Size   [3]float64 `json:"size"`
}

// CollisionBox bounds the block for physics.
type CollisionBox struct {
	Box
}

func (CollisionBox) ComponentName() string { return "minecraft:collision_box" }

// SelectionBox bounds the block for targeting.
type SelectionBox struct {
	Box
}

func (SelectionBox) ComponentName() string { return "minecraft:selection_box" }

// DestructibleByExplosion configures blast resistance.
type DestructibleByExplosion struct {
	ExplosionResistance float64 `json:"explosion_resistance"`
}

func (DestructibleByExplosion) ComponentName() string {
	return "minecraft:destructible_by_explosion"
}

// DestructibleByMining configures mining speed.
type DestructibleByMining struct {
	SecondsToDestroy float64 `json:"seconds_to_destroy"`
}

func (DestructibleByMining) ComponentName() string { return "minecraft:destructible_by_mining" }

// Flammable configures fire spread behavior.
type Flammable struct {
	CatchChanceModifier   int `json:"catch_chance_modifier,omitempty"`
	DestroyChanceModifier int `json:"destroy_chance_modifier,omitempty"`
}

func (Flammable) ComponentName() string { return "minecraft:flammable" }

// CraftingTable turns the block into a workbench surface.
type CraftingTable struct {
	TableName    string   `json:"table_name"`
	CraftingTags []string `json:"crafting_tags,omitempty"`
}

func (CraftingTable) ComponentName() string { return "minecraft:crafting_table" }

// MaterialInstances maps faces to render materials. Payload entries are kept
// as raw maps; the render layer owns their meaning.
type MaterialInstances struct {
	Instances map[string]any
}

func (MaterialInstances) ComponentName() string { return "minecraft:material_instances" }
func (m MaterialInstances) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Instances)
}
func (m *MaterialInstances) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &m.Instances)
}

// BlockTags attaches arbitrary tag strings to the block.
type BlockTags struct{ Tags []string }

func (BlockTags) ComponentName() string          { return "minecraft:tags" }
func (t BlockTags) MarshalJSON() ([]byte, error) { return json.Marshal(t.Tags) }
func (t *BlockTags) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &t.Tags)
}

func registerBlock(reg *mcaddon.Registry) error {
	codecs := []mcaddon.Codec{
		triggerCodec{name: "minecraft:on_interact"},
		triggerCodec{name: "minecraft:on_step_on"},
		triggerCodec{name: "minecraft:on_step_off"},
		triggerCodec{name: "minecraft:on_fall_on"},
		triggerCodec{name: "minecraft:on_placed"},
		checkedCodec("minecraft:friction", func(f Friction) error {
			if f.Value < 0 || f.Value > 0.9 {
				return constraint("friction must be between 0 and 0.9",
					map[string]any{"got": f.Value})
			}
			return nil
		}),
		checkedCodec("minecraft:light_emission", func(l LightEmission) error {
			if l.Level < 0 || l.Level > 15 {
				return constraint("light emission must be between 0 and 15",
					map[string]any{"got": l.Level})
			}
			return nil
		}),
		checkedCodec("minecraft:light_dampening", func(l LightDampening) error {
			if l.Level < 0 || l.Level > 15 {
				return constraint("light dampening must be between 0 and 15",
					map[string]any{"got": l.Level})
			}
			return nil
		}),
		codecFor[DisplayName]("minecraft:display_name"),
		codecFor[Loot]("minecraft:loot"),
		codecFor[MapColor]("minecraft:map_color"),
		codecFor[BlockGeometry]("minecraft:geometry"),
		codecFor[CollisionBox]("minecraft:collision_box"),
		codecFor[SelectionBox]("minecraft:selection_box"),
		codecFor[DestructibleByExplosion]("minecraft:destructible_by_explosion"),
		codecFor[DestructibleByMining]("minecraft:destructible_by_mining"),
		codecFor[Flammable]("minecraft:flammable"),
		codecFor[CraftingTable]("minecraft:crafting_table"),
		codecFor[MaterialInstances]("minecraft:material_instances"),
		codecFor[BlockTags]("minecraft:tags"),
	}
	for _, c := range codecs {
		if err := reg.Register(mcaddon.ScopeBlock, c); err != nil {
			return err
		}
	}
	return nil
}
