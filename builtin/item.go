package builtin

import (
	json "github.com/goccy/go-json"

	"github.com/blockforge/mcaddon"
)

// AllowOffHand lets the item be equipped in the off hand.
type AllowOffHand struct{ Value bool }

func (AllowOffHand) ComponentName() string          { return "minecraft:allow_off_hand" }
func (a AllowOffHand) MarshalJSON() ([]byte, error) { return json.Marshal(a.Value) }
func (a *AllowOffHand) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &a.Value)
}

// CanDestroyInCreative controls block breaking while in creative mode.
type CanDestroyInCreative struct{ Value bool }

func (CanDestroyInCreative) ComponentName() string          { return "minecraft:can_destroy_in_creative" }
func (c CanDestroyInCreative) MarshalJSON() ([]byte, error) { return json.Marshal(c.Value) }
func (c *CanDestroyInCreative) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &c.Value)
}

// Glint renders the enchantment shimmer.
type Glint struct{ Value bool }

func (Glint) ComponentName() string          { return "minecraft:glint" }
func (g Glint) MarshalJSON() ([]byte, error) { return json.Marshal(g.Value) }
func (g *Glint) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &g.Value)
}

// HandEquipped renders the item like a tool.
type HandEquipped struct{ Value bool }

func (HandEquipped) ComponentName() string          { return "minecraft:hand_equipped" }
func (h HandEquipped) MarshalJSON() ([]byte, error) { return json.Marshal(h.Value) }
func (h *HandEquipped) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &h.Value)
}

// MaxStackSize caps the stack count (1–64).
type MaxStackSize struct{ Value int }

func (MaxStackSize) ComponentName() string          { return "minecraft:max_stack_size" }
func (m MaxStackSize) MarshalJSON() ([]byte, error) { return json.Marshal(m.Value) }
func (m *MaxStackSize) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &m.Value)
}

// ItemDamage is the extra damage dealt when attacking with the item.
type ItemDamage struct{ Value int }

func (ItemDamage) ComponentName() string          { return "minecraft:damage" }
func (d ItemDamage) MarshalJSON() ([]byte, error) { return json.Marshal(d.Value) }
func (d *ItemDamage) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &d.Value)
}

// UseAnimation selects the animation played while using the item.
type UseAnimation struct{ Value string }

func (UseAnimation) ComponentName() string          { return "minecraft:use_animation" }
func (u UseAnimation) MarshalJSON() ([]byte, error) { return json.Marshal(u.Value) }
func (u *UseAnimation) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &u.Value)
}

// Icon selects the inventory sprite.
type Icon struct{ Texture string }

func (Icon) ComponentName() string          { return "minecraft:icon" }
func (i Icon) MarshalJSON() ([]byte, error) { return json.Marshal(i.Texture) }
func (i *Icon) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &i.Texture)
}

// Fuel lets the item power furnaces for Duration seconds.
type Fuel struct {
	Duration float64 `json:"duration"`
}

func (Fuel) ComponentName() string { return "minecraft:fuel" }

// Cooldown spaces out repeated uses of items sharing a category.
type Cooldown struct {
	Category string  `json:"category"`
	Duration float64 `json:"duration"`
}

func (Cooldown) ComponentName() string { return "minecraft:cooldown" }

// DamageChance is an inclusive percentage range.
type DamageChance struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Durability gives the item a damage bar.
type Durability struct {
	MaxDurability int           `json:"max_durability"`
	DamageChance  *DamageChance `json:"damage_chance,omitempty"`
}

func (Durability) ComponentName() string { return "minecraft:durability" }

// ItemDisplayName sets the display text (object-valued, unlike blocks).
type ItemDisplayName struct {
	Value string `json:"value"`
}

func (ItemDisplayName) ComponentName() string { return "minecraft:display_name" }

// Enchantable opts the item into an enchanting slot.
type Enchantable struct {
	Slot  string `json:"slot"`
	Value int    `json:"value"`
}

func (Enchantable) ComponentName() string { return "minecraft:enchantable" }

// Food makes the item edible.
type Food struct {
	Nutrition          int     `json:"nutrition"`
	SaturationModifier float64 `json:"saturation_modifier,omitempty"`
	CanAlwaysEat       bool    `json:"can_always_eat,omitempty"`
	UsingConvertsTo    string  `json:"using_converts_to,omitempty"`
}

func (Food) ComponentName() string { return "minecraft:food" }

// BlockPlacer plants a block when the item is used.
type BlockPlacer struct {
	Block string   `json:"block"`
	UseOn []string `json:"use_on,omitempty"`
}

func (BlockPlacer) ComponentName() string { return "minecraft:block_placer" }

// EntityPlacer spawns an entity when the item is used.
type EntityPlacer struct {
	Entity     string   `json:"entity"`
	UseOn      []string `json:"use_on,omitempty"`
	DispenseOn []string `json:"dispense_on,omitempty"`
}

func (EntityPlacer) ComponentName() string { return "minecraft:entity_placer" }

func registerItem(reg *mcaddon.Registry) error {
	codecs := []mcaddon.Codec{
		codecFor[AllowOffHand]("minecraft:allow_off_hand"),
		codecFor[CanDestroyInCreative]("minecraft:can_destroy_in_creative"),
		codecFor[Glint]("minecraft:glint"),
		codecFor[HandEquipped]("minecraft:hand_equipped"),
		checkedCodec("minecraft:max_stack_size", func(m MaxStackSize) error {
			if m.Value < 1 || m.Value > 64 {
				return constraint("max stack size must be between 1 and 64",
					map[string]any{"got": m.Value})
			}
			return nil
		}),
		checkedCodec("minecraft:damage", func(d ItemDamage) error {
			if d.Value < 0 {
				return constraint("item damage must not be negative",
					map[string]any{"got": d.Value})
			}
			return nil
		}),
		codecFor[UseAnimation]("minecraft:use_animation"),
		codecFor[Icon]("minecraft:icon"),
		checkedCodec("minecraft:fuel", func(f Fuel) error {
			if f.Duration <= 0 {
				return constraint("fuel duration must be positive",
					map[string]any{"got": f.Duration})
			}
			return nil
		}),
		codecFor[Cooldown]("minecraft:cooldown"),
		checkedCodec("minecraft:durability", func(d Durability) error {
			if d.MaxDurability < 1 {
				return constraint("max durability must be at least 1",
					map[string]any{"got": d.MaxDurability})
			}
			return nil
		}),
		codecFor[ItemDisplayName]("minecraft:display_name"),
		codecFor[Enchantable]("minecraft:enchantable"),
		codecFor[Food]("minecraft:food"),
		codecFor[BlockPlacer]("minecraft:block_placer"),
		codecFor[EntityPlacer]("minecraft:entity_placer"),
	}
	for _, c := range codecs {
		if err := reg.Register(mcaddon.ScopeItem, c); err != nil {
			return err
		}
	}
	return nil
}
