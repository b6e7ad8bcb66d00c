package builtin

import (
	json "github.com/goccy/go-json"

	"github.com/blockforge/mcaddon"
)

// Event actions are the responses an entity event runs in order. Action keys
// are not namespaced on the wire ("run_command", not "minecraft:run_command").

// AddMobEffect applies a mob effect to the target context.
type AddMobEffect struct {
	Effect    string  `json:"effect"`
	Amplifier int     `json:"amplifier,omitempty"`
	Duration  float64 `json:"duration,omitempty"`
	Target    string  `json:"target,omitempty"`
}

func (AddMobEffect) ComponentName() string { return "add_mob_effect" }

// RemoveMobEffect clears a mob effect from the target context.
type RemoveMobEffect struct {
	Effect string `json:"effect"`
	Target string `json:"target,omitempty"`
}

func (RemoveMobEffect) ComponentName() string { return "remove_mob_effect" }

// RunCommand executes slash commands against the target context.
type RunCommand struct {
	Command []string `json:"command"`
	Target  string   `json:"target,omitempty"`
}

func (RunCommand) ComponentName() string { return "run_command" }

// SetBlock replaces the block this event fired on.
type SetBlock struct {
	BlockType string `json:"block_type"`
}

func (SetBlock) ComponentName() string { return "set_block" }

// SetBlockState updates block state values from Molang expressions.
type SetBlockState struct {
	States map[string]mcaddon.Molang
}

func (SetBlockState) ComponentName() string { return "set_block_state" }
func (s SetBlockState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.States)
}
func (s *SetBlockState) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &s.States)
}

// DecrementStack consumes one item from the stack that triggered the event.
type DecrementStack struct {
	IgnoreGameMode bool `json:"ignore_game_mode,omitempty"`
}

func (DecrementStack) ComponentName() string { return "decrement_stack" }

// DamageActor deals typed damage to the target context.
type DamageActor struct {
	Type   string `json:"type"`
	Amount int    `json:"amount,omitempty"`
	Target string `json:"target,omitempty"`
}

func (DamageActor) ComponentName() string { return "damage" }

// TransformItem replaces the item that triggered the event.
type TransformItem struct {
	Transform string `json:"transform"`
}

func (TransformItem) ComponentName() string { return "transform_item" }

func registerActions(reg *mcaddon.Registry) error {
	codecs := []mcaddon.Codec{
		codecFor[AddMobEffect]("add_mob_effect"),
		codecFor[RemoveMobEffect]("remove_mob_effect"),
		codecFor[RunCommand]("run_command"),
		codecFor[SetBlock]("set_block"),
		codecFor[SetBlockState]("set_block_state"),
		codecFor[DecrementStack]("decrement_stack"),
		checkedCodec("damage", func(d DamageActor) error {
			if d.Amount < 0 {
				return constraint("damage amount must not be negative",
					map[string]any{"got": d.Amount})
			}
			return nil
		}),
		codecFor[TransformItem]("transform_item"),
	}
	for _, c := range codecs {
		if err := reg.Register(mcaddon.ScopeAction, c); err != nil {
			return err
		}
	}
	return nil
}
