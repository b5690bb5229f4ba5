package evolution

import "fmt"

// Action is what the alien is doing, which selects its sprite.
type Action int

const (
	ActionIdle Action = iota
	ActionCatch
	ActionExplode
)

// Actions lists every alien action in sheet order.
var Actions = []Action{ActionIdle, ActionCatch, ActionExplode}

// String returns the sprite sheet name of the action.
func (a Action) String() string {
	switch a {
	case ActionIdle:
		return "idle"
	case ActionCatch:
		return "catch"
	case ActionExplode:
		return "explode"
	default:
		return "unknown"
	}
}

// ParseAction resolves a sprite sheet action name.
func ParseAction(name string) (Action, error) {
	for _, a := range Actions {
		if a.String() == name {
			return a, nil
		}
	}
	return ActionIdle, fmt.Errorf("evolution: unknown action %q", name)
}

// SpriteKey indexes the alien sprite table.
type SpriteKey struct {
	Stage  int
	Action Action
}

// SpriteKeyFor builds the key for a stage and action.
func SpriteKeyFor(stage int, action Action) SpriteKey {
	return SpriteKey{Stage: stage, Action: action}
}

// String renders the key the way sprite sheets and logs name it, e.g. "stage3_catch".
func (k SpriteKey) String() string {
	return fmt.Sprintf("stage%d_%s", k.Stage, k.Action)
}

// Lower returns the same action one stage down, and false at MinStage.
func (k SpriteKey) Lower() (SpriteKey, bool) {
	if k.Stage <= MinStage {
		return k, false
	}
	return SpriteKey{Stage: k.Stage - 1, Action: k.Action}, true
}
