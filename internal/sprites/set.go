package sprites

import (
	"fmt"

	"github.com/vovakirdan/alien-evolution/internal/evolution"
)

// Resolution says how a sprite request was satisfied.
type Resolution int

const (
	ResolvedExact Resolution = iota
	ResolvedFallback
	ResolvedPlaceholder
)

// String returns a short label for tables and logs.
func (r Resolution) String() string {
	switch r {
	case ResolvedExact:
		return "exact"
	case ResolvedFallback:
		return "fallback"
	case ResolvedPlaceholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// Set is the typed sprite table: alien art indexed by (stage, action) plus props.
// A Set is read-only once loaded.
type Set struct {
	aliens map[evolution.SpriteKey]Sprite
	props  map[Prop]Sprite
}

// NewSet creates an empty set. Every lookup on it yields a placeholder.
func NewSet() *Set {
	return &Set{
		aliens: make(map[evolution.SpriteKey]Sprite),
		props:  make(map[Prop]Sprite),
	}
}

// PutAlien stores art for a stage and action, replacing any previous entry.
func (s *Set) PutAlien(key evolution.SpriteKey, sp Sprite) {
	sp.Name = key.String()
	s.aliens[key] = sp
}

// PutProp stores art for a prop, replacing any previous entry.
func (s *Set) PutProp(p Prop, sp Sprite) {
	sp.Name = p.String()
	s.props[p] = sp
}

// Lookup returns the alien sprite for a stage and action.
func (s *Set) Lookup(stage int, action evolution.Action) Sprite {
	sp, _, _ := s.Resolve(stage, action)
	return sp
}

// Resolve returns the alien sprite for a stage and action, how it was found,
// and the key that supplied it. Missing art falls back to the nearest lower
// stage with the same action, then to a placeholder for the requested key.
func (s *Set) Resolve(stage int, action evolution.Action) (Sprite, Resolution, evolution.SpriteKey) {
	want := evolution.SpriteKeyFor(stage, action)
	if sp, ok := s.aliens[want]; ok {
		return sp, ResolvedExact, want
	}

	for key, ok := want.Lower(); ok; key, ok = key.Lower() {
		if sp, found := s.aliens[key]; found {
			return sp, ResolvedFallback, key
		}
	}

	return AlienPlaceholder(want), ResolvedPlaceholder, want
}

// Prop returns the sprite for a prop, or its placeholder.
func (s *Set) Prop(p Prop) Sprite {
	if sp, ok := s.props[p]; ok {
		return sp
	}
	return PropPlaceholder(p)
}

// HasProp reports whether real art is loaded for the prop.
func (s *Set) HasProp(p Prop) bool {
	_, ok := s.props[p]
	return ok
}

// Len returns the number of loaded alien and prop sprites.
func (s *Set) Len() int {
	return len(s.aliens) + len(s.props)
}

// ResolutionRow describes one cell of the resolution table.
type ResolutionRow struct {
	Key        evolution.SpriteKey
	Resolution Resolution
	Source     evolution.SpriteKey
}

// String renders the row the way the sprites command prints it.
func (r ResolutionRow) String() string {
	if r.Resolution == ResolvedFallback {
		return fmt.Sprintf("%s -> %s (%s)", r.Key, r.Source, r.Resolution)
	}
	return fmt.Sprintf("%s (%s)", r.Key, r.Resolution)
}

// Table resolves every stage/action pair up to maxStage.
func (s *Set) Table(maxStage int) []ResolutionRow {
	rows := make([]ResolutionRow, 0, maxStage*len(evolution.Actions))
	for stage := evolution.MinStage; stage <= maxStage; stage++ {
		for _, action := range evolution.Actions {
			_, res, src := s.Resolve(stage, action)
			rows = append(rows, ResolutionRow{
				Key:        evolution.SpriteKeyFor(stage, action),
				Resolution: res,
				Source:     src,
			})
		}
	}
	return rows
}
