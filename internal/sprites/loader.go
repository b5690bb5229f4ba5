package sprites

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/alien-evolution/internal/core"
	"github.com/vovakirdan/alien-evolution/internal/evolution"
)

//go:embed defaults/sprites.yaml
var defaultSheet []byte

// SheetFileName is the override file looked up in a --sprites directory.
const SheetFileName = "sprites.yaml"

// sheet is the YAML layout of a sprite file.
type sheet struct {
	Props  map[string]sheetEntry `yaml:"props"`
	Stages []sheetStage          `yaml:"stages"`
}

type sheetEntry struct {
	Color string   `yaml:"color"`
	Art   []string `yaml:"art"`
}

type sheetStage struct {
	Stage   int                 `yaml:"stage"`
	Color   string              `yaml:"color"`
	Actions map[string][]string `yaml:"actions"`
}

// Load builds the sprite set from the embedded sheet, then applies
// dir/sprites.yaml on top when dir is non-empty. Entries that are malformed
// are logged and skipped: lookups for them fall back or use placeholders.
// Only an unreadable or unparsable override file is an error.
func Load(dir string, maxStage int, logger *log.Logger) (*Set, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	set := NewSet()
	if err := apply(set, defaultSheet, maxStage, logger); err != nil {
		// The embedded sheet is part of the binary; if it breaks, play on placeholders.
		logger.Warn("embedded sprite sheet unusable", "error", err)
	}

	if dir == "" {
		return set, nil
	}

	path := filepath.Join(dir, SheetFileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("no sprite sheet in directory, using defaults", "path", path)
		return set, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sprites: cannot read %s: %w", path, err)
	}
	if err := apply(set, data, maxStage, logger.With("sheet", path)); err != nil {
		return nil, fmt.Errorf("sprites: %s: %w", path, err)
	}
	return set, nil
}

// Parse builds a set from a single sheet document, without defaults.
func Parse(data []byte, maxStage int, logger *log.Logger) (*Set, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	set := NewSet()
	if err := apply(set, data, maxStage, logger); err != nil {
		return nil, fmt.Errorf("sprites: %w", err)
	}
	return set, nil
}

func apply(set *Set, data []byte, maxStage int, logger *log.Logger) error {
	var sh sheet
	if err := yaml.Unmarshal(data, &sh); err != nil {
		return fmt.Errorf("cannot parse sheet: %w", err)
	}

	for _, p := range Props {
		entry, ok := sh.Props[p.String()]
		if !ok {
			continue
		}
		if len(entry.Art) == 0 {
			logger.Warn("prop has no art, skipping", "prop", p)
			continue
		}
		set.PutProp(p, Sprite{Lines: entry.Art, Color: parseColor(entry.Color, propColors[p], logger)})
	}
	for name := range sh.Props {
		if !knownProp(name) {
			logger.Warn("unknown prop in sheet", "prop", name)
		}
	}

	for _, st := range sh.Stages {
		if st.Stage < evolution.MinStage || st.Stage > maxStage {
			logger.Warn("stage out of range, skipping", "stage", st.Stage, "max", maxStage)
			continue
		}
		color := parseColor(st.Color, StageColor(st.Stage), logger)
		for name, art := range st.Actions {
			action, err := evolution.ParseAction(name)
			if err != nil {
				logger.Warn("unknown action, skipping", "stage", st.Stage, "action", name)
				continue
			}
			if len(art) == 0 {
				logger.Warn("sprite has no art, skipping", "sprite", evolution.SpriteKeyFor(st.Stage, action))
				continue
			}
			set.PutAlien(evolution.SpriteKeyFor(st.Stage, action), Sprite{Lines: art, Color: color})
		}
	}
	return nil
}

func parseColor(name string, fallback core.Color, logger *log.Logger) core.Color {
	if name == "" {
		return fallback
	}
	c, ok := core.ParseColor(name)
	if !ok {
		logger.Warn("unknown color, using default", "color", name)
		return fallback
	}
	return c
}

func knownProp(name string) bool {
	for _, p := range Props {
		if p.String() == name {
			return true
		}
	}
	return false
}
