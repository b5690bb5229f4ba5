package sprites

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-evolution/internal/core"
	"github.com/vovakirdan/alien-evolution/internal/evolution"
)

func TestDefaultSheetIsComplete(t *testing.T) {
	set, err := Load("", 5, nil)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	for _, row := range set.Table(5) {
		if row.Resolution != ResolvedExact {
			t.Errorf("default sheet should cover %s, got %s", row.Key, row.Resolution)
		}
	}
	for _, p := range Props {
		if !set.HasProp(p) {
			t.Errorf("default sheet should have prop %s", p)
		}
	}
}

func TestResolveFallsBackToNearestLowerStage(t *testing.T) {
	set := NewSet()
	set.PutAlien(evolution.SpriteKeyFor(1, evolution.ActionCatch), Sprite{Lines: []string{"one"}})
	set.PutAlien(evolution.SpriteKeyFor(2, evolution.ActionCatch), Sprite{Lines: []string{"two"}})
	set.PutAlien(evolution.SpriteKeyFor(4, evolution.ActionIdle), Sprite{Lines: []string{"idle4"}})

	sp, res, src := set.Resolve(4, evolution.ActionCatch)
	if res != ResolvedFallback {
		t.Fatalf("Resolve(4, catch) resolution = %s, expected fallback", res)
	}
	if src != evolution.SpriteKeyFor(2, evolution.ActionCatch) {
		t.Errorf("fallback should come from stage 2, got %s", src)
	}
	if sp.Lines[0] != "two" {
		t.Errorf("fallback should keep the same action, got %q", sp.Lines[0])
	}
}

func TestResolveExact(t *testing.T) {
	set := NewSet()
	set.PutAlien(evolution.SpriteKeyFor(3, evolution.ActionExplode), Sprite{Lines: []string{"boom"}})

	sp, res, _ := set.Resolve(3, evolution.ActionExplode)
	if res != ResolvedExact || sp.Lines[0] != "boom" {
		t.Errorf("Resolve(3, explode) = %v %s", sp.Lines, res)
	}
	if sp.Name != "stage3_explode" {
		t.Errorf("PutAlien should name the sprite by key, got %q", sp.Name)
	}
}

func TestResolvePlaceholderIsDeterministic(t *testing.T) {
	set := NewSet()
	set.PutAlien(evolution.SpriteKeyFor(2, evolution.ActionIdle), Sprite{Lines: []string{"idle"}})

	a, res, _ := set.Resolve(3, evolution.ActionCatch)
	if res != ResolvedPlaceholder || !a.Placeholder {
		t.Fatalf("expected a placeholder, got %s", res)
	}
	b := set.Lookup(3, evolution.ActionCatch)

	if strings.Join(a.Lines, "\n") != strings.Join(b.Lines, "\n") || a.Color != b.Color {
		t.Error("placeholders for the same key should be identical")
	}
	if a.Color != core.ColorPurple {
		t.Errorf("stage 3 placeholder should be purple, got %s", a.Color)
	}
	if !strings.Contains(a.Lines[1], "S3_catch") {
		t.Errorf("placeholder should be labelled S3_catch, got %q", a.Lines[1])
	}
}

func TestPropPlaceholder(t *testing.T) {
	set := NewSet()
	sp := set.Prop(PropMeteorite)
	if !sp.Placeholder || sp.Color != core.ColorBrown {
		t.Errorf("missing meteorite should be a brown placeholder, got %+v", sp)
	}
}

func TestParseSkipsBadEntries(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	doc := `
props:
  meteorite:
    color: chartreuse
    art: ['@']
  comet:
    art: ['*']
stages:
  - stage: 1
    actions:
      idle: ['a']
      dance: ['b']
      catch: []
  - stage: 9
    actions:
      idle: ['c']
`
	set, err := Parse([]byte(doc), 5, logger)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if _, res, _ := set.Resolve(1, evolution.ActionIdle); res != ResolvedExact {
		t.Error("valid entry should load")
	}
	if _, res, _ := set.Resolve(1, evolution.ActionCatch); res != ResolvedPlaceholder {
		t.Error("empty art should be skipped")
	}
	if set.Prop(PropMeteorite).Color != core.ColorBrown {
		t.Error("unknown color should fall back to the prop color")
	}
	if set.Len() != 2 {
		t.Errorf("expected 2 sprites, got %d", set.Len())
	}

	out := buf.String()
	for _, want := range []string{"unknown color", "unknown prop", "unknown action", "no art", "out of range"} {
		if !strings.Contains(out, want) {
			t.Errorf("log should mention %q:\n%s", want, out)
		}
	}
}

func TestParseRejectsBrokenYAML(t *testing.T) {
	if _, err := Parse([]byte("stages: [\n"), 5, nil); err == nil {
		t.Error("broken YAML should be an error")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	doc := "stages:\n  - stage: 2\n    color: red\n    actions:\n      idle: ['custom']\n"
	if err := os.WriteFile(filepath.Join(dir, SheetFileName), []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	set, err := Load(dir, 5, nil)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	sp := set.Lookup(2, evolution.ActionIdle)
	if sp.Lines[0] != "custom" || sp.Color != core.ColorRed {
		t.Errorf("override should replace stage 2 idle, got %+v", sp)
	}
	if _, res, _ := set.Resolve(2, evolution.ActionCatch); res != ResolvedExact {
		t.Error("entries not in the override should keep their defaults")
	}
}

func TestLoadMissingOverrideFile(t *testing.T) {
	set, err := Load(t.TempDir(), 5, nil)
	if err != nil {
		t.Fatalf("a directory without a sheet should not be an error: %v", err)
	}
	if set.Len() == 0 {
		t.Error("defaults should still be loaded")
	}
}

func TestSpriteDrawSkipsSpaces(t *testing.T) {
	s := core.NewScreen(10, 5)
	s.SetColored(4, 2, '#', core.ColorGray)

	sp := Sprite{Lines: []string{"a a", "b b", "c c"}}
	sp.Draw(s, 4, 2, core.ColorGreen)

	// 3x3 centered on (4,2) starts at (3,1)
	if s.Get(3, 1) != 'a' || s.Get(5, 3) != 'c' {
		t.Errorf("sprite drawn at the wrong place:\n%s", s.String())
	}
	if s.Get(4, 2) != '#' {
		t.Error("spaces should be transparent")
	}
	if s.GetCell(3, 1).Color != core.ColorGreen {
		t.Error("sprite should use the given color")
	}
}

func TestTableRowString(t *testing.T) {
	set := NewSet()
	set.PutAlien(evolution.SpriteKeyFor(1, evolution.ActionIdle), Sprite{Lines: []string{"x"}})

	rows := set.Table(2)
	if len(rows) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(rows))
	}
	if got := rows[3].String(); got != "stage2_idle -> stage1_idle (fallback)" {
		t.Errorf("row string = %q", got)
	}
}
