package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/alien-evolution/internal/core"
	"github.com/vovakirdan/alien-evolution/internal/storage"
)

type stubGame struct {
	steps   int
	taps    int
	resets  int
	resizes int
	lastNow time.Duration
	last    core.RuntimeConfig
	emit    []core.Event
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.last = cfg
}

func (g *stubGame) Resize(cfg core.RuntimeConfig) {
	g.resizes++
	g.last = cfg
}

func (g *stubGame) Step(f core.Frame) core.StepResult {
	g.steps++
	g.lastNow = f.Now
	if f.Input.Has(core.ActionTap) {
		g.taps++
	}
	events := g.emit
	g.emit = nil
	return core.StepResult{Events: events}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "stub")
}

// fakeSource is a manually advanced time source.
type fakeSource struct {
	t time.Time
}

func (f *fakeSource) now() time.Time { return f.t }

func newTestModel(t *testing.T, game *stubGame, store *storage.Store) (Model, *fakeSource) {
	t.Helper()
	src := &fakeSource{t: time.Unix(1000, 0)}
	m := NewModel(game, Options{Store: store, Clock: core.NewClock(src.now)}, core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  25,
		TickRate: 60,
	})
	m.Init()
	return m, src
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{" ", core.ActionTap, false},
		{"enter", core.ActionTap, false},
		{"p", core.ActionPause, false},
		{"r", core.ActionReset, false},
		{"tab", core.ActionStats, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	for _, tt := range tests {
		action, quit := km.MapKey(keyMsg(tt.key))
		if action != tt.action || quit != tt.quit {
			t.Errorf("MapKey(%q) = (%s, %v), expected (%s, %v)", tt.key, action, quit, tt.action, tt.quit)
		}
	}
}

func TestMapKeyToFrameKeepsOnlyGameActions(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(keyMsg("p"), &frame)
	km.MapKeyToFrame(keyMsg("r"), &frame)
	km.MapKeyToFrame(keyMsg(" "), &frame)

	if frame.Has(core.ActionPause) {
		t.Error("pause is handled by the platform, not the game")
	}
	if !frame.Has(core.ActionReset) || !frame.Has(core.ActionTap) {
		t.Error("reset and tap should reach the game")
	}
}

func TestPlayfieldLeavesRoomForFooter(t *testing.T) {
	game := &stubGame{}
	newTestModel(t, game, nil)

	if game.last.ScreenW != 80 || game.last.ScreenH != 24 {
		t.Errorf("game sized %dx%d, expected 80x24", game.last.ScreenW, game.last.ScreenH)
	}
}

func TestTickStepsGameWithClock(t *testing.T) {
	game := &stubGame{}
	m, src := newTestModel(t, game, nil)

	src.t = src.t.Add(250 * time.Millisecond)
	_, cmd := update(t, m, TickMsg{Gen: m.gen})

	if game.steps != 1 {
		t.Fatalf("steps = %d, expected 1", game.steps)
	}
	if game.lastNow != 250*time.Millisecond {
		t.Errorf("frame time = %v, expected 250ms", game.lastNow)
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestTapReachesNextTickOnce(t *testing.T) {
	game := &stubGame{}
	m, _ := newTestModel(t, game, nil)

	m, _ = update(t, m, keyMsg(" "))
	m, _ = update(t, m, TickMsg{Gen: m.gen})
	m, _ = update(t, m, TickMsg{Gen: m.gen})

	if game.taps != 1 {
		t.Errorf("taps = %d, expected 1", game.taps)
	}
}

func TestMouseClickIsTap(t *testing.T) {
	game := &stubGame{}
	m, _ := newTestModel(t, game, nil)

	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, TickMsg{Gen: m.gen})

	if game.taps != 1 {
		t.Errorf("taps = %d, expected 1", game.taps)
	}
}

func TestPauseStopsLoopAndClock(t *testing.T) {
	game := &stubGame{}
	m, src := newTestModel(t, game, nil)
	oldGen := m.gen

	m, _ = update(t, m, keyMsg("p"))
	if !m.Paused() || !m.clock.Paused() {
		t.Fatal("p should pause the loop and the clock")
	}

	// The tick scheduled before pausing must not step the game
	m, cmd := update(t, m, TickMsg{Gen: oldGen})
	if game.steps != 0 || cmd != nil {
		t.Error("stale tick should be dropped")
	}

	// Taps while paused are discarded
	m, _ = update(t, m, keyMsg(" "))

	src.t = src.t.Add(5 * time.Second)
	m, cmd = update(t, m, keyMsg("p"))
	if m.Paused() {
		t.Fatal("second p should resume")
	}
	if cmd == nil {
		t.Fatal("resume should start a new tick chain")
	}
	if m.gen == oldGen {
		t.Error("resume should start a new generation")
	}

	src.t = src.t.Add(100 * time.Millisecond)
	m, _ = update(t, m, TickMsg{Gen: m.gen})
	if game.steps != 1 {
		t.Fatalf("steps = %d, expected 1", game.steps)
	}
	if game.lastNow != 100*time.Millisecond {
		t.Errorf("frame time = %v, paused time should not count", game.lastNow)
	}
	if game.taps != 0 {
		t.Error("tap made while paused should be discarded")
	}
}

func TestFocusLossPausesUntilFocusReturns(t *testing.T) {
	game := &stubGame{}
	m, _ := newTestModel(t, game, nil)

	m, _ = update(t, m, tea.BlurMsg{})
	if !m.Paused() {
		t.Fatal("blur should pause")
	}
	m, cmd := update(t, m, tea.FocusMsg{})
	if m.Paused() || cmd == nil {
		t.Error("focus should resume and restart ticking")
	}
}

func TestPauseReasonsStack(t *testing.T) {
	game := &stubGame{}
	m, _ := newTestModel(t, game, nil)

	m, _ = update(t, m, keyMsg("p"))
	m, _ = update(t, m, tea.BlurMsg{})
	m, cmd := update(t, m, tea.FocusMsg{})

	if !m.Paused() || cmd != nil {
		t.Error("regaining focus should not override a user pause")
	}
}

func TestResizeKeepsSessionForResizers(t *testing.T) {
	game := &stubGame{}
	m, _ := newTestModel(t, game, nil)
	resets := game.resets

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 41})

	if game.resizes != 1 || game.resets != resets {
		t.Errorf("resizes = %d, resets = %d; expected an in-place resize", game.resizes, game.resets-resets)
	}
	if game.last.ScreenW != 100 || game.last.ScreenH != 40 {
		t.Errorf("game sized %dx%d, expected 100x40", game.last.ScreenW, game.last.ScreenH)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen is %dx%d, expected 100x40", m.screen.Width(), m.screen.Height())
	}
}

func TestEventsAreJournaled(t *testing.T) {
	store, err := storage.Open("")
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	game := &stubGame{emit: []core.Event{
		{Type: core.EventRoundStarted, Stage: 1},
		{Type: core.EventCaught, Level: 1, Stage: 1},
	}}
	m, _ := newTestModel(t, game, store)

	m, _ = update(t, m, TickMsg{Gen: m.gen})

	sum, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Rounds != 1 || sum.Catches != 1 {
		t.Errorf("Summary() = %+v, expected one round and one catch", sum)
	}

	m, _ = update(t, m, keyMsg("tab"))
	if !m.Paused() {
		t.Error("journal overlay should pause the game")
	}
	if len(m.journal.outcomes) != 2 {
		t.Errorf("journal shows %d outcomes, expected 2", len(m.journal.outcomes))
	}
}

func TestQuit(t *testing.T) {
	game := &stubGame{}
	m, _ := newTestModel(t, game, nil)

	m, cmd := update(t, m, keyMsg("q"))
	if cmd == nil || !m.quitting {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestJournalClearKey(t *testing.T) {
	store, err := storage.Open("")
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	game := &stubGame{emit: []core.Event{{Type: core.EventExploded, Stage: 1, Explosions: 1}}}
	m, _ := newTestModel(t, game, store)
	m, _ = update(t, m, TickMsg{Gen: m.gen})

	// x outside the overlay is not a game key
	m, _ = update(t, m, keyMsg("x"))
	if sum, _ := store.Summary(); sum.Explosions != 1 {
		t.Fatalf("journal cleared outside the overlay: %+v", sum)
	}

	m, _ = update(t, m, keyMsg("tab"))
	m, _ = update(t, m, keyMsg("x"))

	if len(m.journal.outcomes) != 0 {
		t.Errorf("journal shows %d outcomes after clear, expected 0", len(m.journal.outcomes))
	}
	if !m.Paused() {
		t.Error("clearing should keep the overlay open")
	}
}
