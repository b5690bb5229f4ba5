package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-evolution/internal/core"
	"github.com/vovakirdan/alien-evolution/internal/registry"
	"github.com/vovakirdan/alien-evolution/internal/storage"
)

// footerHeight is the number of rows under the playfield.
const footerHeight = 1

// pauseReason records why the loop is stopped. The clock runs only when no
// reason is set.
type pauseReason uint8

const (
	pauseUser    pauseReason = 1 << iota // p key
	pauseFocus                           // terminal lost focus
	pauseJournal                         // journal overlay open
)

func (r pauseReason) String() string {
	switch r {
	case pauseUser:
		return "user"
	case pauseFocus:
		return "focus"
	case pauseJournal:
		return "journal"
	default:
		return "mixed"
	}
}

// Options wires the model to its collaborators. All fields are optional.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger
	Clock  *core.Clock
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	clock      *core.Clock
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keymap     *KeyMapper
	help       help.Model
	journal    journalView
	width      int
	height     int
	paused     pauseReason
	gen        int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg describes the whole terminal; the playfield leaves room for the footer.
func NewModel(game registry.Game, opts Options, cfg core.RuntimeConfig) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = core.NewClock(nil)
	}

	width, height := cfg.ScreenW, cfg.ScreenH
	cfg.ScreenH = max(height-footerHeight, 1)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     opts.Logger,
		clock:      opts.Clock,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keymap:     NewKeyMapper(),
		help:       help.New(),
		journal:    newJournalView(width, height),
		width:      width,
		height:     height,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "game", m.game.ID(),
		"width", m.config.ScreenW, "height", m.config.ScreenH, "fps", m.config.TickRate)

	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if IsTap(msg) && m.paused == 0 {
			m.inputFrame.Set(core.ActionTap)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.BlurMsg:
		return m.pause(pauseFocus)

	case tea.FocusMsg:
		return m.resume(pauseFocus)

	case TickMsg:
		if msg.Gen != m.gen || m.paused != 0 {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keymap.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("session ended", "reason", "quit")
		return m, tea.Quit
	}

	switch action {
	case core.ActionPause:
		if m.paused&pauseUser != 0 {
			return m.resume(pauseUser)
		}
		return m.pause(pauseUser)

	case core.ActionStats:
		if m.paused&pauseJournal != 0 {
			return m.resume(pauseJournal)
		}
		m.journal.refresh(m.store)
		return m.pause(pauseJournal)
	}

	if m.paused&pauseJournal != 0 {
		if key.Matches(msg, m.keymap.Keys().Clear) && m.store != nil {
			if err := m.store.Clear(); err != nil {
				m.logger.Warn("journal clear failed", "error", err)
			}
			m.journal.refresh(m.store)
			return m, nil
		}
		// Scrolling keys go to the table
		var cmd tea.Cmd
		m.journal.table, cmd = m.journal.table.Update(msg)
		return m, cmd
	}

	// Taps and restarts are discarded while paused
	if m.paused == 0 {
		m.keymap.MapKeyToFrame(msg, &m.inputFrame)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-footerHeight, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	m.journal.resize(msg.Width, msg.Height)

	// Games that can adapt in place keep their session
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config)
	} else {
		m.game.Reset(m.config)
	}
	m.logger.Debug("resized", "width", m.config.ScreenW, "height", m.config.ScreenH)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := core.Frame{Now: m.clock.Now(), Input: m.inputFrame}
	result := m.game.Step(frame)

	for _, e := range result.Events {
		m.record(e)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate, m.gen)
}

// record journals and logs one game event. The journal is best effort.
func (m Model) record(e core.Event) {
	fields := []any{"event", e.Type, "level", e.Level, "stage", e.Stage, "explosions", e.Explosions, "at", e.At}
	switch e.Type {
	case core.EventEvolved, core.EventExploded:
		m.logger.Info("game event", fields...)
	default:
		m.logger.Debug("game event", fields...)
	}

	if m.store == nil {
		return
	}
	if _, err := m.store.RecordOutcome(e); err != nil {
		m.logger.Warn("could not journal event", "event", e.Type, "error", err)
	}
}

// pause adds a pause reason, freezing the clock on the first one.
func (m Model) pause(reason pauseReason) (tea.Model, tea.Cmd) {
	if m.paused == 0 {
		m.clock.Pause()
		m.gen++ // Orphan the pending tick
		m.inputFrame.Clear()
		m.logger.Debug("paused", "reason", reason)
	}
	m.paused |= reason
	return m, nil
}

// resume removes a pause reason and restarts the loop when none remain.
func (m Model) resume(reason pauseReason) (tea.Model, tea.Cmd) {
	if m.paused&reason == 0 {
		return m, nil
	}
	m.paused &^= reason
	if m.paused != 0 {
		return m, nil
	}
	m.clock.Resume()
	m.gen++
	m.logger.Debug("resumed", "reason", reason)
	return m, tickCmd(m.config.TickRate, m.gen)
}

// Paused reports whether the loop is stopped for any reason.
func (m Model) Paused() bool {
	return m.paused != 0
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".evolve", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	keys := m.keymap.Keys()
	if m.paused&pauseJournal != 0 {
		return m.journal.View(m.help.ShortHelpView([]key.Binding{keys.Stats, keys.Clear, keys.Quit}))
	}
	helpLine := m.help.View(keys)

	m.screen.Clear()
	m.game.Render(m.screen)
	if m.paused != 0 {
		m.screen.DrawTextCentered(m.screen.Height()/2, " PAUSED ", core.ColorBrightYellow)
	}

	return RenderScreen(m.screen) + "\n" + footerStyle.Render(helpLine)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) error {
	model := NewModel(game, opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks are taps
		tea.WithReportFocus(),     // Pause when the terminal loses focus
	)

	_, err := p.Run()
	return err
}
