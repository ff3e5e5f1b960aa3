package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mathsprint/internal/core"
	"github.com/vovakirdan/mathsprint/internal/game"
)

// Model is the Bubble Tea model driving the game machine.
type Model struct {
	machine   *game.Machine
	screen    *core.Screen
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	keys      KeyMap
	help      help.Model
	err       error // Fatal error that ended the program
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the machine.
func NewModel(machine *game.Machine, cfg core.RuntimeConfig) Model {
	cfg = cfg.Normalize()
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		machine:   machine,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpBarLines),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		keys:      DefaultKeyMap(),
		help:      h,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlS {
		m.saveScreenshot()
		return m, nil
	}

	ev, ok := m.keyMapper.MapKey(msg)
	if !ok {
		return m, nil
	}
	return m.dispatch(ev)
}

// handleMouse turns a left click on a drawn option into a selection.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	rects := optionRects(m.machine, m.screen.Width(), m.screen.Height())
	idx := hitOption(rects, msg.X, msg.Y)
	if idx < 0 {
		return m, nil
	}
	return m.dispatch(core.SelectEvent(idx))
}

func (m Model) dispatch(ev core.Event) (tea.Model, tea.Cmd) {
	if err := m.machine.HandleEvent(ev); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	if m.machine.Quit() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpBarLines)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the machine by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if err := m.machine.Update(); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	drawFrame(m.machine, m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".mathsprint", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.machine.State(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawFrame(m.machine, m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.ForState(m.machine.State()))
}

// Err returns the fatal error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program and blocks until the player quits.
// A fatal game error is returned after the terminal is restored.
func Run(machine *game.Machine, cfg core.RuntimeConfig) error {
	model := NewModel(machine, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clickable menu options
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
