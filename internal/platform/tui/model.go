package tui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-duel/internal/core"
	"github.com/vovakirdan/snake-duel/internal/games/duel"
)

// Result describes one finished duel.
type Result struct {
	Outcome duel.Outcome
	Ticks   uint64
	Seed    int64
}

// Model is the Bubble Tea model for running a duel.
type Model struct {
	settings duel.Settings
	config   core.RuntimeConfig
	game     *duel.State
	gate     *core.TickGate
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	width    int // Terminal size, 0 until the first resize
	height   int
	onFinish func(Result)
	reported bool // Whether onFinish ran for the current game
	quitting bool
	err      error
}

// NewModel creates a duel model and lays out the first board.
// A zero seed in cfg is replaced with the current time.
func NewModel(settings duel.Settings, cfg core.RuntimeConfig) (Model, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game, err := duel.New(settings, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return Model{}, err
	}

	w, h := duel.BoardSize(settings.Grid)
	return Model{
		settings: settings,
		config:   cfg,
		game:     game,
		gate:     core.NewTickGate(cfg.TickInterval, time.Now()),
		screen:   core.NewScreen(w, h),
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}, nil
}

// OnFinish registers fn to be called once per duel when it ends.
func (m Model) OnFinish(fn func(Result)) Model {
	m.onFinish = fn
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		m.handleFrame(time.Time(msg))
		return m, frameCmd(m.config.FrameRate)
	}

	return m, nil
}

// handleKey processes keyboard input. Steering keys apply at once; the
// snake turns on its next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		if err := m.restart(time.Now().UnixNano(), time.Now()); err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if steer, ok := m.keys.Steer(msg); ok && !m.game.GameOver() {
		m.game.Steer(steer)
	}
	return m, nil
}

// handleFrame runs a simulation tick when the tick interval has elapsed.
func (m *Model) handleFrame(now time.Time) {
	if m.game.GameOver() || !m.gate.Ready(now) {
		return
	}

	m.game.Tick()

	if m.game.GameOver() && !m.reported {
		m.reported = true
		m.keys.Restart.SetEnabled(true)
		if m.onFinish != nil {
			m.onFinish(m.Result())
		}
	}
}

// restart lays out a fresh board with a new seed.
func (m *Model) restart(seed int64, now time.Time) error {
	game, err := duel.New(m.settings, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	m.game = game
	m.config.Seed = seed
	m.gate.Reset(now)
	m.reported = false
	m.keys.Restart.SetEnabled(false)
	return nil
}

// Result returns the state of the current duel.
func (m Model) Result() Result {
	return Result{
		Outcome: m.game.Outcome(),
		Ticks:   m.game.Ticks(),
		Seed:    m.config.Seed,
	}
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	boardW, boardH := m.screen.Width(), m.screen.Height()
	if m.width > 0 && (m.width < boardW || m.height < boardH+1) {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			"Window too small\nResize to continue")
	}

	m.game.Render(m.screen)
	if m.game.GameOver() {
		drawOverlay(m.screen, OutcomeLabel(m.game.Outcome()), "r restart  q quit")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		helpStyle.Render(m.help.View(m.keys)),
	)
	if m.width == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Run starts the Bubble Tea program and returns the final model state.
func Run(m Model, opts ...tea.ProgramOption) (Model, error) {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return m, err
	}
	if fm, ok := final.(Model); ok {
		m = fm
	}
	return m, m.err
}
