package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-duel/internal/core"
)

// KeyMap defines the key bindings for a duel. Player 1 steers with the
// arrow keys, player 2 with WASD.
type KeyMap struct {
	P1Up    key.Binding
	P1Down  key.Binding
	P1Left  key.Binding
	P1Right key.Binding
	P2Up    key.Binding
	P2Down  key.Binding
	P2Left  key.Binding
	P2Right key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.P1Up, k.P2Up, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1Up, k.P1Down, k.P1Left, k.P1Right},
		{k.P2Up, k.P2Down, k.P2Left, k.P2Right},
		{k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		P1Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("arrows", "player 1"),
		),
		P1Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("down", "p1 down")),
		P1Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("left", "p1 left")),
		P1Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("right", "p1 right")),
		P2Up: key.NewBinding(
			key.WithKeys("w", "W"),
			key.WithHelp("wasd", "player 2"),
		),
		P2Down:  key.NewBinding(key.WithKeys("s", "S"), key.WithHelp("s", "p2 down")),
		P2Left:  key.NewBinding(key.WithKeys("a", "A"), key.WithHelp("a", "p2 left")),
		P2Right: key.NewBinding(key.WithKeys("d", "D"), key.WithHelp("d", "p2 right")),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
			key.WithDisabled(),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Steer translates a key message to a direction command.
// Returns false if the key is not a steering key.
func (k KeyMap) Steer(msg tea.KeyMsg) (core.Steer, bool) {
	bindings := []struct {
		binding key.Binding
		steer   core.Steer
	}{
		{k.P1Up, core.Steer{Player: core.Player1, Dir: core.DirUp}},
		{k.P1Down, core.Steer{Player: core.Player1, Dir: core.DirDown}},
		{k.P1Left, core.Steer{Player: core.Player1, Dir: core.DirLeft}},
		{k.P1Right, core.Steer{Player: core.Player1, Dir: core.DirRight}},
		{k.P2Up, core.Steer{Player: core.Player2, Dir: core.DirUp}},
		{k.P2Down, core.Steer{Player: core.Player2, Dir: core.DirDown}},
		{k.P2Left, core.Steer{Player: core.Player2, Dir: core.DirLeft}},
		{k.P2Right, core.Steer{Player: core.Player2, Dir: core.DirRight}},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.steer, true
		}
	}
	return core.Steer{}, false
}
