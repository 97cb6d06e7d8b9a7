package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-duel/internal/core"
	"github.com/vovakirdan/snake-duel/internal/games/duel"
)

func testSettings() duel.Settings {
	return duel.Settings{
		Grid:      core.Grid{Width: 10, Height: 10},
		Spawn1:    core.Point{X: 3, Y: 2},
		Spawn2:    core.Point{X: 3, Y: 7},
		FoodStart: core.Point{X: 0, Y: 5},
	}
}

func testRuntime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.TickInterval = 100 * time.Millisecond
	rc.Seed = 1
	return rc
}

func newTestModel(t *testing.T, settings duel.Settings) Model {
	t.Helper()
	m, err := NewModel(settings, testRuntime())
	if err != nil {
		t.Fatalf("NewModel() error: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestNewModelRejectsBadSettings(t *testing.T) {
	s := testSettings()
	s.Grid.Width = 0
	if _, err := NewModel(s, testRuntime()); err == nil {
		t.Error("expected error for invalid settings")
	}
}

func TestNewModelPicksSeed(t *testing.T) {
	rc := testRuntime()
	rc.Seed = 0
	m, err := NewModel(testSettings(), rc)
	if err != nil {
		t.Fatalf("NewModel() error: %v", err)
	}
	if m.Result().Seed == 0 {
		t.Error("zero seed should be replaced")
	}
}

func TestFramesGateTicks(t *testing.T) {
	m := newTestModel(t, testSettings())
	start := time.Now()

	m, cmd := update(t, m, FrameMsg(start))
	if cmd == nil {
		t.Error("frame should schedule the next frame")
	}
	if m.Result().Ticks != 0 {
		t.Fatalf("ticked before the interval elapsed")
	}

	m, _ = update(t, m, FrameMsg(start.Add(time.Second)))
	if m.Result().Ticks != 1 {
		t.Fatalf("Ticks = %d, expected 1", m.Result().Ticks)
	}

	// Exactly one interval later is not enough
	m, _ = update(t, m, FrameMsg(start.Add(time.Second+100*time.Millisecond)))
	if m.Result().Ticks != 1 {
		t.Errorf("Ticks = %d, expected 1", m.Result().Ticks)
	}

	m, _ = update(t, m, FrameMsg(start.Add(time.Second+101*time.Millisecond)))
	if m.Result().Ticks != 2 {
		t.Errorf("Ticks = %d, expected 2", m.Result().Ticks)
	}
}

func TestSteeringKeys(t *testing.T) {
	m := newTestModel(t, testSettings())

	// Reversal onto the neck is ignored
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.game.Heading(core.Player1) != core.DirRight {
		t.Errorf("player 1 heading = %v, expected right", m.game.Heading(core.Player1))
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, runeKey('w'))
	if m.game.Heading(core.Player1) != core.DirDown {
		t.Errorf("player 1 heading = %v, expected down", m.game.Heading(core.Player1))
	}
	if m.game.Heading(core.Player2) != core.DirUp {
		t.Errorf("player 2 heading = %v, expected up", m.game.Heading(core.Player2))
	}
}

func TestGameOverReportsAndRestarts(t *testing.T) {
	s := testSettings()
	s.Spawn1 = core.Point{X: 9, Y: 2} // leaves the grid on the first tick
	m := newTestModel(t, s)

	var results []Result
	m = m.OnFinish(func(r Result) { results = append(results, r) })

	// Restart is ignored while the game is running
	m, _ = update(t, m, runeKey('r'))
	if m.Result().Seed != 1 {
		t.Fatalf("restart fired during play")
	}

	start := time.Now()
	m, _ = update(t, m, FrameMsg(start.Add(time.Second)))
	m, _ = update(t, m, FrameMsg(start.Add(2*time.Second)))

	if len(results) != 1 {
		t.Fatalf("onFinish called %d times, expected 1", len(results))
	}
	if results[0].Outcome != duel.OutcomePlayer2Wins || results[0].Ticks != 1 {
		t.Errorf("result = %+v", results[0])
	}

	if !strings.Contains(m.View(), "Player 2 wins!") {
		t.Errorf("game over view missing outcome:\n%s", m.View())
	}

	m, _ = update(t, m, runeKey('r'))
	if m.game.GameOver() || m.Result().Ticks != 0 {
		t.Error("restart should start a fresh game")
	}
	if m.Result().Seed == 1 {
		t.Error("restart should use a new seed")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, testSettings())

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestViewTooSmall(t *testing.T) {
	m := newTestModel(t, testSettings())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 5})

	if !strings.Contains(m.View(), "Window too small") {
		t.Errorf("expected size warning, got:\n%s", m.View())
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	if strings.Contains(m.View(), "Window too small") {
		t.Error("size warning shown on a large window")
	}
}

func TestOutcomeLabel(t *testing.T) {
	tests := []struct {
		outcome duel.Outcome
		want    string
	}{
		{duel.OutcomePlayer1Wins, "Player 1 wins!"},
		{duel.OutcomePlayer2Wins, "Player 2 wins!"},
		{duel.OutcomeDraw, "Draw!"},
		{duel.OutcomeNone, ""},
	}
	for _, tc := range tests {
		if got := OutcomeLabel(tc.outcome); got != tc.want {
			t.Errorf("OutcomeLabel(%v) = %q, expected %q", tc.outcome, got, tc.want)
		}
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.DrawTextColored(0, 1, "xyz", core.ColorGray)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") || !strings.Contains(lines[1], "xyz") {
		t.Errorf("unexpected output %q", out)
	}
}
