package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-duel/internal/config"
)

var (
	focusedColor = lipgloss.Color("205")
	blurredColor = lipgloss.Color("240")
	focusedStyle = lipgloss.NewStyle().Foreground(focusedColor)
	blurredStyle = lipgloss.NewStyle().Foreground(blurredColor)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	buttonStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	focusedButtonStyle = buttonStyle.BorderForeground(focusedColor)
	blurredButtonStyle = buttonStyle.BorderForeground(blurredColor)
)

// Form fields in focus order.
const (
	fieldWidth = iota
	fieldHeight
	fieldRocks
	fieldWrap
	fieldPortals
	fieldSubmit
	fieldCount
)

var inputLabels = [...]string{"Map width", "Map height", "Rocks"}

// SetupModel is a form for the board size, rock count, wrap and portals.
type SetupModel struct {
	inputs    []textinput.Model
	wrap      bool
	portals   bool
	focus     int
	cfg       config.Config
	err       error
	submitted bool
	quitting  bool
	width     int
	height    int
}

// NewSetupModel creates a form prefilled from cfg.
func NewSetupModel(cfg config.Config) SetupModel {
	values := []int{cfg.Grid.Width, cfg.Grid.Height, cfg.Rocks}
	inputs := make([]textinput.Model, len(values))
	for i, v := range values {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 4
		ti.Width = 6
		ti.SetValue(strconv.Itoa(v))
		ti.PromptStyle = blurredStyle
		ti.TextStyle = blurredStyle
		inputs[i] = ti
	}

	m := SetupModel{
		inputs:  inputs,
		wrap:    cfg.Grid.Wrap,
		portals: cfg.Portals,
		cfg:     cfg,
	}
	m.setFocus(fieldWidth)
	return m
}

// Init starts the cursor blinking.
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the form.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "tab", "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil

		case "shift+tab", "up":
			m.setFocus((m.focus - 1 + fieldCount) % fieldCount)
			return m, nil

		case "enter":
			if m.focus != fieldSubmit {
				m.setFocus(m.focus + 1)
				return m, nil
			}
			if err := m.submit(); err != nil {
				m.err = err
				return m, nil
			}
			m.submitted = true
			return m, tea.Quit

		case " ", "left", "right", "y", "n":
			if m.toggle(msg.String()) {
				return m, nil
			}
		}

		if m.focus < len(m.inputs) {
			var cmd tea.Cmd
			m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// toggle flips or sets the focused yes/no field. Returns false when the
// focus is not on a toggle.
func (m *SetupModel) toggle(k string) bool {
	var field *bool
	switch m.focus {
	case fieldWrap:
		field = &m.wrap
	case fieldPortals:
		field = &m.portals
	default:
		return false
	}

	switch k {
	case "y":
		*field = true
	case "n":
		*field = false
	default:
		*field = !*field
	}
	return true
}

func (m *SetupModel) setFocus(i int) {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
			m.inputs[j].PromptStyle = focusedStyle
			m.inputs[j].TextStyle = focusedStyle
		} else {
			m.inputs[j].Blur()
			m.inputs[j].PromptStyle = blurredStyle
			m.inputs[j].TextStyle = blurredStyle
		}
	}
}

// submit parses the form into the configuration and validates it.
func (m *SetupModel) submit() error {
	cfg := m.cfg
	targets := []*int{&cfg.Grid.Width, &cfg.Grid.Height, &cfg.Rocks}
	for i, ti := range m.inputs {
		value := strings.TrimSpace(ti.Value())
		n, err := strconv.Atoi(value)
		if err != nil {
			m.setFocus(i)
			return fmt.Errorf("%s: %w: %q", inputLabels[i], config.ErrNotANumber, value)
		}
		*targets[i] = n
	}
	cfg.Grid.Wrap = m.wrap
	cfg.Portals = m.portals

	if err := cfg.Validate(); err != nil {
		return err
	}
	m.cfg = cfg
	return nil
}

// Submitted reports whether the form was completed.
func (m SetupModel) Submitted() bool {
	return m.submitted
}

// Config returns the configuration, updated if the form was submitted.
func (m SetupModel) Config() config.Config {
	return m.cfg
}

// View renders the form.
func (m SetupModel) View() string {
	if m.quitting || m.submitted {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Snake Duel setup"))
	b.WriteString("\n\n")

	for i, ti := range m.inputs {
		b.WriteString(m.label(i, inputLabels[i]))
		b.WriteString(ti.View())
		b.WriteString("\n")
	}
	b.WriteString(m.label(fieldWrap, "Wrap walls"))
	b.WriteString(m.yesNo(fieldWrap, m.wrap))
	b.WriteString("\n")
	b.WriteString(m.label(fieldPortals, "Portals"))
	b.WriteString(m.yesNo(fieldPortals, m.portals))
	b.WriteString("\n\n")

	button := blurredButtonStyle.Render("Start")
	if m.focus == fieldSubmit {
		button = focusedButtonStyle.Render("Start")
	}
	b.WriteString(button)
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(blurredStyle.Render("tab/shift+tab move  space toggle  enter start  esc cancel"))

	if m.width == 0 {
		return b.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

func (m SetupModel) label(field int, text string) string {
	style := blurredStyle
	if m.focus == field {
		style = focusedStyle
	}
	return style.Width(14).Render(text)
}

func (m SetupModel) yesNo(field int, v bool) string {
	text := "no"
	if v {
		text = "yes"
	}
	if m.focus == field {
		return focusedStyle.Render("< " + text + " >")
	}
	return blurredStyle.Render("  " + text)
}

// RunSetup shows the form and returns the resulting configuration.
// ok is false when the user cancelled.
func RunSetup(cfg config.Config, opts ...tea.ProgramOption) (result config.Config, ok bool, err error) {
	final, err := tea.NewProgram(NewSetupModel(cfg), opts...).Run()
	if err != nil {
		return cfg, false, err
	}
	m, isSetup := final.(SetupModel)
	if !isSetup || !m.Submitted() {
		return cfg, false, nil
	}
	return m.Config(), true, nil
}
