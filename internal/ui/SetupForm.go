package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Mshel/ouroboros/internal/game"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Define styles
var (
	focusedColor = lipgloss.Color("205") // Bright Pink/Purple
	blurredColor = lipgloss.Color("240")
	focusedStyle = lipgloss.NewStyle().Foreground(focusedColor)
	blurredStyle = lipgloss.NewStyle().Foreground(blurredColor)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle    = blurredStyle

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder())

	submitButtonStyle = buttonStyle.
				BorderForeground(focusedColor).
				Padding(0, 1)

	blurredButtonStyle = buttonStyle.
				BorderForeground(blurredColor).
				Padding(0, 1)
)

const (
	widthField = iota
	heightField
	tickField
	submitField
)

// SetupModel is the form for board size and speed.
type SetupModel struct {
	inputs     []textinput.Model
	labels     []string
	focusIndex int
	err        string
	width      int
	height     int
}

func NewInitialSetupModel(defaults game.Settings, w, h int) SetupModel {
	values := []string{
		strconv.Itoa(defaults.GridWidth),
		strconv.Itoa(defaults.GridHeight),
		strconv.Itoa(int(defaults.TickInterval / time.Millisecond)),
	}

	inputs := make([]textinput.Model, len(values))
	for i, value := range values {
		ti := textinput.New()
		ti.CharLimit = 4
		ti.Width = 6
		ti.SetValue(value)
		ti.Validate = digitsOnly
		inputs[i] = ti
	}

	m := SetupModel{
		inputs: inputs,
		labels: []string{"Board width", "Board height", "Tick (ms)"},
		width:  w,
		height: h,
	}
	m.focus(widthField)
	return m
}

func digitsOnly(s string) error {
	for _, r := range s {
		if r < '0' || r > '9' {
			return fmt.Errorf("%q is not a digit", r)
		}
	}
	return nil
}

func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SetupModel) focus(index int) {
	m.focusIndex = index
	for i := range m.inputs {
		if i == index {
			m.inputs[i].Focus()
			m.inputs[i].PromptStyle = focusedStyle
			m.inputs[i].TextStyle = focusedStyle
		} else {
			m.inputs[i].Blur()
			m.inputs[i].PromptStyle = blurredStyle
			m.inputs[i].TextStyle = blurredStyle
		}
	}
}

// Submit validates the form and builds the start request.
func (m SetupModel) Submit() (SetupSubmitMsg, error) {
	values := make([]int, len(m.inputs))
	for i, input := range m.inputs {
		v, err := strconv.Atoi(input.Value())
		if err != nil || v <= 0 {
			return SetupSubmitMsg{}, fmt.Errorf("%s must be a positive number", strings.ToLower(m.labels[i]))
		}
		values[i] = v
	}
	if values[widthField]*values[heightField] < 2 {
		return SetupSubmitMsg{}, fmt.Errorf("board needs at least two cells")
	}
	return SetupSubmitMsg{
		GridWidth:    values[widthField],
		GridHeight:   values[heightField],
		TickInterval: values[tickField],
	}, nil
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch s := msg.String(); s {
		case "tab", "down":
			m.focus((m.focusIndex + 1) % (submitField + 1))
			return m, nil
		case "shift+tab", "up":
			m.focus((m.focusIndex + submitField) % (submitField + 1))
			return m, nil
		case "enter":
			if m.focusIndex != submitField {
				m.focus(m.focusIndex + 1)
				return m, nil
			}
			submit, err := m.Submit()
			if err != nil {
				m.err = err.Error()
				return m, nil
			}
			m.err = ""
			return m, func() tea.Msg { return submit }
		}

		if m.focusIndex < submitField {
			var cmd tea.Cmd
			m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m SetupModel) View() string {
	center := func(s string) string {
		return lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).Render(s)
	}

	var b strings.Builder
	for i, input := range m.inputs {
		label := blurredStyle.Render(fmt.Sprintf("%-13s", m.labels[i]))
		if i == m.focusIndex {
			label = focusedStyle.Render(fmt.Sprintf("%-13s", m.labels[i]))
		}
		b.WriteString(center(label + input.View()))
		b.WriteString("\n\n")
	}

	submitText := "Start"
	if m.focusIndex == submitField {
		b.WriteString(center(submitButtonStyle.Render(submitText)))
	} else {
		b.WriteString(center(blurredButtonStyle.Render(submitText)))
	}
	b.WriteString("\n\n")

	if m.err != "" {
		b.WriteString(center(errorStyle.Render(m.err)))
		b.WriteString("\n\n")
	}

	b.WriteString(center(helpStyle.Render("(tab/shift+tab to navigate, enter to confirm, ctrl+c to quit)")))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}
