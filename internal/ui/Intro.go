package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Main menu entries, in IntroSubmitMsg order.
var introOptions = []string{"Play", "Watch AI"}

// IntroModel is the main menu.
type IntroModel struct {
	cursor        int
	width, height int
}

func NewIntroModel(w, h int) IntroModel {
	return IntroModel{width: w, height: h}
}

func (m IntroModel) Init() tea.Cmd { return nil }

func (m IntroModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h", "shift+tab":
			m.cursor = (m.cursor + len(introOptions) - 1) % len(introOptions)
		case "right", "l", "tab":
			m.cursor = (m.cursor + 1) % len(introOptions)
		case "enter", " ":
			choice := IntroSubmitMsg(m.cursor)
			return m, func() tea.Msg { return choice }
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

var ouroborosAscii = `
     ██████████████                  ██████████████
  ████          ██████            ████          ████
 ██                 ███         ███                ██
██      ██████        ██      ██        ██████      ██
██    ██      ██       ██    ██       ██      ██    ██
██    ██      ██        ██  ██        ██      ██    ██
██      ██████           ████           ██████      ██
 ██                     ██  ██                     ██
  ████              ████      ████              ████
     ██████████████              ██████████████
`

var (
	menuColor  = lipgloss.Color("87")
	asciiStyle = lipgloss.NewStyle().Foreground(menuColor).MarginBottom(1)

	introButtonStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(menuColor).
				Padding(0, 3).
				Margin(0, 2)

	introSelectedButtonStyle = introButtonStyle.Background(menuColor).Foreground(lipgloss.Color("0"))
)

func (m IntroModel) View() string {
	buttons := make([]string, len(introOptions))
	for i, option := range introOptions {
		style := introButtonStyle
		if i == m.cursor {
			style = introSelectedButtonStyle
		}
		buttons[i] = style.Render(option)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		asciiStyle.Render(ouroborosAscii),
		lipgloss.JoinHorizontal(lipgloss.Center, buttons...),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
