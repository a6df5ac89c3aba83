package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Mshel/ouroboros/internal/game"
	"github.com/Mshel/ouroboros/internal/grid"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	voidColor    = "233"
	mapViewStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 0)

	statusPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(1, 2)

	voidStyle   = lipgloss.NewStyle().Background(lipgloss.Color(voidColor))
	snakeStyle  = lipgloss.NewStyle().Background(lipgloss.Color(voidColor)).Foreground(lipgloss.Color("42"))
	headStyle   = snakeStyle.Foreground(lipgloss.Color("48")).Bold(true)
	foodStyle   = lipgloss.NewStyle().Background(lipgloss.Color(voidColor)).Foreground(lipgloss.Color("196"))
	noPathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	headRunes = map[grid.Direction]string{
		grid.Up:    "▲ ",
		grid.Down:  "▼ ",
		grid.Left:  "◀ ",
		grid.Right: "▶ ",
	}
)

const (
	// Each board cell is two columns wide so it looks square.
	cellWidth          = 2
	statusPanelWidth   = 30
	statusPanelPadding = 4
	renderInterval     = 30 * time.Millisecond
)

// --- Key bindings ---

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	AStar       key.Binding
	LongestPath key.Binding
	Restart     key.Binding
	Setup       key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.AStar, k.LongestPath, k.Restart, k.Setup}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Left, k.Right}, {k.AStar, k.LongestPath}, {k.Restart, k.Setup}}
}

var keys = keyMap{
	Up:          key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑↓←→/wasd", "move")),
	Down:        key.NewBinding(key.WithKeys("down", "s")),
	Left:        key.NewBinding(key.WithKeys("left", "a")),
	Right:       key.NewBinding(key.WithKeys("right", "d")),
	AStar:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "A* AI")),
	LongestPath: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "longest path AI")),
	Restart:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
	Setup:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "setup")),
}

// --- Messages ---

// gameUpdatesMsg carries every update drained from the mailbox since the
// last render tick.
type gameUpdatesMsg []tea.Msg

// --- GameViewModel Definition ---

type GameViewModel struct {
	ScreenWidth  int
	ScreenHeight int
	gameManager  *game.GameManager
	help         help.Model

	state    game.StateUpdateMsg
	aiStatus game.AIStatusMsg
	errMsg   string

	gameOver      bool
	gameOverState GameOverState
}

func NewGameModel(gm *game.GameManager, screenWidth int, screenHeight int) GameViewModel {
	return GameViewModel{
		gameManager:  gm,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		help:         help.New(),
		gameOverState: GameOverState{
			ScreenWidth:  screenWidth,
			ScreenHeight: screenHeight,
		},
	}
}

func (m GameViewModel) Init() tea.Cmd {
	return m.listenForGameUpdates()
}

func (m GameViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth, m.ScreenHeight = msg.Width, msg.Height
		m.gameOverState.ScreenWidth, m.gameOverState.ScreenHeight = msg.Width, msg.Height
		// The board can not be migrated; stop and wait for a restart.
		if !m.fits(m.state.GridWidth, m.state.GridHeight) {
			width, height := FitBoard(msg.Width, msg.Height)
			m.gameManager.Send(game.ReconfigureIntent{GridWidth: width, GridHeight: height})
			m.errMsg = "Board resized, press r to restart"
		}
		return m, nil

	case gameUpdatesMsg:
		for _, update := range msg {
			m = m.apply(update)
		}
		return m, m.listenForGameUpdates()

	case tea.KeyMsg:
		if m.gameOver {
			return m.updateGameOver(msg)
		}
		return m.updatePlaying(msg)
	}

	return m, nil
}

func (m GameViewModel) apply(update tea.Msg) GameViewModel {
	switch u := update.(type) {
	case game.StateUpdateMsg:
		m.state = u
		if u.Status == game.Running {
			m.gameOver = false
		}
	case game.AIStatusMsg:
		m.aiStatus = u
	case game.GameOverMsg:
		m.gameOver = true
		m.gameOverState.FinalScore = u.Score
		m.gameOverState.Won = u.Won
		m.gameOverState.Reason = u.Reason
		m.gameOverState.SelectedButton = 0
	case game.ErrorMsg:
		m.errMsg = u.Message
	}
	return m
}

func (m GameViewModel) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var dir grid.Direction
	switch {
	case key.Matches(msg, keys.Up):
		dir = grid.Up
	case key.Matches(msg, keys.Down):
		dir = grid.Down
	case key.Matches(msg, keys.Left):
		dir = grid.Left
	case key.Matches(msg, keys.Right):
		dir = grid.Right
	case key.Matches(msg, keys.AStar):
		m.gameManager.Send(game.ToggleModeIntent{Mode: m.toggled(game.AStarAI)})
		return m, nil
	case key.Matches(msg, keys.LongestPath):
		m.gameManager.Send(game.ToggleModeIntent{Mode: m.toggled(game.LongestPathAI)})
		return m, nil
	case key.Matches(msg, keys.Restart):
		m.restart()
		m.errMsg = ""
		return m, nil
	case key.Matches(msg, keys.Setup):
		return m, func() tea.Msg { return BackToSetupMsg{} }
	default:
		return m, nil
	}

	// An arrow on a stopped board starts a new game heading that way.
	if m.state.Status != game.Running {
		m.restart()
	}
	m.gameManager.Send(game.DirectionIntent{Dx: dir.Dx, Dy: dir.Dy})
	return m, nil
}

func (m GameViewModel) updateGameOver(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.gameOverState.SelectedButton = max(0, m.gameOverState.SelectedButton-1)
	case "right", "l":
		m.gameOverState.SelectedButton = min(1, m.gameOverState.SelectedButton+1)
	case "enter":
		if m.gameOverState.SelectedButton == 0 {
			m.restart()
			m.gameOver = false
			return m, nil
		}
		return m, tea.Quit
	case "esc":
		return m, func() tea.Msg { return BackToSetupMsg{} }
	}
	return m, nil
}

// toggled returns the mode to switch to when the key for mode is pressed.
func (m GameViewModel) toggled(mode game.ControlMode) game.ControlMode {
	if m.aiStatus.ActiveMode == mode {
		return game.PlayerControl
	}
	return mode
}

func (m GameViewModel) restart() {
	m.gameManager.Send(game.StopIntent{})
	m.gameManager.Send(game.StartIntent{GridWidth: m.state.GridWidth, GridHeight: m.state.GridHeight})
}

func (m GameViewModel) fits(width, height int) bool {
	maxWidth, maxHeight := FitBoard(m.ScreenWidth, m.ScreenHeight)
	return width <= maxWidth && height <= maxHeight
}

// FitBoard returns the largest board that fits next to the status panel.
func FitBoard(screenWidth, screenHeight int) (int, int) {
	width := (screenWidth - statusPanelWidth - statusPanelPadding - 2) / cellWidth
	height := screenHeight - 2
	return max(width, 2), max(height, 2)
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func (m GameViewModel) View() string {
	if m.gameOver {
		return m.gameOverState.RenderGameOverScreen()
	}
	if m.state.GridWidth == 0 {
		return lipgloss.Place(m.ScreenWidth, m.ScreenHeight, lipgloss.Center, lipgloss.Center, "Waiting for game manager...")
	}

	board := mapViewStyle.Render(RenderBoard(m.state))
	status := statusPanelStyle.Width(statusPanelWidth).Render(m.renderStatusPanel())

	return lipgloss.JoinHorizontal(lipgloss.Top, board, status)
}

// RenderBoard draws the snake and food, one row of cells per line.
func RenderBoard(state game.StateUpdateMsg) string {
	occupied := make(map[grid.Cell]bool, len(state.SnakeBody))
	for _, segment := range state.SnakeBody {
		occupied[segment] = true
	}

	var head grid.Cell
	if len(state.SnakeBody) > 0 {
		head = state.SnakeBody[0]
	}
	headRune, ok := headRunes[state.Direction]
	if !ok {
		headRune = "◆ "
	}

	var sb strings.Builder
	for y := 0; y < state.GridHeight; y++ {
		for x := 0; x < state.GridWidth; x++ {
			c := grid.Cell{X: x, Y: y}
			switch {
			case len(state.SnakeBody) > 0 && c == head:
				sb.WriteString(headStyle.Render(headRune))
			case occupied[c]:
				sb.WriteString(snakeStyle.Render("██"))
			case c == state.Food:
				sb.WriteString(foodStyle.Render("● "))
			default:
				sb.WriteString(voidStyle.Render("  "))
			}
		}
		if y < state.GridHeight-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (m GameViewModel) renderStatusPanel() string {
	var statusContent strings.Builder

	statusContent.WriteString(lipgloss.NewStyle().Bold(true).Render("--- Ouroboros ---") + "\n")
	statusContent.WriteString(fmt.Sprintf("Score: %d\n", m.state.Score))
	statusContent.WriteString(fmt.Sprintf("Length: %d\n", len(m.state.SnakeBody)))
	statusContent.WriteString(fmt.Sprintf("Board: %dx%d\n", m.state.GridWidth, m.state.GridHeight))
	statusContent.WriteString(fmt.Sprintf("Status: %s\n", m.state.Status))

	statusContent.WriteString("\n" + lipgloss.NewStyle().Bold(true).Render("--- Control ---") + "\n")
	mode := "Player"
	switch m.aiStatus.ActiveMode {
	case game.AStarAI:
		mode = "A* AI"
	case game.LongestPathAI:
		mode = "Longest Path AI"
	}
	statusContent.WriteString(mode)
	if m.aiStatus.ActiveMode.IsAI() && !m.aiStatus.HasPath {
		statusContent.WriteString(" " + noPathStyle.Render("(No Path)"))
	}
	statusContent.WriteString("\n")

	if m.errMsg != "" {
		statusContent.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}

	statusContent.WriteString("\n" + m.help.View(keys))
	return statusContent.String()
}

// listenForGameUpdates polls the update mailbox once per render tick.
func (m GameViewModel) listenForGameUpdates() tea.Cmd {
	updates := m.gameManager.Updates
	return tea.Tick(renderInterval, func(t time.Time) tea.Msg {
		var batch gameUpdatesMsg
		for {
			msg, ok := updates.TryReceive()
			if !ok {
				return batch
			}
			batch = append(batch, msg)
		}
	})
}
