package ui

import (
	"github.com/Mshel/ouroboros/internal/game"
	tea "github.com/charmbracelet/bubbletea"
)

type Screen int

const (
	IntroScreen Screen = iota
	SetupScreen
	GameScreen
)

// Messages for state transitions
type IntroSubmitMsg int // 0 for Play, 1 for Watch AI
type SetupSubmitMsg struct {
	GridWidth    int
	GridHeight   int
	TickInterval int // milliseconds
}

// BackToSetupMsg returns from the game screen to the setup form.
type BackToSetupMsg struct{}

type ControllerModel struct {
	CurrentScreen Screen
	GameManager   *game.GameManager

	IntroModel tea.Model
	SetupModel tea.Model
	GameModel  tea.Model

	ScreenWidth  int
	ScreenHeight int
}

func NewControllerModel(gameManager *game.GameManager, defaults game.Settings, screenWidth int, screenHeight int) ControllerModel {
	return ControllerModel{
		GameManager:   gameManager,
		CurrentScreen: IntroScreen,

		IntroModel: NewIntroModel(screenWidth, screenHeight),
		SetupModel: NewInitialSetupModel(defaults, screenWidth, screenHeight),

		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

func (m ControllerModel) Init() tea.Cmd {
	return m.IntroModel.Init()
}

func (m ControllerModel) View() string {
	switch m.CurrentScreen {
	case IntroScreen:
		return m.IntroModel.View()
	case SetupScreen:
		return m.SetupModel.View()
	case GameScreen:
		if m.GameModel != nil {
			return m.GameModel.View()
		}
		return "Game Loading..."
	default:
		return "Unknown Screen"
	}
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	// --- 1. Global Key Check ---
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "ctrl+c" {
			m.GameManager.Send(game.StopIntent{})
			return m, tea.Quit
		}
	}

	// --- 2. State Transition Message Handling ---
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		m.IntroModel, _ = m.IntroModel.Update(msg)
		m.SetupModel, _ = m.SetupModel.Update(msg)
		if m.GameModel != nil {
			m.GameModel, cmd = m.GameModel.Update(msg)
			cmds = append(cmds, cmd)
		}

	case IntroSubmitMsg:
		if msg == 0 {
			m.CurrentScreen = SetupScreen
			return m, m.SetupModel.Init()
		}
		// Watch the AI on a board that fits the terminal.
		width, height := FitBoard(m.ScreenWidth, m.ScreenHeight)
		m.GameManager.Send(game.StartIntent{GridWidth: width, GridHeight: height})
		m.GameManager.Send(game.ToggleModeIntent{Mode: game.LongestPathAI})
		return m.enterGame()

	case SetupSubmitMsg:
		m.GameManager.Send(game.StartIntent{
			GridWidth:    msg.GridWidth,
			GridHeight:   msg.GridHeight,
			TickInterval: millis(msg.TickInterval),
		})
		return m.enterGame()

	case BackToSetupMsg:
		m.GameManager.Send(game.StopIntent{})
		m.CurrentScreen = SetupScreen
		return m, m.SetupModel.Init()

	default:
		// --- 3. Message Delegation ---
		switch m.CurrentScreen {
		case IntroScreen:
			m.IntroModel, cmd = m.IntroModel.Update(msg)
			cmds = append(cmds, cmd)
		case SetupScreen:
			m.SetupModel, cmd = m.SetupModel.Update(msg)
			cmds = append(cmds, cmd)
		case GameScreen:
			if m.GameModel != nil {
				m.GameModel, cmd = m.GameModel.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m ControllerModel) enterGame() (tea.Model, tea.Cmd) {
	m.CurrentScreen = GameScreen
	m.GameModel = NewGameModel(m.GameManager, m.ScreenWidth, m.ScreenHeight)
	return m, m.GameModel.Init()
}
