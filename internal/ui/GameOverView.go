package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// GameOverState holds the data and local state for rendering the game over screen.
type GameOverState struct {
	FinalScore     int
	Won            bool
	Reason         string
	SelectedButton int // 0: Play again, 1: Exit
	ScreenWidth    int
	ScreenHeight   int
}

var (
	gameOverButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Padding(0, 3).
				Margin(1, 1).
				Bold(true)

	selectedButtonStyle = gameOverButtonStyle.
				Background(lipgloss.Color("4")).
				Foreground(lipgloss.Color("15"))
)

// RenderGameOverScreen draws the final score and buttons.
func (g *GameOverState) RenderGameOverScreen() string {
	messageStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("9")).
		Padding(2, 5).
		Align(lipgloss.Center).
		Width(max(g.ScreenWidth-4, 20))

	title := "💀 G A M E   O V E R 💀"
	if g.Won {
		title = "🏆 Y O U   W I N 🏆"
		messageStyle = messageStyle.Foreground(lipgloss.Color("42"))
	}

	stats := fmt.Sprintf("\nFinal Score: %d\n", g.FinalScore)
	if g.Reason != "" {
		stats += lipgloss.NewStyle().Faint(true).Render(g.Reason) + "\n"
	}

	againButton := gameOverButtonStyle.Render("PLAY AGAIN")
	exitButton := gameOverButtonStyle.Render("EXIT")
	if g.SelectedButton == 0 {
		againButton = selectedButtonStyle.Render("PLAY AGAIN")
	} else {
		exitButton = selectedButtonStyle.Render("EXIT")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, againButton, exitButton)
	content := lipgloss.JoinVertical(lipgloss.Center, messageStyle.Render(title), stats, buttons)

	return lipgloss.Place(g.ScreenWidth, g.ScreenHeight,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Render(content),
	)
}
