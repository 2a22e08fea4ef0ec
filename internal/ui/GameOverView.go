package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Mshel/hunthat/internal/game"
	"github.com/charmbracelet/lipgloss"
)

// GameOverState holds the data and local state for rendering the game over screen.
type GameOverState struct {
	Outcome        game.Outcome
	Moves          int
	RecordID       string
	SelectedButton int
	ScreenWidth    int
	ScreenHeight   int
}

// Styles for Game Over/History
var (
	gameOverButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")).
				Padding(0, 3).
				Margin(1, 1).
				Bold(true)

	selectedButtonStyle = gameOverButtonStyle.
				Background(lipgloss.Color("4")).
				Foreground(lipgloss.Color("15"))

	historyHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("236")).
				Padding(0, 1).
				Align(lipgloss.Center)

	historyRowStyle = lipgloss.NewStyle().
			Padding(0, 1)

	historyBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(lipgloss.Color("8"))

	wonColor  = lipgloss.Color("220")
	lostColor = lipgloss.Color("9")
)

// RenderGameOverScreen draws the final field, the outcome message and buttons.
func (g *GameOverState) RenderGameOverScreen(finalMap string) string {
	color := lostColor
	title := "G A M E   O V E R"
	if g.Outcome == game.OutcomeFoundHat {
		color = wonColor
		title = "^  Y O U   W I N  ^"
	}

	titleView := lipgloss.NewStyle().
		Bold(true).
		Foreground(color).
		Padding(1, 5).
		Align(lipgloss.Center).
		Render(title)

	stats := fmt.Sprintf("\n%s\nMoves: %d\n", g.Outcome.Message(), g.Moves)

	playAgainButton := gameOverButtonStyle.Render("PLAY AGAIN")
	menuButton := gameOverButtonStyle.Render("MENU")

	if g.SelectedButton == 0 {
		playAgainButton = selectedButtonStyle.Render("PLAY AGAIN")
	} else {
		menuButton = selectedButtonStyle.Render("MENU")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, playAgainButton, menuButton)

	content := lipgloss.JoinVertical(lipgloss.Center, titleView, mapViewStyle.Render(finalMap), stats, buttons)

	return lipgloss.Place(g.ScreenWidth, g.ScreenHeight,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Render(content),
	)
}

// RenderHistoryScreen draws the most recent finished sessions.
func RenderHistoryScreen(records []game.SessionRecord, total int, loadErr error, width, height int) string {
	var tableContent strings.Builder

	nameWidth := 15
	fieldWidth := 9
	outcomeWidth := 15
	movesWidth := 7
	dateWidth := 18

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		historyHeaderStyle.Width(4).Render("#"),
		historyHeaderStyle.Width(nameWidth).Render("Player"),
		historyHeaderStyle.Width(fieldWidth).Render("Field"),
		historyHeaderStyle.Width(outcomeWidth).Render("Outcome"),
		historyHeaderStyle.Width(movesWidth).Render("Moves"),
		historyHeaderStyle.Width(dateWidth).Render("Played"),
	)
	tableContent.WriteString(header + "\n")

	for i, rec := range records {
		outcomeStyle := historyRowStyle.Foreground(lostColor)
		if rec.State == game.StateWon.String() {
			outcomeStyle = historyRowStyle.Foreground(wonColor)
		}

		row := lipgloss.JoinHorizontal(lipgloss.Top,
			historyRowStyle.Width(4).Render(strconv.Itoa(i+1)),
			historyRowStyle.Width(nameWidth).Render(rec.PlayerName),
			historyRowStyle.Width(fieldWidth).Render(fmt.Sprintf("%dx%d", rec.Height, rec.Width)),
			outcomeStyle.Width(outcomeWidth).Render(strings.ReplaceAll(rec.Outcome, "_", " ")),
			historyRowStyle.Width(movesWidth).Render(strconv.Itoa(rec.Moves)),
			historyRowStyle.Width(dateWidth).Render(rec.CreatedAt.Format("2006-01-02 15:04")),
		)

		tableContent.WriteString(historyBorderStyle.Render(row) + "\n")
	}

	switch {
	case loadErr != nil:
		tableContent.WriteString(errorStyle.Render("Could not load history.") + "\n")
	case len(records) == 0:
		tableContent.WriteString(helpStyle.Render("No finished sessions yet.") + "\n")
	}

	title := lipgloss.NewStyle().Bold(true).Padding(1, 0).Render(fmt.Sprintf("^ SESSION HISTORY (%d played) ^", total))
	instruction := lipgloss.NewStyle().Faint(true).Margin(1, 0).Render("Press ESC or ENTER to return to the menu.")

	finalContent := lipgloss.JoinVertical(lipgloss.Center,
		title,
		tableContent.String(),
		instruction,
	)

	return lipgloss.Place(width, height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Render(finalContent),
	)
}
