package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term-invaders/internal/core"
	"github.com/vovakirdan/term-invaders/internal/pipeline"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 2)
	headlineStyles = map[core.Outcome]lipgloss.Style{
		core.OutcomeWon:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")),  // Lime green
		core.OutcomeLost: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")), // Red
		core.OutcomeQuit: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")), // Yellow
	}
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
)

var headlines = map[core.Outcome]string{
	core.OutcomeWon:  "THE EARTH IS SAFE",
	core.OutcomeLost: "THE INVADERS HAVE LANDED",
	core.OutcomeQuit: "GAME ABANDONED",
}

// renderSummary formats the end-of-game banner printed after the terminal
// has been restored.
func renderSummary(res pipeline.Result, total int) string {
	headline, ok := headlines[res.Outcome]
	if !ok {
		headline = strings.ToUpper(res.Outcome.String())
	}
	style, ok := headlineStyles[res.Outcome]
	if !ok {
		style = lipgloss.NewStyle().Bold(true)
	}

	rows := []string{
		style.Render(headline),
		"",
		labelStyle.Render("Score") + fmt.Sprintf("%d / %d", res.Score, total),
		labelStyle.Render("Ticks") + fmt.Sprintf("%d", res.Ticks),
		labelStyle.Render("Frames") + fmt.Sprintf("%d sent, %d drawn", res.FramesSent, res.FramesRendered),
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
