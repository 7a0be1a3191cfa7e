package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-invaders/internal/platform/term"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the controls",
	Args:  cobra.NoArgs,
	Run:   runKeys,
}

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")) // Bright cyan

func runKeys(cmd *cobra.Command, args []string) {
	fmt.Println(titleStyle.Render("Controls"))
	fmt.Println()
	fmt.Println(term.DefaultKeyMap().HelpView(true))
}
