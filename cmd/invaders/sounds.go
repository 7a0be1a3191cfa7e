package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-invaders/internal/audio"
	"github.com/vovakirdan/term-invaders/internal/config"
)

var soundsCmd = &cobra.Command{
	Use:   "sounds",
	Short: "Play every sound cue once",
	Long: `Plays each sound cue in turn so you can check that audio works.
Fails if the audio device cannot be opened.`,
	Args: cobra.NoArgs,
	RunE: runSounds,
}

var cueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Width(10)

// cueGap separates cues during the audio check.
const cueGap = 300 * time.Millisecond

func runSounds(cmd *cobra.Command, args []string) error {
	if flagMute {
		fmt.Println("Sound is muted (--mute); nothing to play.")
		return nil
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	speaker, err := audio.NewSpeaker(cfg.Audio)
	if err != nil {
		return err
	}
	defer speaker.Close()

	for _, cue := range audio.AllCues() {
		d := audio.Duration(cue)
		fmt.Printf("%s%v\n", cueStyle.Render(cue.String()), d)
		logger.Debug("playing cue", "cue", cue, "duration", d)
		speaker.Play(cue)
		time.Sleep(d + cueGap)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), playbackTimeout)
	defer cancel()
	return speaker.Wait(ctx)
}
