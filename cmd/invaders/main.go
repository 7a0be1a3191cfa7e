// invaders is a terminal shoot-'em-up: a ship at the bottom of a fixed
// 40x20 grid shoots down a descending swarm.
//
// Usage:
//
//	invaders           - Play a game
//	invaders keys      - Show the controls
//	invaders sounds    - Play every sound cue once
//
// Global flags:
//
//	--mute              - Play without sound
//	--log-file <path>   - Write diagnostics to a file (default: none)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-invaders/internal/audio"
	"github.com/vovakirdan/term-invaders/internal/config"
	"github.com/vovakirdan/term-invaders/internal/games/invaders"
	"github.com/vovakirdan/term-invaders/internal/pipeline"
	"github.com/vovakirdan/term-invaders/internal/platform/term"
)

var (
	// Global flags
	flagMute     bool
	flagLogFile  string
	flagLogLevel string
)

// playbackTimeout bounds the wait for the last cues after the game ends.
const playbackTimeout = 5 * time.Second

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Shoot down the invaders before they land",
	Long: `Invaders is a small shoot-'em-up for the terminal.

Move the ship with the arrow keys and fire with space or enter.
The swarm speeds up as it thins out; it wins if it reaches your row.

Examples:
  invaders
  invaders --mute
  invaders --log-file invaders.log --log-level debug
  invaders keys`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runGame,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Play without sound")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write diagnostics to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(soundsCmd)
}

func runGame(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Open audio before the screen so driver chatter lands on the normal terminal
	sounds := audio.Open(cfg.Audio, flagMute, logger)
	defer sounds.Close()

	game := invaders.New(cfg)
	res, err := play(game, cfg, sounds, logger)
	if err != nil {
		return err
	}

	fmt.Println(renderSummary(res, game.Invaders().Len()))
	return nil
}

// play runs one game with the terminal in game mode and returns once the
// terminal is restored.
func play(game *invaders.Game, cfg config.InvadersConfig, sounds audio.Player, logger *log.Logger) (pipeline.Result, error) {
	session, err := term.Open(logger)
	if err != nil {
		return pipeline.Result{}, err
	}
	defer session.Restore()

	input := session.Input(term.DefaultKeyMap())
	defer input.Stop()

	logger.Info("starting game", "id", game.ID(), "invaders", game.Invaders().Len())
	sounds.Play(audio.CueStartup)

	res, err := pipeline.Run(game, input, session.Painter(), sounds, pipeline.Options{
		Yield:  cfg.Loop.Yield(),
		Logger: logger,
	})

	ctx, cancel := context.WithTimeout(context.Background(), playbackTimeout)
	defer cancel()
	if werr := sounds.Wait(ctx); werr != nil {
		logger.Warn("sound playback cut short", "err", werr)
	}

	logger.Debug("final state", "snapshot", fmt.Sprintf("%+v", game.Snapshot()))
	if err != nil {
		logger.Error("game aborted", "err", err)
		return res, err
	}
	logger.Info("game finished", "outcome", res.Outcome, "score", res.Score,
		"frames_sent", res.FramesSent, "frames_rendered", res.FramesRendered)
	return res, nil
}
