package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/monster-hunter/internal/audio"
	"github.com/vovakirdan/monster-hunter/internal/core"
	"github.com/vovakirdan/monster-hunter/internal/games/hunter"
	"github.com/vovakirdan/monster-hunter/internal/platform/tui"
	"github.com/vovakirdan/monster-hunter/internal/storage"
)

var (
	flagMute   bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a Monster Hunter run.

Controls:
  Left/Right, H/L  - Move
  Up/Space, W      - Jump
  F, X             - Shoot
  R                - Restart (after a cleared level, game over or victory)
  P/Esc            - Pause
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More health and lives, slower monsters
  normal - The default tuning
  hard   - Less health, fewer lives, more monsters

Examples:
  hunter play
  hunter play --difficulty easy
  hunter play --seed 42 --mute
  hunter play --config ./my-hunter.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound effect volume (0-1)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The TUI owns the terminal, so logs go to a file
	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

	gameCfg, preset, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "err", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var sound *audio.Player
	if !flagMute {
		sound = audio.NewPlayer(flagVolume, logger)
		if err := sound.Init(); err != nil {
			logger.Warn("audio disabled", "err", err)
			sound = nil
		}
	}
	defer sound.Close()

	game := hunter.New(gameCfg, logger)
	logger.Info("starting", "difficulty", preset, "fps", cfg.TickRate, "seed", cfg.Seed,
		"screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))

	err = tui.Run(game, cfg, tui.Options{
		Store:      store,
		Sound:      sound,
		Logger:     logger,
		Difficulty: string(preset),
	})
	if err != nil {
		logger.Error("game stopped", "err", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
