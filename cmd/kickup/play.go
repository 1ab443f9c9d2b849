package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"kickup/internal/config"
	"kickup/internal/monetize"
	"kickup/internal/platform/tui"
	"kickup/internal/progression"
	"kickup/internal/sim"
	"kickup/internal/storage"
)

var (
	flagConfig string
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game session.

Controls:
  Space/Up     - Kick straight up
  Left/Right   - Kick with sideways spin
  Mouse click  - Kick from the clicked spot
  P            - Pause
  R            - Restart (after game over)
  A            - Watch ad to continue (once per run)
  Q/Ctrl+C     - Quit

Examples:
  kickup play
  kickup play --config ./my-tuning.yaml
  kickup play --seed 42
  kickup play --player alice`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning config YAML")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name for the leaderboard")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "kickup",
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open progression database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	ledger := progression.NewLedger(store, logger)
	ledger.Load()
	if flagPlayer != "" {
		ledger.SetPlayerName(flagPlayer)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session := sim.NewSession(cfg.Tuning(), seed)

	// Size the first frame from the terminal; later resizes arrive as
	// window size messages.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	model := tui.NewModel(session, ledger, monetize.StubProvider{}, cfg.Monetize,
		tui.Options{TickRate: flagFPS, ScreenW: width, ScreenH: height}, logger)

	runErr := tui.Run(model)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
