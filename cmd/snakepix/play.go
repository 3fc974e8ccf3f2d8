package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-pixels/internal/config"
	"github.com/vovakirdan/snake-pixels/internal/core"
	"github.com/vovakirdan/snake-pixels/internal/registry"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start a game on the selected backend.

The snake moves one cell every 400 ms and food appears every 1.5 s.
The game ends when the snake hits a wall or itself.

Controls:
  Arrows/WASD/hjkl  - Steer
  Esc               - Exit
  Q/Ctrl+C          - Quit (terminal)

Examples:
  snakepix play
  snakepix play --backend window
  snakepix play --seed 42 --log-level info`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagBackend, "backend", "b", "terminal", "Backend to play on (see 'snakepix list')")
}

func runPlay(cmd *cobra.Command, args []string) {
	if !registry.Exists(flagBackend) {
		fmt.Fprintf(os.Stderr, "Error: unknown backend %q\n", flagBackend)
		fmt.Fprintln(os.Stderr, "Run 'snakepix list' to see available backends.")
		os.Exit(1)
	}

	// The terminal backend owns stdout and stderr is hidden behind the alt screen.
	logPath := flagLogFile
	if logPath == "" && flagBackend == "terminal" {
		logPath = defaultTerminalLog
	}
	logger, closer, err := newLogger(logPath, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gameCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading game config: %v\n", err)
		closer.Close()
		os.Exit(1)
	}

	backend, err := registry.Create(flagBackend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating backend: %v\n", err)
		closer.Close()
		os.Exit(1)
	}

	rt := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	runErr := backend.Run(registry.RunOptions{
		Game:    gameCfg,
		Runtime: rt,
		Logger:  logger,
	})

	// Close log before potential exit
	closer.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
