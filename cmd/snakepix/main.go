// snakepix plays snake on a tiny pixel framebuffer, in the terminal, in a
// desktop window, or over SSH.
//
// Usage:
//
//	snakepix list              - List available backends
//	snakepix play              - Play in the terminal
//	snakepix play -b window    - Play in a desktop window
//	snakepix serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Poll rate of the terminal loop (default: 60)
//	--seed <value>       - Set RNG seed for reproducible food placement
//	--log-level <level>  - debug, info, warn or error (default: debug)
//	--log-file <path>    - Log destination (terminal default: ~/.snakepix/snakepix.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/snake-pixels/internal/platform/tui"
	_ "github.com/vovakirdan/snake-pixels/internal/platform/window"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snakepix",
	Short: "Snake on a pixel framebuffer",
	Long: `snakepix is a small snake game drawn on a 15x15 pixel framebuffer.

Available commands:
  list     - Show all available backends
  play     - Play locally
  serve    - Start SSH server for remote play

Examples:
  snakepix play
  snakepix play --backend window
  snakepix serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Poll rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "debug", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (default: stderr, or ~/.snakepix/snakepix.log for the terminal backend)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
