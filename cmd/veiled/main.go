// veiled is a dual-dimension grid puzzle for the terminal and the desktop.
//
// Usage:
//
//	veiled list                 - List available levels
//	veiled play [level]         - Play a level (tutorial by default)
//	veiled play --map file.json - Play a custom map file
//	veiled menu                 - Pick levels interactively
//	veiled validate <file>...   - Check map files
//	veiled inspect <level|file> - Print both dimensions of a level
//	veiled pack build <dir>     - Import a directory of maps into a pack
//	veiled pack list            - Show the maps in a pack
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config, 60)
//	--config <path>      - Use a specific config file
//	--log-level <level>  - debug, info, warn or error
//	--lang <code>        - UI and tutorial language (en, fr)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import levels to register them
	_ "github.com/vovakirdan/veiled-path/internal/game"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLogLevel string
	flagLang     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "veiled",
	Short: "The Veiled Path - a puzzle across two dimensions",
	Long: `The Veiled Path is a grid puzzle played across two overlaid
dimensions, Light and Dark. Walls exist in one dimension only; switch
dimensions to slip past them, pick up keys to open doors, and reach the goal.

Available commands:
  list      - Show all available levels
  play      - Play a level directly
  menu      - Interactive level picker
  validate  - Check map files
  inspect   - Print a level as text
  pack      - Manage level packs

Examples:
  veiled play
  veiled play level1 --gui
  veiled play --map ./maps/spiral.yaml
  veiled menu --lang fr
  veiled pack build ./maps --pack ~/.veiled/maps.db`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "Language (default from config or $LANG)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(packCmd)
}
