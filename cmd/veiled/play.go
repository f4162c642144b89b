package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/veiled-path/internal/game"
	"github.com/vovakirdan/veiled-path/internal/mapdoc"
	"github.com/vovakirdan/veiled-path/internal/platform/gui"
	"github.com/vovakirdan/veiled-path/internal/platform/tui"
)

var (
	flagMap string
	flagGUI bool
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level, or the tutorial if none is given.

The level may be a bundled id (tutorial, level1), a map file path, a map id
under game.maps_dir, or a map name in the configured pack.

Controls:
  Arrows/WASD  - Move
  Space/Enter  - Dismiss a hint, otherwise switch dimension
  R            - Try again (after dying)
  Esc/B        - Back to the menu
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a text screenshot (terminal only)

Examples:
  veiled play
  veiled play level1
  veiled play level1 --gui
  veiled play --map ./maps/spiral.json`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMap, "map", "", "Path to a map file (JSON or YAML)")
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Open a desktop window instead of the terminal UI")
}

func runPlay(_ *cobra.Command, args []string) {
	a, err := loadApp(true)
	if err != nil {
		fail("%v", err)
	}
	defer a.Close()

	var level *game.Level
	switch {
	case flagMap != "":
		d, loadErr := mapdoc.LoadFile(flagMap)
		if loadErr != nil {
			fail("%v", loadErr)
		}
		level = game.NewCustom(d)
	case len(args) == 1:
		level, err = a.resolveLevel(args[0])
	default:
		level, err = createRegistered(mapdoc.TutorialID)
	}
	if err != nil {
		fail("%v", err)
	}

	if flagGUI {
		if _, err := a.playGUI(level); err != nil {
			fail("%v", err)
		}
		return
	}
	if _, err := a.playTerminal(level); err != nil {
		fail("%v", err)
	}
}

// playTerminal runs a level in the terminal UI.
func (a *app) playTerminal(level *game.Level) (tui.PlayResult, error) {
	a.logger.Info("play", "level", level.ID(), "front", "terminal")
	return tui.Run(level, a.runtimeConfig(), tui.Options{
		HoldWindow:    a.cfg.HoldWindow(),
		ScreenshotDir: screenshotDir(),
		Logger:        a.logger,
	})
}

// playGUI runs a level in a desktop window. Ebitengine allows one window per
// process, so the caller exits afterwards.
func (a *app) playGUI(level *game.Level) (gui.Result, error) {
	a.logger.Info("play", "level", level.ID(), "front", "gui")
	cfg := a.runtimeConfig()
	return gui.Run(level, cfg, gui.Options{
		CellSize:    a.cfg.GUI.CellSize,
		FadeSeconds: a.cfg.GUI.FadeSeconds,
		Fullscreen:  a.cfg.GUI.Fullscreen,
		Logger:      a.logger,
	})
}
