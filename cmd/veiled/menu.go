package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/veiled-path/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick levels from an interactive menu",
	Long: `Start in interactive menu mode.

The menu lists the bundled levels, maps found in game.maps_dir and maps
stored in the configured pack. After a level ends you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play the selected level
  Q/Esc        - Quit

Examples:
  veiled menu
  veiled menu --fps 30
  veiled menu --lang fr`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	a, err := loadApp(true)
	if err != nil {
		fail("%v", err)
	}
	defer a.Close()

	tr := a.catalog.Func()
	status := ""
	for {
		cfg := a.runtimeConfig()
		menuResult, err := tui.RunMenu(a.levelItems(), cfg.ScreenW, cfg.ScreenH, tr, status)
		if err != nil {
			fail("%v", err)
		}
		if menuResult.Quit {
			return
		}

		level, err := a.openItem(menuResult.Item)
		if err != nil {
			a.logger.Error("open level", "id", menuResult.Item.ID, "err", err)
			status = err.Error()
			continue
		}

		res, err := a.playTerminal(level)
		if err != nil {
			fail("%v", err)
		}
		if res.Quit {
			return
		}
		status = level.Title() + "  " + a.catalog.T("Deaths: %d", res.State.Deaths)
	}
}
