package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/veiled-path/internal/grid"
	"github.com/vovakirdan/veiled-path/internal/inspect"
)

var flagNoColor bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <level|file>",
	Short: "Print both dimensions of a level",
	Long: `Print a level as text, one character per cell, for each dimension.

  #  wall        D  closed door   d  open door
  K  key         G  goal          S  start

Examples:
  veiled inspect tutorial
  veiled inspect ./maps/spiral.yaml --no-color`,
	Args: cobra.ExactArgs(1),
	Run:  runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}

func runInspect(_ *cobra.Command, args []string) {
	a, err := loadApp(false)
	if err != nil {
		fail("%v", err)
	}
	defer a.Close()

	d, err := a.resolveDescriptor(args[0])
	if err != nil {
		fail("%v", err)
	}
	g := grid.Build(d, grid.WithLogger(a.logger))

	opts := inspect.Options{
		Color: !flagNoColor && term.IsTerminal(int(os.Stdout.Fd())),
	}
	if err := inspect.Dump(os.Stdout, d, g, opts); err != nil {
		fail("%v", err)
	}
}
