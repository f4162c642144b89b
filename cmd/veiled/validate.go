package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/veiled-path/internal/grid"
	"github.com/vovakirdan/veiled-path/internal/inspect"
	"github.com/vovakirdan/veiled-path/internal/mapdoc"
)

var flagStrict bool

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check map files",
	Long: `Parse each map file, build its grid and report problems.

Errors (the map cannot be loaded):
  - malformed JSON or YAML
  - size not positive or not a multiple of 16

Warnings (the map loads, but probably not as intended):
  - placements outside the grid, or overwriting another item
  - doors no key opens, keys that match no door

Examples:
  veiled validate maps/spiral.json
  veiled validate --strict maps/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&flagStrict, "strict", false, "Treat warnings as errors")
}

func runValidate(_ *cobra.Command, args []string) {
	failed := 0
	for _, path := range args {
		if !validateFile(path) {
			failed++
		}
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d map(s) failed\n", failed, len(args))
		os.Exit(1)
	}
}

// validateFile reports on one map and returns whether it passed.
func validateFile(path string) bool {
	d, err := mapdoc.LoadFile(path)
	if err != nil {
		var verr mapdoc.ValidationError
		if errors.As(err, &verr) {
			fmt.Printf("%s %s: %s\n", inspect.StyleError.Sprint("FAIL"), path, verr)
		} else {
			fmt.Printf("%s %s: %v\n", inspect.StyleError.Sprint("FAIL"), path, err)
		}
		return false
	}

	s := inspect.Summarize(d, grid.Build(d, grid.WithLogger(nil)))
	if s.Clean() {
		fmt.Printf("%s %s (%dx%d, %d door(s), %d key(s))\n",
			inspect.StyleOK.Sprint("OK  "), path, s.Width, s.Height, s.Doors, s.Keys)
		return true
	}

	label := inspect.StyleWarning.Sprint("WARN")
	if flagStrict {
		label = inspect.StyleError.Sprint("FAIL")
	}
	fmt.Printf("%s %s\n", label, path)
	for _, w := range s.Warnings {
		fmt.Printf("     %s\n", w)
	}
	for _, id := range s.DoorsWithoutKey {
		fmt.Printf("     door %d has no key\n", id)
	}
	for _, id := range s.KeysWithoutDoor {
		fmt.Printf("     key for door %d matches no door\n", id)
	}
	return !flagStrict
}
