package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/veiled-path/internal/config"
	"github.com/vovakirdan/veiled-path/internal/inspect"
	"github.com/vovakirdan/veiled-path/internal/pack"
)

var flagPackPath string

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Manage level packs",
	Long: `A level pack is a single SQLite file holding any number of maps.
Point game.pack in the config at a pack to list its maps in the menu.

Examples:
  veiled pack build ./maps --pack ~/.veiled/maps.db
  veiled pack list --pack ~/.veiled/maps.db
  veiled pack remove spiral`,
}

var packBuildCmd = &cobra.Command{
	Use:   "build <dir>",
	Short: "Import every map in a directory",
	Args:  cobra.ExactArgs(1),
	Run:   runPackBuild,
}

var packListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the maps in a pack",
	Args:  cobra.NoArgs,
	Run:   runPackList,
}

var packRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a map from a pack",
	Args:  cobra.ExactArgs(1),
	Run:   runPackRemove,
}

func init() {
	packCmd.PersistentFlags().StringVar(&flagPackPath, "pack", "", "Pack file (default: game.pack, then ~/.veiled/maps.db)")

	packCmd.AddCommand(packBuildCmd)
	packCmd.AddCommand(packListCmd)
	packCmd.AddCommand(packRemoveCmd)
}

// openPack opens the pack named by --pack, the config, or the default path.
func openPack() (*pack.Store, string) {
	a, err := loadApp(false)
	if err != nil {
		fail("%v", err)
	}
	path := flagPackPath
	if path == "" {
		path = a.cfg.Game.Pack
	}
	if path == "" {
		path = config.UserPath("maps.db")
	}
	store, err := pack.Open(path)
	if err != nil {
		fail("%v", err)
	}
	return store, path
}

func runPackBuild(_ *cobra.Command, args []string) {
	store, path := openPack()
	defer store.Close()

	res, err := store.ImportDir(args[0])
	if err != nil {
		fail("%v", err)
	}

	for _, name := range res.Added {
		fmt.Printf("%s %s\n", inspect.StyleOK.Sprint("added  "), name)
	}
	skipped := make([]string, 0, len(res.Skipped))
	for p := range res.Skipped {
		skipped = append(skipped, p)
	}
	sort.Strings(skipped)
	for _, p := range skipped {
		fmt.Printf("%s %s: %v\n", inspect.StyleWarning.Sprint("skipped"), p, res.Skipped[p])
	}

	count, err := store.Count()
	if err != nil {
		fail("%v", err)
	}
	fmt.Printf("\n%s now holds %d map(s)\n", path, count)
}

func runPackList(_ *cobra.Command, _ []string) {
	store, path := openPack()
	defer store.Close()

	entries, err := store.List()
	if err != nil {
		fail("%v", err)
	}
	if len(entries) == 0 {
		fmt.Printf("%s is empty.\n", path)
		return
	}

	fmt.Printf("Maps in %s:\n\n", path)
	fmt.Printf("  %-20s  %4s  %5s  %5s  %4s  %s\n", "Name", "Size", "Walls", "Doors", "Keys", "Added")
	fmt.Printf("  %-20s  %4s  %5s  %5s  %4s  %s\n", "----", "----", "-----", "-----", "----", "-----")
	for _, e := range entries {
		fmt.Printf("  %-20s  %4d  %5d  %5d  %4d  %s\n",
			e.Name, e.Size, e.Walls, e.Doors, e.Keys, e.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func runPackRemove(_ *cobra.Command, args []string) {
	store, path := openPack()
	defer store.Close()

	if err := store.Remove(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
	fmt.Printf("Removed %s from %s\n", args[0], path)
}
