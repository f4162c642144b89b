package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/vovakirdan/veiled-path/internal/config"
	"github.com/vovakirdan/veiled-path/internal/game"
	"github.com/vovakirdan/veiled-path/internal/mapdoc"
	"github.com/vovakirdan/veiled-path/internal/pack"
	"github.com/vovakirdan/veiled-path/internal/platform/tui"
	"github.com/vovakirdan/veiled-path/internal/registry"
)

// levelItems lists bundled levels, then maps from maps_dir, then pack maps.
// Sources that fail to load are logged and skipped.
func (a *app) levelItems() []tui.MenuItem {
	var items []tui.MenuItem
	for _, info := range registry.List() {
		size := 0
		if d, err := mapdoc.Bundled(info.ID); err == nil {
			size = d.Size
		}
		items = append(items, tui.MenuItem{ID: info.ID, Title: info.Title, Source: tui.SourceBundled, Size: size})
	}

	if dir := config.ExpandHome(a.cfg.Game.MapsDir); dir != "" {
		entries, skipped, err := mapdoc.NewLoader(dir).LoadAll()
		if err != nil {
			a.logger.Warn("maps directory", "dir", dir, "err", err)
		}
		for path, reason := range skipped {
			a.logger.Warn("skipped map", "path", path, "err", reason)
		}
		for _, e := range entries {
			items = append(items, tui.MenuItem{
				ID:     e.ID,
				Title:  titleOr(e.Descriptor.Name, e.ID),
				Source: tui.SourceFile,
				Size:   e.Descriptor.Size,
				Path:   e.FilePath,
			})
		}
	}

	if path := a.cfg.Game.Pack; path != "" {
		store, err := pack.Open(path)
		if err != nil {
			a.logger.Warn("open pack", "path", path, "err", err)
			return items
		}
		defer store.Close()
		list, err := store.List()
		if err != nil {
			a.logger.Warn("list pack", "path", path, "err", err)
			return items
		}
		for _, e := range list {
			items = append(items, tui.MenuItem{
				ID:     e.Name,
				Title:  titleOr(e.Title, e.Name),
				Source: tui.SourcePack,
				Size:   e.Size,
			})
		}
	}
	return items
}

// openItem turns a menu entry into a playable level.
func (a *app) openItem(it tui.MenuItem) (*game.Level, error) {
	switch it.Source {
	case tui.SourceBundled:
		return createRegistered(it.ID)
	case tui.SourceFile:
		d, err := mapdoc.LoadFile(it.Path)
		if err != nil {
			return nil, err
		}
		return game.NewCustom(d), nil
	case tui.SourcePack:
		d, err := a.loadFromPack(it.ID)
		if err != nil {
			return nil, err
		}
		return game.NewCustom(d), nil
	}
	return nil, fmt.Errorf("unknown level source %q", it.Source)
}

// resolveLevel finds a level by name: a registered id, a map file path,
// a map id under maps_dir, or a map name in the pack, in that order.
func (a *app) resolveLevel(name string) (*game.Level, error) {
	if registry.Exists(name) {
		return createRegistered(name)
	}
	if _, err := os.Stat(name); err == nil {
		d, err := mapdoc.LoadFile(name)
		if err != nil {
			return nil, err
		}
		return game.NewCustom(d), nil
	}
	if dir := config.ExpandHome(a.cfg.Game.MapsDir); dir != "" {
		if e, err := mapdoc.NewLoader(dir).LoadByID(name); err == nil {
			return game.NewCustom(e.Descriptor), nil
		}
	}
	if a.cfg.Game.Pack != "" {
		d, err := a.loadFromPack(name)
		if err == nil {
			return game.NewCustom(d), nil
		}
		if !errors.Is(err, pack.ErrNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("unknown level %q (run 'veiled list' to see available levels)", name)
}

// resolveDescriptor is resolveLevel for commands that only need the map.
func (a *app) resolveDescriptor(name string) (mapdoc.Descriptor, error) {
	lvl, err := a.resolveLevel(name)
	if err != nil {
		return mapdoc.Descriptor{}, err
	}
	return lvl.Descriptor(), nil
}

func (a *app) loadFromPack(name string) (mapdoc.Descriptor, error) {
	store, err := pack.Open(a.cfg.Game.Pack)
	if err != nil {
		return mapdoc.Descriptor{}, err
	}
	defer store.Close()
	return store.Load(name)
}

func createRegistered(id string) (*game.Level, error) {
	g, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	lvl, ok := g.(*game.Level)
	if !ok {
		return nil, fmt.Errorf("level %q is not playable here", id)
	}
	return lvl, nil
}

func titleOr(title, fallback string) string {
	if title != "" {
		return title
	}
	return fallback
}
