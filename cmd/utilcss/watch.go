package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounceDelay collapses bursts of events from editors saving a file.
const debounceDelay = 100 * time.Millisecond

// watch runs run once, then again whenever a file matching the inputs
// changes, until interrupted.
func watch(ctx context.Context, config generateConfig, log *zap.Logger, run func() error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	dirs, err := watchDirs(config.Inputs)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	log.Info("watching for changes", zap.Int("dirs", len(dirs)))

	if err := run(); err != nil {
		log.Error("generate failed", zap.Error(err))
	}

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) && isDir(event.Name) && !skipDir(event.Name) {
				if err := watcher.Add(event.Name); err != nil {
					log.Warn("cannot watch new directory", zap.String("dir", event.Name), zap.Error(err))
				}
				continue
			}
			if !relevant(event, config) {
				continue
			}
			log.Debug("change detected", zap.String("file", event.Name), zap.Stringer("op", event.Op))
			fire = time.After(debounceDelay)

		case <-fire:
			fire = nil
			if err := run(); err != nil {
				log.Error("generate failed", zap.Error(err))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", zap.Error(err))
		}
	}
}

// relevant reports whether event touches an input file that is not one of
// our own outputs.
func relevant(event fsnotify.Event, config generateConfig) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	name := filepath.Clean(event.Name)
	for _, out := range []string{config.Output, config.TokensCSS} {
		if out != "" && filepath.Clean(out) == name {
			return false
		}
	}

	for _, pattern := range config.Inputs {
		if ok, _ := doublestar.PathMatch(filepath.Clean(pattern), name); ok {
			return true
		}
	}
	return false
}

// watchDirs returns every directory below the static base of each pattern.
func watchDirs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var dirs []string

	for _, pattern := range patterns {
		base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
		base = filepath.FromSlash(base)

		err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				return nil
			}
			if path != base && skipDir(path) {
				return filepath.SkipDir
			}
			if !seen[path] {
				seen[path] = true
				dirs = append(dirs, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", base, err)
		}
	}
	return dirs, nil
}

// skipDir excludes hidden directories and dependency trees.
func skipDir(path string) bool {
	name := filepath.Base(path)
	return (strings.HasPrefix(name, ".") && name != ".") || name == "node_modules" || name == "vendor"
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
