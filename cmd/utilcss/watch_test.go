package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelevant(t *testing.T) {
	config := generateConfig{
		Inputs:    []string{"web/**/*.html", "*.css"},
		Output:    "app.css",
		TokensCSS: "tokens.css",
	}

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{name: "write to input", event: fsnotify.Event{Name: "web/pages/a.html", Op: fsnotify.Write}, want: true},
		{name: "create input", event: fsnotify.Event{Name: "web/a.html", Op: fsnotify.Create}, want: true},
		{name: "remove input", event: fsnotify.Event{Name: "web/a.html", Op: fsnotify.Remove}, want: true},
		{name: "rename input", event: fsnotify.Event{Name: "web/a.html", Op: fsnotify.Rename}, want: true},
		{name: "unclean path", event: fsnotify.Event{Name: "./web/a.html", Op: fsnotify.Write}, want: true},
		{name: "chmod only", event: fsnotify.Event{Name: "web/a.html", Op: fsnotify.Chmod}},
		{name: "not matched", event: fsnotify.Event{Name: "web/a.templ", Op: fsnotify.Write}},
		{name: "stylesheet output", event: fsnotify.Event{Name: "app.css", Op: fsnotify.Write}},
		{name: "token output", event: fsnotify.Event{Name: "tokens.css", Op: fsnotify.Create}},
		{name: "other css input", event: fsnotify.Event{Name: "base.css", Op: fsnotify.Write}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relevant(tt.event, config))
		})
	}
}

func TestWatchDirs(t *testing.T) {
	dir := t.TempDir()
	for _, sub := range []string{
		"web/pages",
		"web/.git/objects",
		"web/node_modules/pkg",
		"web/vendor/lib",
		"other",
	} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, sub), 0o755))
	}

	dirs, err := watchDirs([]string{
		filepath.Join(dir, "web", "**", "*.html"),
		filepath.Join(dir, "web", "pages", "*.html"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "web"),
		filepath.Join(dir, "web", "pages"),
	}, dirs)
}

func TestSkipDir(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: ".", want: false},
		{path: "web", want: false},
		{path: "web/.git", want: true},
		{path: ".cache", want: true},
		{path: "web/node_modules", want: true},
		{path: "vendor", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, skipDir(tt.path))
		})
	}
}
