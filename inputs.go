package utilcss

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/yacobolo/utilcss/internal/shorthand"
)

// Source is the content of one input file.
type Source struct {
	Path string
	Text string
}

// Location is where a class was first seen in the inputs.
type Location struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"` // 1-based, 0 when unknown
	Text   string `json:"-"`      // full line for source display
}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually read (after filtering)
	FilesSkipped    int // Files skipped as generated or gitignored
}

var (
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isGenerated reports whether path looks like build output rather than
// hand-written markup.
func isGenerated(path string) bool {
	return strings.HasSuffix(path, "_templ.go") ||
		strings.HasSuffix(path, ".templ.go") ||
		strings.HasSuffix(path, ".min.css") ||
		strings.HasSuffix(path, ".min.js")
}

// loadGitIgnore loads the .gitignore of the working directory once.
// A missing .gitignore disables the check.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile reports whether a matched file is excluded from scanning.
// Gitignore rules only apply to relative paths, which are inside the project.
func shouldSkipFile(path string) bool {
	if isGenerated(path) {
		return true
	}
	if !filepath.IsAbs(path) {
		if gi := loadGitIgnore(); gi != nil && gi.MatchesPath(path) {
			return true
		}
	}
	return false
}

// ExpandGlobs expands doublestar patterns to the regular files they match,
// in pattern order and without duplicates.
func ExpandGlobs(patterns []string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	return files, stats, nil
}

// ReadSources reads every file matched by patterns.
func ReadSources(patterns []string) ([]Source, ScanStats, error) {
	files, stats, err := ExpandGlobs(patterns)
	if err != nil {
		return nil, stats, err
	}

	sources := make([]Source, 0, len(files))
	for _, file := range files {
		// #nosec G304 - paths come from the user's own globs
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, stats, fmt.Errorf("read %s: %w", file, err)
		}
		sources = append(sources, Source{Path: file, Text: string(content)})
	}
	return sources, stats, nil
}

// GenerateSources generates CSS for the classes found in sources, like
// GenerateText, and attaches the first location of each class to its
// diagnostics.
func (g *Generator) GenerateSources(sources []Source, opts ...Option) *Result {
	var classes []string
	locations := make(map[string]Location)

	for _, src := range sources {
		for i, line := range strings.Split(src.Text, "\n") {
			for _, class := range shorthand.Extract(line) {
				if _, ok := locations[class]; ok {
					continue
				}
				locations[class] = Location{
					File:   src.Path,
					Line:   i + 1,
					Column: findClassColumn(line, class),
					Text:   strings.TrimRight(line, "\r"),
				}
				classes = append(classes, class)
			}
		}
	}

	res := g.generate(classes, true, buildOptions(opts))
	for i := range res.Diagnostics {
		if loc, ok := locations[res.Diagnostics[i].Class]; ok {
			res.Diagnostics[i].Pos = &loc
		}
	}
	return res
}

// findClassColumn locates the 1-based column where class starts within line.
// Occurrences inside a class attribute are preferred over stray text.
func findClassColumn(line string, class string) int {
	// Strategy 1: inside a class= attribute
	if attr := strings.Index(line, "class="); attr != -1 {
		if quote := strings.IndexAny(line[attr:], `"'`); quote != -1 {
			start := attr + quote + 1
			value := line[start:]
			if end := strings.IndexAny(value, `"'`); end != -1 {
				value = value[:end]
			}
			if idx := indexToken(value, class); idx != -1 {
				return start + idx + 1
			}
		}
	}

	// Strategy 2: anywhere as a whole token
	if idx := indexToken(line, class); idx != -1 {
		return idx + 1
	}

	return 0
}

// indexToken finds class in s where it is not part of a longer class.
func indexToken(s, class string) int {
	for off := 0; off < len(s); {
		idx := strings.Index(s[off:], class)
		if idx == -1 {
			return -1
		}
		start, end := off+idx, off+idx+len(class)
		if (start == 0 || isBoundary(s[start-1])) && (end == len(s) || isBoundary(s[end])) {
			return start
		}
		off = start + 1
	}
	return -1
}

func isBoundary(c byte) bool {
	return strings.IndexByte(" \t\r\n\"'`<>={}[];", c) != -1
}

// relativePath returns path relative to the working directory when it is
// absolute and below it.
func relativePath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	rel, err := filepath.Rel(cwd, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
