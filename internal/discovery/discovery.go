// Package discovery finds documents to score by expanding the glob
// patterns from the config's files list.
package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/jemcclin/readabilitycheck/internal/lint"
)

// Options controls how file discovery behaves.
type Options struct {
	// Patterns are doublestar patterns relative to BaseDir. An empty
	// list discovers nothing.
	Patterns []string

	// BaseDir is the directory patterns are matched under. Defaults to ".".
	BaseDir string

	// UseGitignore enables filtering by .gitignore rules.
	UseGitignore bool
}

// Discover returns the files under BaseDir matching any pattern,
// joined onto BaseDir. Invalid patterns are skipped. Results are
// deduplicated and sorted.
func Discover(opts Options) ([]string, error) {
	if len(opts.Patterns) == 0 {
		return nil, nil
	}

	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = "."
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, err
	}

	var git *lint.GitignoreMatcher
	if opts.UseGitignore {
		git = lint.NewGitignoreMatcher(absBase)
	}

	fsys := os.DirFS(absBase)
	seen := make(map[string]bool)
	var result []string

	for _, pattern := range opts.Patterns {
		if !doublestar.ValidatePattern(pattern) {
			continue
		}
		err := doublestar.GlobWalk(fsys, pattern, func(rel string, d fs.DirEntry) error {
			if d.IsDir() || seen[rel] {
				return nil
			}
			if git != nil && ignored(git, absBase, rel) {
				return nil
			}
			seen[rel] = true
			result = append(result, filepath.Join(baseDir, filepath.FromSlash(rel)))
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("discovering %q: %w", pattern, err)
		}
	}

	sort.Strings(result)
	return result, nil
}

// ignored reports whether the file at rel, or any directory above it,
// is excluded by .gitignore.
func ignored(git *lint.GitignoreMatcher, absBase, rel string) bool {
	parts := strings.Split(rel, "/")
	dir := absBase
	for _, p := range parts[:len(parts)-1] {
		dir = filepath.Join(dir, p)
		if git.IsIgnored(dir, true) {
			return true
		}
	}
	return git.IsIgnored(filepath.Join(absBase, filepath.FromSlash(rel)), false)
}
