package lint

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/jemcclin/readabilitycheck/internal/mdtext"
	"github.com/jemcclin/readabilitycheck/internal/readability"
)

// ResolveOpts controls how file resolution behaves.
type ResolveOpts struct {
	// UseGitignore enables filtering of walked directories by .gitignore
	// rules. Explicitly named file paths are never filtered. Nil means
	// true.
	UseGitignore *bool

	// Kinds are the document kinds collected from directories and globs.
	// Nil means readability.DefaultKinds.
	Kinds []mdtext.Kind
}

// DefaultResolveOpts returns options with defaults applied.
func DefaultResolveOpts() ResolveOpts {
	t := true
	return ResolveOpts{UseGitignore: &t, Kinds: readability.DefaultKinds()}
}

func (o ResolveOpts) useGitignore() bool {
	if o.UseGitignore == nil {
		return true
	}
	return *o.UseGitignore
}

// accepts reports whether path has an extension of one of the kinds.
func (o ResolveOpts) accepts(path string) bool {
	kinds := o.Kinds
	if kinds == nil {
		kinds = readability.DefaultKinds()
	}
	k := mdtext.KindOf(path)
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

// hasGlobChars returns true if the string contains glob meta-characters.
func hasGlobChars(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// ResolveFiles takes positional arguments and returns deduplicated,
// sorted document paths using DefaultResolveOpts.
func ResolveFiles(args []string) ([]string, error) {
	return ResolveFilesWithOpts(args, DefaultResolveOpts())
}

// ResolveFilesWithOpts resolves individual files, directories (walked
// recursively for files of the configured kinds) and doublestar glob
// patterns. Returns an error for nonexistent paths that are not glob
// patterns.
func ResolveFilesWithOpts(args []string, opts ResolveOpts) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	addFile := func(path string) {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if !seen[abs] {
			seen[abs] = true
			result = append(result, path)
		}
	}

	for _, arg := range args {
		if err := resolveArg(arg, opts, addFile); err != nil {
			return nil, err
		}
	}

	sort.Strings(result)
	return result, nil
}

func resolveArg(arg string, opts ResolveOpts, addFile func(string)) error {
	if hasGlobChars(arg) {
		return resolveGlob(arg, opts, addFile)
	}

	info, err := os.Stat(arg)
	if err != nil {
		return fmt.Errorf("cannot access %q: %w", arg, err)
	}

	if info.IsDir() {
		return addDirFiles(arg, opts, addFile)
	}

	// Explicitly named files are taken as given, whatever their kind.
	addFile(arg)
	return nil
}

// resolveGlob expands a glob pattern and adds matching documents.
func resolveGlob(pattern string, opts ResolveOpts, addFile func(string)) error {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			continue
		}
		if info.IsDir() {
			if err := addDirFiles(m, opts, addFile); err != nil {
				return err
			}
		} else if opts.accepts(m) {
			addFile(m)
		}
	}
	return nil
}

func addDirFiles(dir string, opts ResolveOpts, addFile func(string)) error {
	var matcher *GitignoreMatcher
	if opts.useGitignore() {
		matcher = NewGitignoreMatcher(dir)
	}

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if matcher != nil && isGitignored(matcher, path, info.IsDir()) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.IsDir() && opts.accepts(path) {
			addFile(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking directory %q: %w", dir, err)
	}
	return nil
}

func isGitignored(matcher *GitignoreMatcher, path string, isDir bool) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	return matcher.IsIgnored(absPath, isDir)
}
