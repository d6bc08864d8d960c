package lint

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// GitignoreMatcher checks whether a path is ignored according to the
// .gitignore files under a root and in its ancestors. Negation patterns
// are supported; later rules override earlier ones.
type GitignoreMatcher struct {
	rules []ignoreRule
}

type ignoreRule struct {
	// base is the directory holding the .gitignore that defined the rule.
	base    string
	pattern string
	negate  bool
	dirOnly bool
	// anchored patterns contain a slash and match the path relative to
	// base; the rest match the basename at any depth.
	anchored bool
}

// NewGitignoreMatcher collects .gitignore files from the ancestors of
// root and from every directory below it.
func NewGitignoreMatcher(root string) *GitignoreMatcher {
	m := &GitignoreMatcher{}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return m
	}

	for _, gi := range ancestorGitignores(absRoot) {
		m.load(gi)
	}
	_ = filepath.Walk(absRoot, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() && info.Name() == ".gitignore" {
			m.load(path)
		}
		return nil
	})
	return m
}

// ancestorGitignores lists .gitignore files above root, outermost first.
func ancestorGitignores(root string) []string {
	var found []string
	for dir := filepath.Dir(root); ; {
		gi := filepath.Join(dir, ".gitignore")
		if _, err := os.Stat(gi); err == nil {
			found = append([]string{gi}, found...)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return found
		}
		dir = parent
	}
}

func (m *GitignoreMatcher) load(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()

	base := filepath.Dir(path)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if r, ok := parseIgnoreLine(base, scanner.Text()); ok {
			m.rules = append(m.rules, r)
		}
	}
}

func parseIgnoreLine(base, line string) (ignoreRule, bool) {
	line = trimTrailingWhitespace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return ignoreRule{}, false
	}

	r := ignoreRule{base: base}
	if strings.HasPrefix(line, "!") {
		r.negate = true
		line = line[1:]
	}
	if strings.HasSuffix(line, "/") {
		r.dirOnly = true
		line = strings.TrimSuffix(line, "/")
	}
	if strings.HasPrefix(line, "/") {
		line = line[1:]
		r.anchored = true
	} else {
		r.anchored = strings.Contains(line, "/")
	}
	r.pattern = line
	return r, line != ""
}

// trimTrailingWhitespace removes trailing spaces and tabs unless the
// last space is escaped with a backslash.
func trimTrailingWhitespace(s string) string {
	i := len(s)
	for i > 0 && (s[i-1] == ' ' || s[i-1] == '\t') {
		i--
	}
	if i < len(s) && i > 0 && s[i-1] == '\\' {
		return s[:i-1] + " "
	}
	return s[:i]
}

// IsIgnored reports whether absPath is ignored. isDir indicates whether
// the path is a directory.
func (m *GitignoreMatcher) IsIgnored(absPath string, isDir bool) bool {
	ignored := false
	for _, r := range m.rules {
		if r.dirOnly && !isDir {
			continue
		}
		if r.matches(absPath) {
			ignored = !r.negate
		}
	}
	return ignored
}

func (r ignoreRule) matches(absPath string) bool {
	rel, err := filepath.Rel(r.base, absPath)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return false
	}

	if r.anchored {
		ok, _ := doublestar.Match(r.pattern, rel)
		return ok
	}
	ok, _ := doublestar.Match(r.pattern, filepath.Base(absPath))
	if ok {
		return true
	}
	ok, _ = doublestar.Match("**/"+r.pattern, rel)
	return ok
}
