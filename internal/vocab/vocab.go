// Package vocab provides the familiar-word lists used to decide which
// words count as difficult.
package vocab

import (
	"bufio"
	"embed"
	"fmt"
	"strings"
	"sync"
)

//go:embed data/*.txt
var dataFS embed.FS

// Name identifies a familiar-word list.
type Name string

// Built-in lists.
const (
	DaleChall Name = "dale-chall"
	Spache    Name = "spache"
)

// Names returns the built-in list names.
func Names() []Name {
	return []Name{DaleChall, Spache}
}

// ParseName reports whether raw names a built-in list.
func ParseName(raw string) (Name, bool) {
	switch n := Name(strings.ToLower(strings.TrimSpace(raw))); n {
	case DaleChall, Spache:
		return n, true
	}
	return "", false
}

// List is an immutable set of familiar words.
type List struct {
	name  Name
	words map[string]struct{}
}

// NewList builds a List from words. Words are matched case-insensitively.
func NewList(name Name, words []string) *List {
	l := &List{name: name, words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			l.words[w] = struct{}{}
		}
	}
	return l
}

// Name returns the list's name.
func (l *List) Name() Name { return l.name }

// Len returns the number of distinct words.
func (l *List) Len() int { return len(l.words) }

// Contains reports whether word is on the list.
func (l *List) Contains(word string) bool {
	_, ok := l.words[strings.ToLower(word)]
	return ok
}

// Load reads a built-in list from the embedded data. Blank lines and
// lines starting with '#' are skipped.
func Load(name Name) (*List, error) {
	if _, ok := ParseName(string(name)); !ok {
		return nil, fmt.Errorf("unknown vocabulary %q", name)
	}
	f, err := dataFS.Open("data/" + string(name) + ".txt")
	if err != nil {
		return nil, fmt.Errorf("opening vocabulary %q: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading vocabulary %q: %w", name, err)
	}
	return NewList(name, words), nil
}

// Set looks words up across several named lists.
type Set struct {
	lists map[Name]*List
}

// NewSet returns a Set holding lists.
func NewSet(lists ...*List) *Set {
	s := &Set{lists: make(map[Name]*List, len(lists))}
	for _, l := range lists {
		s.lists[l.Name()] = l
	}
	return s
}

// Contains reports whether word is on the list called name. Unknown
// names contain nothing.
func (s *Set) Contains(word string, name Name) bool {
	l, ok := s.lists[name]
	if !ok {
		return false
	}
	return l.Contains(word)
}

// Has reports whether the set holds a list called name.
func (s *Set) Has(name Name) bool {
	_, ok := s.lists[name]
	return ok
}

// Lookup returns the list called name.
func (s *Set) Lookup(name Name) (*List, bool) {
	l, ok := s.lists[name]
	return l, ok
}

var (
	defaultOnce sync.Once
	defaultSet  *Set
)

// Default returns the Set of built-in lists, loaded once. The embedded
// data is part of the binary, so a load failure is a build defect.
func Default() *Set {
	defaultOnce.Do(func() {
		var lists []*List
		for _, name := range Names() {
			l, err := Load(name)
			if err != nil {
				panic(err)
			}
			lists = append(lists, l)
		}
		defaultSet = NewSet(lists...)
	})
	return defaultSet
}
