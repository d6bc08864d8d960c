package host

import (
	"fmt"
	"io"
	"strconv"
	"sync"
)

// StatusLine is a Sink that writes one line per change, e.g.
// "Flesch Reading Ease score: 72", and "no score" when a shown
// indicator is hidden. Repeated identical states are not written again.
//
// StatusLine is a Focuser: each focused path keeps its own indicator
// and its lines are labelled "<path>: ".
type StatusLine struct {
	mu     sync.Mutex
	w      io.Writer
	prefix string
	path   string
	lines  map[string]string // shown line per path; absent when hidden
}

// NewStatusLine returns a StatusLine writing to w. A non-empty prefix
// is written before each line.
func NewStatusLine(w io.Writer, prefix string) *StatusLine {
	return &StatusLine{w: w, prefix: prefix, lines: make(map[string]string)}
}

// Focus implements Focuser.
func (s *StatusLine) Focus(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.path = path
}

// Show implements Sink.
func (s *StatusLine) Show(name string, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	line := fmt.Sprintf("%s score: %s", name, strconv.FormatFloat(value, 'f', -1, 64))
	if last, ok := s.lines[s.path]; ok && last == line {
		return
	}
	s.lines[s.path] = line
	s.write(line)
}

// Hide implements Sink.
func (s *StatusLine) Hide() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lines[s.path]; !ok {
		return
	}
	delete(s.lines, s.path)
	s.write("no score")
}

// Text returns the focused document's shown line, or "" when hidden.
func (s *StatusLine) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lines[s.path]
}

func (s *StatusLine) write(line string) {
	label := s.prefix
	if s.path != "" {
		label += s.path + ": "
	}
	_, _ = fmt.Fprintln(s.w, label+line)
}
