package host

import (
	"context"
	"os"
	"time"

	"github.com/jemcclin/readabilitycheck/internal/log"
	"github.com/jemcclin/readabilitycheck/internal/mdtext"
)

// DefaultInterval is the polling interval used when Poller.Interval is
// zero.
const DefaultInterval = time.Second

// Poller turns file modification times into events. A file seen for
// the first time produces Open; a later change of its modification
// time or size produces Save. Files that cannot be read are skipped
// until they can.
type Poller struct {
	Paths    []string
	Interval time.Duration
	// Kind maps a path to its document kind. Defaults to mdtext.KindOf.
	Kind func(path string) mdtext.Kind
	Log  *log.Logger

	seen map[string]stamp
}

type stamp struct {
	mod  time.Time
	size int64
}

// Watch polls until ctx is cancelled, then closes the returned channel.
// The first scan happens immediately.
func (p *Poller) Watch(ctx context.Context) <-chan Event {
	out := make(chan Event)
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	go func() {
		defer close(out)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			for _, ev := range p.Scan() {
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
	return out
}

// Scan checks every path once and returns the resulting events.
func (p *Poller) Scan() []Event {
	if p.seen == nil {
		p.seen = make(map[string]stamp, len(p.Paths))
	}
	kindOf := p.Kind
	if kindOf == nil {
		kindOf = mdtext.KindOf
	}

	var events []Event
	for _, path := range p.Paths {
		info, err := os.Stat(path)
		if err != nil {
			p.Log.Printf("stat %s: %v", path, err)
			continue
		}
		st := stamp{mod: info.ModTime(), size: info.Size()}
		prev, known := p.seen[path]
		if known && prev == st {
			continue
		}

		text, err := os.ReadFile(path)
		if err != nil {
			p.Log.Printf("read %s: %v", path, err)
			continue
		}
		p.seen[path] = st

		typ := Save
		if !known {
			typ = Open
		}
		events = append(events, Event{Type: typ, Path: path, Kind: kindOf(path), Text: string(text)})
	}
	return events
}
