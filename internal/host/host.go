// Package host connects document events to a score indicator. A
// Controller evaluates every open or save event and either shows the
// score on its Sink or hides it.
package host

import (
	"context"
	"io"
	"sync"

	"github.com/jemcclin/readabilitycheck/internal/config"
	"github.com/jemcclin/readabilitycheck/internal/log"
	"github.com/jemcclin/readabilitycheck/internal/mdtext"
	"github.com/jemcclin/readabilitycheck/internal/readability"
)

// EventType says why a document is being scored.
type EventType int

// Event types.
const (
	Open EventType = iota
	Save
)

func (t EventType) String() string {
	if t == Save {
		return "save"
	}
	return "open"
}

// Event carries a document's current text.
type Event struct {
	Type EventType
	Path string
	Kind mdtext.Kind
	Text string
}

// Sink displays the current score. Hide is called when no score
// applies. Sinks that also implement io.Closer are closed by
// Controller.Close.
type Sink interface {
	Show(name string, value float64)
	Hide()
}

// Focuser is implemented by sinks that keep one indicator per
// document. Controller calls Focus with the event's path before every
// Show or Hide, and with "" when it closes.
type Focuser interface {
	Focus(path string)
}

// Controller evaluates document events and drives a Sink.
type Controller struct {
	engine *readability.Engine
	cfg    *config.Config
	sink   Sink
	log    *log.Logger

	mu     sync.Mutex
	closed bool
}

// NewController returns a Controller scoring with e, choosing each
// document's formula from cfg. A nil cfg means config.Defaults().
func NewController(e *readability.Engine, cfg *config.Config, sink Sink, logger *log.Logger) *Controller {
	if cfg == nil {
		cfg = config.Defaults()
	}
	return &Controller{engine: e, cfg: cfg, sink: sink, log: logger}
}

// Update scores ev and updates the sink. It returns the result shown,
// or a result with OK false when the indicator was hidden. Updates
// after Close are ignored.
func (c *Controller) Update(ev Event) readability.Result {
	f := config.Effective(c.cfg, ev.Path).Formula
	res := c.engine.Evaluate(ev.Text, ev.Kind, f)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return readability.NoScore(f)
	}

	c.log.Debug().
		Str("event", ev.Type.String()).
		Str("path", ev.Path).
		Str("kind", string(ev.Kind)).
		Bool("scored", res.OK).
		Msg("update")
	if f, ok := c.sink.(Focuser); ok {
		f.Focus(ev.Path)
	}
	if res.OK {
		c.sink.Show(res.Name, res.Value)
	} else {
		c.sink.Hide()
	}
	return res
}

// Run applies events until ctx is cancelled or events is closed.
func (c *Controller) Run(ctx context.Context, events <-chan Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			c.Update(ev)
		}
	}
}

// Close hides the indicator and releases the sink. A Focuser is
// focused on "" first, so per-document indicators are left as they
// are. It is safe to call more than once.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	if f, ok := c.sink.(Focuser); ok {
		f.Focus("")
	}
	c.sink.Hide()
	if cl, ok := c.sink.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}
