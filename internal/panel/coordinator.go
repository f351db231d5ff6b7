// Package panel keeps at most one UI detail panel expanded per scope and
// deterministically collapses everything when the viewing context (for
// example the selected calendar date) changes.
package panel

import (
	"log/slog"
	"sync"
)

// Generation identifies one viewing-context epoch. SetContext bumps it;
// expansion calls tagged with an older generation are ignored. This
// replaces a wall-clock guard window: stray events fired by components
// being torn down during a context switch still carry the old generation,
// so they can never flash a panel open under the new context.
type Generation uint64

// Coordinator is a single-expansion accordion state machine. ID is the
// panel identity for the scope: a bare workout id for the workout list,
// a (workout, exercise) pair for exercises. None of its methods can fail;
// ids are stored as given and reconciled later by the presentation layer.
type Coordinator[ID comparable] struct {
	mu        sync.Mutex
	log       *slog.Logger
	scope     string
	contextID string
	gen       Generation
	expanded  ID
	has       bool
}

// New creates a collapsed coordinator. scope labels log lines only.
func New[ID comparable](scope string, log *slog.Logger) *Coordinator[ID] {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Coordinator[ID]{scope: scope, log: log}
}

// Generation returns the token callers must attach to expansion calls.
// Components read it once when they mount under the current context.
func (c *Coordinator[ID]) Generation() Generation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// Expanded returns the currently expanded id, if any.
func (c *Coordinator[ID]) Expanded() (ID, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.expanded, c.has
}

// SetContext switches the viewing context. A changed context collapses
// the panel and advances the generation so in-flight expansion calls from
// the old context are absorbed. Re-asserting the current context is a
// no-op.
func (c *Coordinator[ID]) SetContext(contextID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if contextID == c.contextID {
		return
	}
	c.contextID = contextID
	c.gen++
	var zero ID
	c.expanded = zero
	c.has = false
	c.log.Debug("panel context switched", "scope", c.scope, "context", contextID)
}

// SetExpanded expands the given id, replacing whatever was expanded
// before. Stale-generation calls are silently ignored.
func (c *Coordinator[ID]) SetExpanded(gen Generation, id ID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stale(gen, "setExpanded") {
		return
	}
	c.expanded = id
	c.has = true
}

// Collapse clears the expansion. Stale-generation calls are ignored.
func (c *Coordinator[ID]) Collapse(gen Generation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stale(gen, "collapse") {
		return
	}
	var zero ID
	c.expanded = zero
	c.has = false
}

// Toggle expands id unless it already is expanded, in which case it
// collapses. At most one id is expanded after any call sequence.
func (c *Coordinator[ID]) Toggle(gen Generation, id ID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stale(gen, "toggle") {
		return
	}
	if c.has && c.expanded == id {
		var zero ID
		c.expanded = zero
		c.has = false
		return
	}
	c.expanded = id
	c.has = true
}

func (c *Coordinator[ID]) stale(gen Generation, op string) bool {
	if gen == c.gen {
		return false
	}
	c.log.Debug("stale panel input ignored", "scope", c.scope, "op", op, "gen", gen, "current", c.gen)
	return true
}
