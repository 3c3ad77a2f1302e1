// Copyright (c) 2025 digAI Labs
// SPDX-License-Identifier: MIT

// Package selection holds the process-wide region selection state.
//
// The controller is the single owner of "which bairro is selected" and
// "is the dashboard visible". Visibility is derived from the selection,
// so the two can never disagree. Every effective mutation bumps a
// generation counter; asynchronous work records the generation it was
// issued for and compares it at resolution time to decide staleness.
package selection

import (
	"sync"

	"github.com/digai/digai-tui/internal/dataset"
)

// EventKind distinguishes the controller's transitions.
type EventKind int

const (
	// EventSelected fires when a region becomes selected.
	EventSelected EventKind = iota
	// EventReset fires when the selection is cleared.
	EventReset
)

// Event describes a single selection transition.
type Event struct {
	Kind       EventKind
	Region     dataset.Record // zero value for EventReset
	Generation uint64
}

// Controller is the single mutable selection state.
// Mutations come only from user interactions (marker activation, reset).
type Controller struct {
	mu          sync.Mutex
	selected    dataset.Record
	hasSelected bool
	generation  uint64
	subscribers []func(Event)
}

// New creates a controller with nothing selected.
func New() *Controller {
	return &Controller{}
}

// Select makes region the current selection and shows the dashboard.
// Selecting the already-selected region is a no-op; the map surface maps
// a repeated marker activation to Reset, never to Select.
func (c *Controller) Select(region dataset.Record) {
	c.mu.Lock()
	if c.hasSelected && c.selected.Name == region.Name {
		c.mu.Unlock()
		return
	}
	c.selected = region
	c.hasSelected = true
	c.generation++
	ev := Event{Kind: EventSelected, Region: region, Generation: c.generation}
	subs := c.snapshotSubscribers()
	c.mu.Unlock()

	notify(subs, ev)
}

// Reset clears the selection and hides the dashboard.
// Resetting an empty selection is a no-op.
func (c *Controller) Reset() {
	c.mu.Lock()
	if !c.hasSelected {
		c.mu.Unlock()
		return
	}
	c.selected = dataset.Record{}
	c.hasSelected = false
	c.generation++
	ev := Event{Kind: EventReset, Generation: c.generation}
	subs := c.snapshotSubscribers()
	c.mu.Unlock()

	notify(subs, ev)
}

// Current returns the selected region and whether the dashboard is
// visible. Both values come from the same critical section, so no
// observer can see them disagree.
func (c *Controller) Current() (dataset.Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected, c.hasSelected
}

// Generation returns the current selection generation. It increases on
// every effective Select or Reset.
func (c *Controller) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// IsCurrent reports whether gen still matches the live selection.
// Results tagged with an older generation are stale and must be dropped.
func (c *Controller) IsCurrent(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return gen == c.generation
}

// Subscribe registers a callback for selection transitions. Callbacks run
// outside the controller's lock, on the mutating goroutine.
func (c *Controller) Subscribe(fn func(Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

func (c *Controller) snapshotSubscribers() []func(Event) {
	subs := make([]func(Event), len(c.subscribers))
	copy(subs, c.subscribers)
	return subs
}

func notify(subs []func(Event), ev Event) {
	for _, fn := range subs {
		fn(ev)
	}
}
