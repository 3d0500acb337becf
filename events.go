// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gqlmarkdown

package gqlmarkdown

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// EventName identifies an extension point of the generation pipeline.
type EventName string

const (
	// EventBeforeLoadSchema fires before schema loading; Output may carry a *Schema.
	EventBeforeLoadSchema EventName = "beforeLoadSchema"
	// EventAfterLoadSchema fires after schema loading; Data is the *Schema.
	EventAfterLoadSchema EventName = "afterLoadSchema"
	// EventBeforeRenderEntity fires before one document is printed; Data is *EntityEvent.
	// Output may carry substitute document content as string or []byte.
	EventBeforeRenderEntity EventName = "beforeRenderEntity"
	// EventAfterRenderEntity fires after one document is written; Data is *EntityEvent.
	EventAfterRenderEntity EventName = "afterRenderEntity"
	// EventBeforeGenerateIndexMetafile fires before a category descriptor is written; Data is *CategoryEvent.
	// Output may carry a substitute *CategoryDescriptor.
	EventBeforeGenerateIndexMetafile EventName = "beforeGenerateIndexMetafile"
	// EventAfterGenerateIndexMetafile fires after a category descriptor is written; Data is *CategoryEvent.
	EventAfterGenerateIndexMetafile EventName = "afterGenerateIndexMetafile"
	// EventBeforeRenderHomepage fires before homepage is written; Output may carry substitute content.
	EventBeforeRenderHomepage EventName = "beforeRenderHomepage"
	// EventAfterRenderHomepage fires after homepage is written; Data is the written path.
	EventAfterRenderHomepage EventName = "afterRenderHomepage"
)

// EntityEvent describes one entity render.
type EntityEvent struct {
	Category Category
	Entity   *Entity
	Path     string
	Content  string
}

// CategoryEvent describes one category descriptor creation.
type CategoryEvent struct {
	Dir        string
	Path       string
	Descriptor CategoryDescriptor
}

// Event is one dispatched pipeline event.
type Event struct {
	Name EventName
	Data any
	// Output is set by listeners that prevent the default action.
	Output any

	defaultPrevented   bool
	propagationStopped bool
}

// NewEvent creates event with payload.
func NewEvent(name EventName, data any) *Event {
	return &Event{Name: name, Data: data}
}

// PreventDefault suppresses the built-in action; Output substitutes its result when set.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a listener suppressed the built-in action.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation prevents remaining listeners from receiving the event.
func (e *Event) StopPropagation() {
	e.propagationStopped = true
}

// PropagationStopped reports whether a listener stopped propagation.
func (e *Event) PropagationStopped() bool {
	return e.propagationStopped
}

// Listener observes or overrides one event.
type Listener func(ctx context.Context, event *Event) error

// listenerEntry is one registered listener with ordering keys.
type listenerEntry struct {
	priority int
	seq      int
	fn       Listener
}

// ListenerOption configures listener registration.
type ListenerOption func(*listenerEntry)

// WithPriority orders listener; lower values run first, equal values run in registration order.
func WithPriority(priority int) ListenerOption {
	return func(entry *listenerEntry) {
		entry.priority = priority
	}
}

// Emitter dispatches events to listeners in deterministic order. Safe for concurrent use.
type Emitter struct {
	mu        sync.RWMutex
	seq       int
	listeners map[EventName][]listenerEntry
}

// NewEmitter creates an emitter without listeners.
func NewEmitter() *Emitter {
	return &Emitter{listeners: make(map[EventName][]listenerEntry)}
}

// On registers listener for event name.
func (e *Emitter) On(name EventName, fn Listener, opts ...ListenerOption) {
	if fn == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.seq++
	entry := listenerEntry{seq: e.seq, fn: fn}
	for _, opt := range opts {
		opt(&entry)
	}

	entries := append(e.listeners[name], entry)
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority < entries[j].priority
		}

		return entries[i].seq < entries[j].seq
	})

	e.listeners[name] = entries
}

// Emit dispatches event until a listener fails or stops propagation. A nil emitter is a no-op.
func (e *Emitter) Emit(ctx context.Context, event *Event) error {
	if e == nil || event == nil {
		return nil
	}

	e.mu.RLock()
	entries := append([]listenerEntry(nil), e.listeners[event.Name]...)
	e.mu.RUnlock()

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := entry.fn(ctx, event); err != nil {
			return fmt.Errorf("%s listener: %w", event.Name, err)
		}

		if event.propagationStopped {
			break
		}
	}

	return nil
}
