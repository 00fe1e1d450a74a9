// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/helixdoc

package helixdoc

import "fmt"

// ResolveEvents returns the effective event surface of cls.
//
// Each base listed in cls.Inheritance contributes the events it declares
// itself; events of a base's own bases are not followed. Later bases
// overwrite earlier ones on name collision and the class's own events always
// win. Entries keep the position of their first insertion.
func ResolveEvents(classes ClassTable, cls *Class) ([]Event, error) {
	if cls == nil {
		return nil, nil
	}

	events := newEventSet()
	for _, baseName := range cls.Inheritance {
		var base *Class
		ok := false
		if classes != nil {
			base, ok = classes.Class(baseName)
		}

		if !ok || base == nil {
			return nil, fmt.Errorf("%w: class %q lists unknown base %q", ErrDanglingInheritance, cls.Name, baseName)
		}

		for _, event := range base.Events {
			events.put(event)
		}
	}

	for _, event := range cls.Events {
		events.put(event)
	}

	return events.list(), nil
}

// eventSet is an insertion-ordered map of events keyed by name.
type eventSet struct {
	index  map[string]int
	events []Event
}

func newEventSet() *eventSet {
	return &eventSet{index: make(map[string]int)}
}

// put inserts or replaces an event in place.
func (s *eventSet) put(event Event) {
	if at, ok := s.index[event.Name]; ok {
		s.events[at] = event
		return
	}

	s.index[event.Name] = len(s.events)
	s.events = append(s.events, event)
}

func (s *eventSet) list() []Event {
	if len(s.events) == 0 {
		return nil
	}

	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}
