package input

import (
	"github.com/gdamore/tcell/v2"
)

// Source drains terminal events each frame and reports the resulting controls
type Source struct {
	events  <-chan tcell.Event
	table   *KeyTable
	tracker *KeyTracker

	// OnResize is invoked for resize events, nil ignores them
	OnResize func()
}

// NewSource creates a frame input source over an event channel
func NewSource(events <-chan tcell.Event, table *KeyTable, tracker *KeyTracker) *Source {
	return &Source{
		events:  events,
		table:   table,
		tracker: tracker,
	}
}

// Poll consumes all pending events without blocking and returns the frame's controls
// A closed event channel is treated as the close signal
func (s *Source) Poll() Controls {
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.tracker.Press(ActionQuit)
				return s.tracker.Controls()
			}
			s.handle(ev)
		default:
			return s.tracker.Controls()
		}
	}
}

func (s *Source) handle(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if a := s.table.Lookup(e); a != ActionNone {
			s.tracker.Press(a)
		}
	case *tcell.EventResize:
		if s.OnResize != nil {
			s.OnResize()
		}
	}
}
