package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// EventPoller is the part of tcell.Screen the source reads from
type EventPoller interface {
	PollEvent() tcell.Event
}

// TerminalSource polls terminal events on its own goroutine and exposes held keys per frame
// Capture must be called from the frame loop only; the poll goroutine never touches tracker state
type TerminalSource struct {
	events  chan tcell.Event
	tracker *Tracker
	closed  bool
}

// Listen starts polling screen events
// crash is invoked if the poll goroutine panics; nil re-panics
func Listen(screen EventPoller, tracker *Tracker, crash func(r any)) *TerminalSource {
	s := &TerminalSource{
		events:  make(chan tcell.Event, 256),
		tracker: tracker,
	}

	go func() {
		defer close(s.events)
		defer func() {
			if r := recover(); r != nil {
				if crash == nil {
					panic(r)
				}
				crash(r)
			}
		}()

		for {
			ev := screen.PollEvent()
			// nil after screen.Fini
			if ev == nil {
				return
			}
			s.events <- ev
		}
	}()

	return s
}

// Capture drains pending events without blocking and returns the raw key state at now
func (s *TerminalSource) Capture(now time.Time) KeyState {
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.closed = true
				return s.tracker.State(now)
			}
			s.tracker.HandleEvent(ev, now)
		default:
			return s.tracker.State(now)
		}
	}
}

// Closed reports whether the terminal stream ended or the user interrupted
func (s *TerminalSource) Closed() bool {
	return s.closed || s.tracker.Interrupted()
}
