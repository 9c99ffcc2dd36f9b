package modes

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-term/input"
)

// handleEvent resolves a tcell event in ctx
// Returns false for events that produce no intent; mute and resize are handled here
func (s *Session) handleEvent(ctx input.Context, ev tcell.Event) (input.Intent, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		intent := s.mapper.MapEvent(ctx, ev)
		switch intent.Type {
		case input.IntentNone:
			return intent, false
		case input.IntentToggleMute:
			muted := s.cues.ToggleMute()
			s.log.WithField("muted", muted).Debug("sound toggled")
			return intent, false
		}
		return intent, true
	case *tcell.EventResize:
		s.screen.Sync()
		if s.redraw != nil {
			s.redraw()
		}
	}
	return input.Intent{}, false
}

// nextIntent blocks until an event resolves to an intent
// Returns false once the event stream is closed
func (s *Session) nextIntent(ctx input.Context) (input.Intent, bool) {
	for ev := range s.events {
		if intent, ok := s.handleEvent(ctx, ev); ok {
			return intent, true
		}
	}
	return input.Intent{Type: input.IntentQuit}, false
}

// waitIntent is nextIntent bounded by d; a timeout returns IntentNone
func (s *Session) waitIntent(ctx input.Context, d time.Duration) (input.Intent, bool) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	for {
		select {
		case ev, open := <-s.events:
			if !open {
				return input.Intent{Type: input.IntentQuit}, false
			}
			if intent, ok := s.handleEvent(ctx, ev); ok {
				return intent, true
			}
		case <-timer.C:
			return input.Intent{Type: input.IntentNone}, true
		}
	}
}
