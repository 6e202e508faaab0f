package cropper

import (
	"sync"

	"github.com/esimov/cropper/geom"
	"github.com/esimov/cropper/imgsrc"
)

// Session owns the crop state of one image. Its methods are meant to be
// called from the single UI loop; only Done may be used from other goroutines.
type Session struct {
	src    imgsrc.Source
	state  State
	subs   map[int]func(old, new State)
	nextID int

	done     chan struct{}
	doneOnce sync.Once
	onDone   func(accepted bool)
}

// SessionOption configures a new session.
type SessionOption func(*Session)

// WithMinRegionSize sets the shorter side of the smallest allowed region.
func WithMinRegionSize(size float32) SessionOption {
	return func(s *Session) {
		if size > 0 {
			s.state.MinSize = size
		}
	}
}

// OnDone registers a callback invoked exactly once when the session is
// accepted or rejected.
func OnDone(fn func(accepted bool)) SessionOption {
	return func(s *Session) {
		s.onDone = fn
	}
}

// NewSession starts a crop session over the given image source.
func NewSession(src imgsrc.Source, opts ...SessionOption) *Session {
	size := src.Size()
	s := &Session{
		src:   src,
		state: NewState(geom.Sz(float32(size.X), float32(size.Y))),
		subs:  make(map[int]func(old, new State)),
		done:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Source returns the image source of the session.
func (s *Session) Source() imgsrc.Source {
	return s.src
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Dispatch applies the event and notifies the subscribers when the state changed.
// It reports whether the state changed.
func (s *Session) Dispatch(ev Event) bool {
	old := s.state
	next := Reduce(old, ev)
	if next.Equal(old) {
		return false
	}
	s.state = next
	for _, fn := range s.subs {
		fn(old, next)
	}
	if next.Finished() {
		s.finish(next.Accepted == Accepted)
	}
	return true
}

// Subscribe registers fn to be called after every state change.
// The returned function removes the subscription.
func (s *Session) Subscribe(fn func(old, new State)) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		delete(s.subs, id)
	}
}

// Done returns a channel closed once the session is finished.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) finish(accepted bool) {
	s.doneOnce.Do(func() {
		if s.onDone != nil {
			s.onDone(accepted)
		}
		close(s.done)
	})
}
