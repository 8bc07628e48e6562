// Package session owns the process-wide identity state. Components that
// need to know who is signed in hold a reference to a Session instead of
// reading a global, and release their subscription when they are done.
package session

import (
	"context"
	"sync"

	"github.com/silaspuma/rogen/pkg/model"
	"github.com/silaspuma/rogen/pkg/repository"
)

// Session tracks the current user. It resolves the identity once at
// construction and is then kept current by the auth flows calling Set.
type Session struct {
	mu        sync.Mutex
	current   *model.User
	resolving bool
	resolved  chan struct{}
	nextID    int
	subs      map[int]func(*model.User)
}

// New creates a Session and starts resolving the current user from the
// gateway. Until the lookup finishes the session reports Resolving and
// treats the user as anonymous; subscribers are notified on completion.
func New(ctx context.Context, gateway repository.Gateway) *Session {
	s := &Session{
		subs:      make(map[int]func(*model.User)),
		resolving: true,
		resolved:  make(chan struct{}),
	}

	go func() {
		user := gateway.CurrentUser(ctx)

		s.mu.Lock()
		s.current = user
		s.resolving = false
		subs := make([]func(*model.User), 0, len(s.subs))
		for _, fn := range s.subs {
			subs = append(subs, fn)
		}
		s.mu.Unlock()

		close(s.resolved)
		for _, fn := range subs {
			fn(user)
		}
	}()

	return s
}

// Resolved is closed once the initial identity lookup has finished.
func (s *Session) Resolved() <-chan struct{} {
	return s.resolved
}

// Current returns the signed-in user, or nil for anonymous.
func (s *Session) Current() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Resolving reports whether the initial identity lookup is still running.
func (s *Session) Resolving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolving
}

// Set updates the current user and notifies subscribers. Called by the
// sign-in/out flows.
func (s *Session) Set(user *model.User) {
	s.mu.Lock()
	s.current = user
	subs := make([]func(*model.User), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	// Callbacks run outside the lock so a subscriber may read the session.
	for _, fn := range subs {
		fn(user)
	}
}

// Subscribe registers a callback for identity changes and returns the
// release handle. The handle is idempotent.
func (s *Session) Subscribe(fn func(*model.User)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}
