// Package store holds the process-local cache of generated games for the
// current session: the list shown to presentation, the currently selected
// game, and the transient loading/error flags.
package store

import (
	"sync"

	"github.com/silaspuma/rogen/pkg/model"
)

// Token identifies one in-flight generation. Only the completion carrying
// the latest issued token is applied, so two racing generations resolve
// to an explicit "last request wins" instead of an accidental one.
type Token uint64

// Store is a single-writer reducer over the session state.
type Store struct {
	mu      sync.Mutex
	games   []*model.Game
	current *model.Game
	loading bool
	err     string
	issued  Token
}

func New() *Store {
	return &Store{}
}

// Begin marks a generation as in flight and returns its token.
func (s *Store) Begin() Token {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issued++
	s.loading = true
	s.err = ""
	return s.issued
}

// Finish applies a successful generation. Stale tokens are dropped.
func (s *Store) Finish(tok Token, game *model.Game) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tok != s.issued {
		return false
	}

	s.games = append([]*model.Game{game}, s.games...)
	s.current = game
	s.loading = false
	return true
}

// Fail records a failed generation. Stale tokens are dropped.
func (s *Store) Fail(tok Token, msg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tok != s.issued {
		return false
	}

	s.err = msg
	s.loading = false
	return true
}

// Add prepends a game, most recent first.
func (s *Store) Add(game *model.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games = append([]*model.Game{game}, s.games...)
}

// SetCurrent selects a game (nil clears the selection).
func (s *Store) SetCurrent(game *model.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = game
}

// Remove drops the game with the given ID, clearing the selection if it
// was selected.
func (s *Store) Remove(id model.GameID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.games[:0]
	for _, g := range s.games {
		if g.ID != id {
			filtered = append(filtered, g)
		}
	}
	s.games = filtered

	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
}

func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

func (s *Store) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = msg
}

func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

// Games returns the cached games, most recent first.
func (s *Store) Games() []*model.Game {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.Game, len(s.games))
	copy(out, s.games)
	return out
}

// Get returns the cached game with the given ID, or nil.
func (s *Store) Get(id model.GameID) *model.Game {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range s.games {
		if g.ID == id {
			return g
		}
	}
	return nil
}

func (s *Store) Current() *model.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Store) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Snapshot is a point-in-time copy of the session state.
type Snapshot struct {
	Games   []*model.Game
	Current *model.Game
	Loading bool
	Error   string
}

// Snapshot returns a consistent view of the whole state under one lock
// acquisition.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	games := make([]*model.Game, len(s.games))
	copy(games, s.games)

	return Snapshot{
		Games:   games,
		Current: s.current,
		Loading: s.loading,
		Error:   s.err,
	}
}
