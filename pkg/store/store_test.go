package store_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/silaspuma/rogen/pkg/model"
	"github.com/silaspuma/rogen/pkg/store"
)

func game(id string) *model.Game {
	return &model.Game{ID: model.GameID(id), Name: "Game " + id}
}

func TestAddPrepends(t *testing.T) {
	s := store.New()
	s.Add(game("a"))
	s.Add(game("b"))
	s.Add(game("c"))

	games := s.Games()
	gt.V(t, len(games)).Equal(3)
	gt.V(t, games[0].ID).Equal(model.GameID("c"))
	gt.V(t, games[2].ID).Equal(model.GameID("a"))
}

func TestRemove(t *testing.T) {
	s := store.New()
	s.Add(game("a"))
	s.Add(game("b"))
	s.SetCurrent(s.Get("b"))

	s.Remove("b")

	gt.V(t, len(s.Games())).Equal(1)
	gt.Nil(t, s.Get("b"))
	gt.Nil(t, s.Current())

	// Removing an unknown id is a no-op.
	s.Remove("nope")
	gt.V(t, len(s.Games())).Equal(1)
}

func TestErrorFlags(t *testing.T) {
	s := store.New()
	s.SetError("boom")
	gt.V(t, s.Error()).Equal("boom")
	s.ClearError()
	gt.V(t, s.Error()).Equal("")

	s.SetLoading(true)
	gt.True(t, s.Loading())
	s.SetLoading(false)
	gt.False(t, s.Loading())
}

func TestSnapshot(t *testing.T) {
	s := store.New()
	s.Add(game("a"))
	s.SetCurrent(s.Get("a"))
	s.SetLoading(true)

	snap := s.Snapshot()
	gt.V(t, len(snap.Games)).Equal(1)
	gt.V(t, snap.Current.ID).Equal(model.GameID("a"))
	gt.True(t, snap.Loading)
	gt.V(t, snap.Error).Equal("")

	// The snapshot is detached from later mutations.
	s.Remove("a")
	gt.V(t, len(snap.Games)).Equal(1)
}

func TestLastRequestWins(t *testing.T) {
	s := store.New()

	first := s.Begin()
	second := s.Begin()

	// The stale completion is dropped.
	gt.False(t, s.Finish(first, game("stale")))
	gt.V(t, len(s.Games())).Equal(0)
	gt.True(t, s.Loading())

	gt.True(t, s.Finish(second, game("fresh")))
	gt.False(t, s.Loading())
	gt.V(t, s.Current().ID).Equal(model.GameID("fresh"))
	gt.V(t, len(s.Games())).Equal(1)
}

func TestStaleFailureDropped(t *testing.T) {
	s := store.New()

	first := s.Begin()
	second := s.Begin()

	gt.False(t, s.Fail(first, "stale failure"))
	gt.V(t, s.Error()).Equal("")

	gt.True(t, s.Fail(second, "real failure"))
	gt.V(t, s.Error()).Equal("real failure")
	gt.False(t, s.Loading())
}
