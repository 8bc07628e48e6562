package model_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/silaspuma/rogen/pkg/model"
)

func TestValidateRequest(t *testing.T) {
	policy := model.DefaultPolicy()

	t.Run("valid request", func(t *testing.T) {
		req := &model.GenerateRequest{
			Description: "A dungeon crawler where players fight monsters and collect loot",
			Type:        model.GameTypeAdventure,
			Theme:       model.ThemeFantasy,
		}
		gt.NoError(t, req.Validate(policy))
	})

	t.Run("too short description", func(t *testing.T) {
		req := &model.GenerateRequest{
			Description: "short",
			Type:        model.GameTypeAdventure,
			Theme:       model.ThemeFantasy,
		}
		err := req.Validate(policy)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrValidation))
		gt.V(t, goerr.Values(err)["reason"]).Equal("too short")
	})

	t.Run("whitespace does not pad length", func(t *testing.T) {
		req := &model.GenerateRequest{
			Description: "   short   \n\t   ",
			Type:        model.GameTypeAdventure,
			Theme:       model.ThemeFantasy,
		}
		err := req.Validate(policy)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrValidation))
	})

	t.Run("empty description", func(t *testing.T) {
		req := &model.GenerateRequest{
			Type:  model.GameTypePuzzle,
			Theme: model.ThemeRetro,
		}
		err := req.Validate(policy)
		gt.Error(t, err)
		gt.V(t, goerr.Values(err)["reason"]).Equal("required")
	})

	t.Run("too long description", func(t *testing.T) {
		req := &model.GenerateRequest{
			Description: strings.Repeat("a", policy.MaxDescriptionLen+1),
			Type:        model.GameTypeAdventure,
			Theme:       model.ThemeFantasy,
		}
		err := req.Validate(policy)
		gt.Error(t, err)
		gt.V(t, goerr.Values(err)["reason"]).Equal("too long")
	})

	t.Run("multibyte description below minimum characters", func(t *testing.T) {
		// 6 characters, 18 bytes: the character count is what matters.
		req := &model.GenerateRequest{
			Description: "ゲームを作る",
			Type:        model.GameTypeAdventure,
			Theme:       model.ThemeFantasy,
		}
		err := req.Validate(policy)
		gt.Error(t, err)
		gt.V(t, goerr.Values(err)["reason"]).Equal("too short")
	})

	t.Run("multibyte description within maximum characters", func(t *testing.T) {
		// 400 characters, 1200 bytes: must be accepted.
		req := &model.GenerateRequest{
			Description: strings.Repeat("あ", 400),
			Type:        model.GameTypeAdventure,
			Theme:       model.ThemeFantasy,
		}
		gt.NoError(t, req.Validate(policy))
	})

	t.Run("non-printable description", func(t *testing.T) {
		req := &model.GenerateRequest{
			Description: "a game with \x00 control characters in it",
			Type:        model.GameTypeAdventure,
			Theme:       model.ThemeFantasy,
		}
		err := req.Validate(policy)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrValidation))
	})

	t.Run("unknown game type is rejected", func(t *testing.T) {
		req := &model.GenerateRequest{
			Description: "A dungeon crawler where players fight monsters",
			Type:        model.GameType("roguelike"),
			Theme:       model.ThemeFantasy,
		}
		err := req.Validate(policy)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrValidation))
		gt.V(t, goerr.Values(err)["field"]).Equal("gameType")
	})

	t.Run("unknown theme is rejected", func(t *testing.T) {
		req := &model.GenerateRequest{
			Description: "A dungeon crawler where players fight monsters",
			Type:        model.GameTypeAdventure,
			Theme:       model.Theme("steampunk"),
		}
		err := req.Validate(policy)
		gt.Error(t, err)
		gt.V(t, goerr.Values(err)["field"]).Equal("theme")
	})
}

func TestGameID(t *testing.T) {
	a := model.NewGameID()
	b := model.NewGameID()
	gt.NotEqual(t, a, b)
	gt.True(t, string(a) != "")
}

func TestRecordToGame(t *testing.T) {
	rec := &model.GameRecord{
		ID:          "rec-1",
		UserID:      "user-1",
		Prompt:      "A racing game on the moon with low gravity",
		GameName:    "Moon Racer",
		GameType:    "racing",
		Theme:       "sci-fi",
		LuaScript:   "-- script",
		DownloadURL: "https://example.com/bundle.zip",
	}

	game := rec.Game()
	gt.V(t, game.ID).Equal(model.GameID("rec-1"))
	gt.V(t, game.Name).Equal("Moon Racer")
	gt.V(t, game.Type).Equal(model.GameTypeRacing)
	gt.V(t, game.Theme).Equal(model.ThemeSciFi)
	gt.V(t, game.Views).Equal(0)
	gt.False(t, game.Shared)
}
