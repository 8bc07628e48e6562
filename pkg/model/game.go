package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

type GameID string

// NewGameID generates a new unique GameID. The ID is assigned by the
// generator and is independent of any persistence identifier.
func NewGameID() GameID {
	return GameID(uuid.New().String())
}

type GameType string

const (
	GameTypeAdventure  GameType = "adventure"
	GameTypePuzzle     GameType = "puzzle"
	GameTypeRacing     GameType = "racing"
	GameTypeSurvival   GameType = "survival"
	GameTypeShooter    GameType = "shooter"
	GameTypeTycoon     GameType = "tycoon"
	GameTypePlatformer GameType = "platformer"
	GameTypeRPG        GameType = "rpg"
)

// Validate checks if the game type is a member of the fixed set. Unknown
// values are rejected, never coerced.
func (t GameType) Validate() error {
	switch t {
	case GameTypeAdventure, GameTypePuzzle, GameTypeRacing, GameTypeSurvival,
		GameTypeShooter, GameTypeTycoon, GameTypePlatformer, GameTypeRPG:
		return nil
	default:
		return goerr.Wrap(ErrValidation, "unknown game type",
			goerr.V("field", "gameType"), goerr.V("reason", "unknown value"), goerr.V("value", t))
	}
}

type Theme string

const (
	ThemeFantasy   Theme = "fantasy"
	ThemeSciFi     Theme = "sci-fi"
	ThemeModern    Theme = "modern"
	ThemeMedieval  Theme = "medieval"
	ThemeCyberpunk Theme = "cyberpunk"
	ThemeRetro     Theme = "retro"
)

// Validate checks if the theme is a member of the fixed set.
func (t Theme) Validate() error {
	switch t {
	case ThemeFantasy, ThemeSciFi, ThemeModern, ThemeMedieval, ThemeCyberpunk, ThemeRetro:
		return nil
	default:
		return goerr.Wrap(ErrValidation, "unknown theme",
			goerr.V("field", "theme"), goerr.V("reason", "unknown value"), goerr.V("value", t))
	}
}

// Game is a generated artifact: the script plus its derived metadata.
// Created once by the orchestrator; only Views and Shared may change
// afterwards, and only on the presentation side.
type Game struct {
	ID          GameID    `json:"id"`
	Name        string    `json:"gameName"`
	Description string    `json:"description"`
	Type        GameType  `json:"gameType"`
	Theme       Theme     `json:"theme"`
	Script      string    `json:"luaScript"`
	CreatedAt   time.Time `json:"createdAt"`
	DownloadURL string    `json:"downloadUrl"`
	Views       int       `json:"views"`
	Shared      bool      `json:"shared"`
}

// User is an authenticated identity from the identity service.
type User struct {
	ID    string
	Email string
}
