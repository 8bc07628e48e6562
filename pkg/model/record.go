package model

import "time"

// GameRecord is the durable counterpart of a Game, owned by the
// persistence gateway. A record always belongs to a user; ownership is
// enforced at the gateway boundary for every read, write and delete.
// JSON tags match the generated_games table columns.
type GameRecord struct {
	ID          string    `json:"id,omitempty"`
	UserID      string    `json:"user_id"`
	Prompt      string    `json:"prompt"`
	GameName    string    `json:"game_name"`
	GameType    string    `json:"game_type"`
	Theme       string    `json:"theme"`
	LuaScript   string    `json:"lua_script"`
	DownloadURL string    `json:"download_url"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// Game converts a persisted record back into the artifact shape consumed
// by presentation. Views and Shared are presentation-owned and reset.
func (r *GameRecord) Game() *Game {
	return &Game{
		ID:          GameID(r.ID),
		Name:        r.GameName,
		Description: r.Prompt,
		Type:        GameType(r.GameType),
		Theme:       Theme(r.Theme),
		Script:      r.LuaScript,
		CreatedAt:   r.CreatedAt,
		DownloadURL: r.DownloadURL,
	}
}
