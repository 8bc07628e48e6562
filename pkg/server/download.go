package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/silaspuma/rogen/pkg/bundle"
	"github.com/silaspuma/rogen/pkg/model"
	"github.com/silaspuma/rogen/pkg/store"
)

type downloadHandler struct {
	logger *slog.Logger
	cache  *store.Store
}

// download serves the two-entry bundle for a game ID. The script comes
// from the session cache when the game was generated by this process;
// otherwise the bundle carries placeholder instructions and the real
// script stays in the stored bundle referenced by the game's record.
func (h *downloadHandler) download(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		id = r.URL.Query().Get("id")
	}
	if id == "" {
		writeError(w, http.StatusBadRequest, "Game ID is required", "")
		return
	}

	gameID := model.GameID(id)
	script := bundle.Placeholder(gameID)
	if game := h.cache.Get(gameID); game != nil {
		script = game.Script
	}

	data, err := bundle.Build(script, gameID)
	if err != nil {
		h.logger.Error("bundle build failed", "game_id", gameID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate download", "")
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", bundle.FileName(gameID)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Debug("failed to write bundle", "error", err)
	}
}
