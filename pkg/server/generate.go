package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/silaspuma/rogen/pkg/model"
	"github.com/silaspuma/rogen/pkg/session"
	"github.com/silaspuma/rogen/pkg/store"
	"github.com/silaspuma/rogen/pkg/usecase/generate"
	"github.com/silaspuma/rogen/pkg/utils/logging"
)

type generateHandler struct {
	logger       *slog.Logger
	orchestrator *generate.UseCase
	session      *session.Session
	cache        *store.Store
	timeout      time.Duration
}

type generateResponse struct {
	Game     gameResponse `json:"game"`
	Warnings []string     `json:"warnings,omitempty"`
}

type gameResponse struct {
	ID          model.GameID `json:"id"`
	GameName    string       `json:"gameName"`
	Description string       `json:"description"`
	GameType    model.GameType `json:"gameType"`
	Theme       model.Theme  `json:"theme"`
	LuaScript   string       `json:"luaScript"`
	DownloadURL string       `json:"downloadUrl"`
}

func (h *generateHandler) generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed. Use POST.", "")
		return
	}

	var req model.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", "Expected JSON with description, gameType and theme")
		return
	}

	// The owner is resolved here and handed to the orchestrator
	// explicitly; the gateway re-checks it on every mutation.
	var ownerID string
	if h.session != nil {
		if user := h.session.Current(); user != nil {
			ownerID = user.ID
		}
	}

	ctx, cancel := context.WithTimeout(logging.With(r.Context(), h.logger), h.timeout)
	defer cancel()

	tok := h.cache.Begin()
	result, err := h.orchestrator.Generate(ctx, &req, ownerID)
	if err != nil {
		h.cache.Fail(tok, err.Error())

		if errors.Is(err, model.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Invalid request", validationDetails(err))
			return
		}

		h.logger.Error("generation failed", "error", err)
		message, details := translateGenerationError(err)
		writeError(w, http.StatusInternalServerError, message, details)
		return
	}

	h.cache.Finish(tok, result.Game)

	writeJSON(w, http.StatusOK, generateResponse{
		Game: gameResponse{
			ID:          result.Game.ID,
			GameName:    result.Game.Name,
			Description: result.Game.Description,
			GameType:    result.Game.Type,
			Theme:       result.Game.Theme,
			LuaScript:   result.Game.Script,
			DownloadURL: result.Game.DownloadURL,
		},
		Warnings: result.Warnings,
	})
}

func validationDetails(err error) string {
	values := goerr.Values(err)
	if reason, ok := values["reason"].(string); ok {
		if field, ok := values["field"].(string); ok {
			return field + ": " + reason
		}
		return reason
	}
	return err.Error()
}

// translateGenerationError maps internal failures to user-facing
// categories instead of exposing service details.
func translateGenerationError(err error) (message, details string) {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "api key") || strings.Contains(msg, "not configured"):
		return "AI service configuration error", "The AI service is not properly configured"
	case strings.Contains(msg, "quota") || strings.Contains(msg, "rate limit"):
		return "Rate limit exceeded", "Too many requests. Please wait a moment and try again."
	case strings.Contains(msg, "network") || strings.Contains(msg, "connection"):
		return "Network error", "Failed to connect to AI service. Please try again."
	case strings.Contains(msg, "invalid"):
		return "Invalid request", "The request could not be processed"
	default:
		return "Failed to generate game", "Please try again later"
	}
}
