package generate

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/silaspuma/rogen/pkg/adapter"
	"github.com/silaspuma/rogen/pkg/bundle"
	"github.com/silaspuma/rogen/pkg/model"
	"github.com/silaspuma/rogen/pkg/utils/logging"
	"google.golang.org/genai"
)

// Result is a successful generation plus any non-fatal warnings from the
// persistence sub-step.
type Result struct {
	Game     *model.Game
	Warnings []string
}

// codeFence matches markdown fence delimiters with an optional language
// tag, e.g. ``` or ```lua.
var codeFence = regexp.MustCompile("```[a-zA-Z0-9]*\n?")

// Generate runs the pipeline: validate, generate script, derive title,
// assign an ID, then persist when an owner is present. Two calls with the
// same input produce two distinct games.
func (u *UseCase) Generate(ctx context.Context, req *model.GenerateRequest, ownerID string) (*Result, error) {
	logger := logging.From(ctx)

	// Validation happens before any external call, so a rejected request
	// has no side effects anywhere.
	if err := req.Validate(u.policy); err != nil {
		return nil, err
	}

	script, err := u.generateScript(ctx, req)
	if err != nil {
		return nil, err
	}

	// Title derivation must never fail the operation.
	title := u.deriveTitle(ctx, req.Description)

	game := &model.Game{
		ID:          model.NewGameID(),
		Name:        title,
		Description: req.Description,
		Type:        req.Type,
		Theme:       req.Theme,
		Script:      script,
		CreatedAt:   time.Now(),
	}
	game.DownloadURL = "/api/v1/download/" + string(game.ID)

	result := &Result{Game: game}
	if ownerID != "" {
		u.persist(ctx, result, ownerID)
	}

	logger.Info("generated game",
		"game_id", game.ID, "name", game.Name, "type", game.Type,
		"owner", ownerID != "", "warnings", len(result.Warnings))

	return result, nil
}

func (u *UseCase) generateScript(ctx context.Context, req *model.GenerateRequest) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:     ptrFloat32(0.7),
		TopK:            ptrFloat32(40),
		TopP:            ptrFloat32(0.95),
		MaxOutputTokens: 4096,
	}

	resp, err := u.gemini.GenerateContent(ctx, u.policy.ScriptModel, genai.Text(scriptPrompt(req)), cfg)
	if err != nil {
		return "", goerr.Wrap(model.ErrGeneration, "script generation failed", goerr.V("cause", err.Error()))
	}

	script := strings.TrimSpace(codeFence.ReplaceAllString(adapter.ResponseText(resp), ""))
	if len(script) < u.policy.MinScriptLen {
		// Degenerate output counts as a service failure, not a success.
		return "", goerr.Wrap(model.ErrGeneration, "generated script is too short or empty",
			goerr.V("length", len(script)), goerr.V("min", u.policy.MinScriptLen))
	}

	return script, nil
}

// deriveTitle asks the generator for a name and falls back to the leading
// words of the description when the call fails or returns nothing.
func (u *UseCase) deriveTitle(ctx context.Context, description string) string {
	cfg := &genai.GenerateContentConfig{
		Temperature:     ptrFloat32(0.8),
		MaxOutputTokens: 20,
	}

	resp, err := u.gemini.GenerateContent(ctx, u.policy.TitleModel, genai.Text(titlePrompt(description)), cfg)
	if err != nil {
		logging.From(ctx).Warn("title derivation failed, using fallback", "error", err)
		return u.fallbackTitle(description)
	}

	title := strings.Trim(strings.TrimSpace(adapter.ResponseText(resp)), `"'`)
	if title == "" {
		return u.fallbackTitle(description)
	}

	return truncate(title, u.policy.MaxTitleLen)
}

func (u *UseCase) fallbackTitle(description string) string {
	words := strings.Fields(strings.TrimSpace(description))
	if len(words) > u.policy.TitleFallbackWords {
		words = words[:u.policy.TitleFallbackWords]
	}

	title := truncate(strings.Join(words, " "), u.policy.MaxTitleLen)
	if title == "" {
		title = "Untitled Game"
	}
	return title
}

// persist packages, uploads and records the game. Any failure here is
// attached to the result as a warning: the artifact already exists and
// the caller keeps it.
func (u *UseCase) persist(ctx context.Context, result *Result, ownerID string) {
	logger := logging.From(ctx)
	game := result.Game

	data, err := bundle.Build(game.Script, game.ID)
	if err != nil {
		logger.Warn("bundle packaging failed", "game_id", game.ID, "error", err)
		result.Warnings = append(result.Warnings, "could not package the game bundle; the script is only available locally")
		return
	}

	url, err := u.gateway.UploadBundle(ctx, ownerID, bundle.FileName(game.ID), data)
	if err != nil {
		logger.Warn("bundle upload failed", "game_id", game.ID, "error", err)
		result.Warnings = append(result.Warnings, "could not upload the game bundle; the script is only available locally")
		return
	}
	game.DownloadURL = url

	if _, err := u.gateway.CreateRecord(ctx, &model.GameRecord{
		UserID:      ownerID,
		Prompt:      game.Description,
		GameName:    game.Name,
		GameType:    string(game.Type),
		Theme:       string(game.Theme),
		LuaScript:   game.Script,
		DownloadURL: game.DownloadURL,
	}); err != nil {
		// The bundle is already stored and reachable through DownloadURL,
		// so a failed metadata write is bookkeeping, not a failure.
		logger.Warn("record write failed after upload", "game_id", game.ID, "error", err)
		result.Warnings = append(result.Warnings, "the game was generated and uploaded but could not be saved to your library")
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func ptrFloat32(v float32) *float32 {
	return &v
}
