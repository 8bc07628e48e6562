package model

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
)

// GenerateRequest is the transient input of a generation. It is never
// persisted; the description is echoed into the resulting Game.
type GenerateRequest struct {
	Description string   `json:"description"`
	Type        GameType `json:"gameType"`
	Theme       Theme    `json:"theme"`
}

// Validate checks the request against the policy thresholds. It must be
// called before any external call so that a bad request has no side
// effects.
func (r *GenerateRequest) Validate(p Policy) error {
	desc := strings.TrimSpace(r.Description)
	if desc == "" {
		return goerr.Wrap(ErrValidation, "description is required",
			goerr.V("field", "description"), goerr.V("reason", "required"))
	}
	// Length bounds count characters, not bytes.
	length := utf8.RuneCountInString(desc)
	if length < p.MinDescriptionLen {
		return goerr.Wrap(ErrValidation, "description too short",
			goerr.V("field", "description"), goerr.V("reason", "too short"),
			goerr.V("min", p.MinDescriptionLen))
	}
	if length > p.MaxDescriptionLen {
		return goerr.Wrap(ErrValidation, "description too long",
			goerr.V("field", "description"), goerr.V("reason", "too long"),
			goerr.V("max", p.MaxDescriptionLen))
	}
	for _, c := range desc {
		if !unicode.IsPrint(c) && !unicode.IsSpace(c) {
			return goerr.Wrap(ErrValidation, "description contains non-printable characters",
				goerr.V("field", "description"), goerr.V("reason", "non-printable"))
		}
	}

	if err := r.Type.Validate(); err != nil {
		return err
	}
	if err := r.Theme.Validate(); err != nil {
		return err
	}

	return nil
}
