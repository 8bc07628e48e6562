// Package generate holds the generation orchestrator: it validates a
// request, calls the generative service for the script and title,
// packages the result and conditionally persists it for a signed-in
// owner. The persistence sub-step degrades to warnings so the user keeps
// their generated content even when bookkeeping partially fails.
package generate

import (
	"github.com/silaspuma/rogen/pkg/adapter"
	"github.com/silaspuma/rogen/pkg/model"
	"github.com/silaspuma/rogen/pkg/repository"
)

// UseCase sequences generation, packaging and persistence.
type UseCase struct {
	gemini  adapter.Gemini
	gateway repository.Gateway
	policy  model.Policy
}

// Option is a functional option for UseCase
type Option func(*UseCase)

// WithPolicy overrides the default thresholds.
func WithPolicy(p model.Policy) Option {
	return func(uc *UseCase) {
		uc.policy = p
	}
}

// New creates the orchestrator. The gateway is only touched when a
// generation carries an owner.
func New(gemini adapter.Gemini, gateway repository.Gateway, opts ...Option) *UseCase {
	uc := &UseCase{
		gemini:  gemini,
		gateway: gateway,
		policy:  model.DefaultPolicy(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Policy returns the thresholds the orchestrator runs with.
func (u *UseCase) Policy() model.Policy {
	return u.policy
}
