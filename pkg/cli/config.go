package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/silaspuma/rogen/pkg/adapter"
	"github.com/silaspuma/rogen/pkg/model"
	"github.com/silaspuma/rogen/pkg/repository"
	"github.com/silaspuma/rogen/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// config holds configuration values
type config struct {
	// Adapters
	geminiAPIKey string

	// Gateway
	backend     string
	supabaseURL string
	supabaseKey string

	// Pipeline thresholds
	policyPath string

	logLevel string
}

// globalFlags returns common flags used across commands with destination config
func globalFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Sources:     cli.EnvVars("ROGEN_LOG_LEVEL"),
			Destination: &cfg.logLevel,
		},
		&cli.StringFlag{
			Name:        "policy",
			Usage:       "Path to a YAML file overriding pipeline thresholds",
			Sources:     cli.EnvVars("ROGEN_POLICY"),
			Destination: &cfg.policyPath,
		},
	}
}

// llmFlags returns flags for the generative service
func llmFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gemini-api-key",
			Usage:       "Gemini API key",
			Sources:     cli.EnvVars("GEMINI_API_KEY"),
			Destination: &cfg.geminiAPIKey,
		},
	}
}

// gatewayFlags returns flags for the persistence gateway
func gatewayFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "backend",
			Usage:       "Persistence backend (supabase, memory)",
			Value:       "supabase",
			Sources:     cli.EnvVars("ROGEN_BACKEND"),
			Destination: &cfg.backend,
		},
		&cli.StringFlag{
			Name:        "supabase-url",
			Usage:       "Supabase project URL",
			Sources:     cli.EnvVars("SUPABASE_URL"),
			Destination: &cfg.supabaseURL,
		},
		&cli.StringFlag{
			Name:        "supabase-key",
			Usage:       "Supabase anon key",
			Sources:     cli.EnvVars("SUPABASE_KEY"),
			Destination: &cfg.supabaseKey,
		},
	}
}

// setup applies the logging configuration and loads the policy.
func (cfg *config) setup() (model.Policy, error) {
	logging.Configure(cfg.logLevel)

	if cfg.policyPath == "" {
		return model.DefaultPolicy(), nil
	}
	return model.LoadPolicy(cfg.policyPath)
}

// newGemini creates a new Gemini adapter instance
func (cfg *config) newGemini(ctx context.Context) (adapter.Gemini, error) {
	if cfg.geminiAPIKey == "" {
		return nil, goerr.New("gemini-api-key is required")
	}

	gemini, err := adapter.NewGemini(ctx, cfg.geminiAPIKey)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create gemini adapter")
	}
	return gemini, nil
}

// newGateway creates the persistence gateway for the selected backend
func (cfg *config) newGateway(policy model.Policy) (repository.Gateway, error) {
	switch cfg.backend {
	case "memory":
		return repository.NewMemory(), nil
	case "supabase":
		if cfg.supabaseURL == "" {
			return nil, goerr.New("supabase-url is required")
		}
		if cfg.supabaseKey == "" {
			return nil, goerr.New("supabase-key is required")
		}
		return repository.NewSupabase(cfg.supabaseURL, cfg.supabaseKey, policy.Bucket)
	default:
		return nil, goerr.New("unknown backend", goerr.V("backend", cfg.backend))
	}
}
