package model

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// Policy holds the tunable thresholds of the pipeline. The values are
// judgement calls rather than derived limits, so they are kept as named,
// overridable configuration instead of inline numbers.
type Policy struct {
	// MinDescriptionLen is the minimum trimmed description length.
	MinDescriptionLen int `yaml:"min_description_len"`
	// MaxDescriptionLen is the maximum trimmed description length.
	MaxDescriptionLen int `yaml:"max_description_len"`
	// MinScriptLen is the shortest generated script accepted as a real
	// result. Anything shorter is treated as a generation failure.
	MinScriptLen int `yaml:"min_script_len"`
	// MaxTitleLen caps derived game names.
	MaxTitleLen int `yaml:"max_title_len"`
	// TitleFallbackWords is how many leading description words form the
	// fallback name when title derivation fails.
	TitleFallbackWords int `yaml:"title_fallback_words"`
	// MinPasswordLen is enforced before any sign-up/sign-in call.
	MinPasswordLen int `yaml:"min_password_len"`

	ScriptModel string `yaml:"script_model"`
	TitleModel  string `yaml:"title_model"`
	Bucket      string `yaml:"bucket"`
}

// DefaultPolicy returns the thresholds used when no policy file is given.
func DefaultPolicy() Policy {
	return Policy{
		MinDescriptionLen:  10,
		MaxDescriptionLen:  500,
		MinScriptLen:       100,
		MaxTitleLen:        50,
		TitleFallbackWords: 3,
		MinPasswordLen:     6,
		ScriptModel:        "gemini-2.5-flash",
		TitleModel:         "gemini-2.5-flash",
		Bucket:             "generated-games",
	}
}

// LoadPolicy reads a YAML policy file over the defaults. Fields absent
// from the file keep their default values.
func LoadPolicy(path string) (Policy, error) {
	p := DefaultPolicy()

	data, err := os.ReadFile(path)
	if err != nil {
		return p, goerr.Wrap(err, "failed to read policy file", goerr.V("path", path))
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, goerr.Wrap(err, "failed to parse policy file", goerr.V("path", path))
	}

	return p, nil
}
