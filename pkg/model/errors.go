package model

import "github.com/m-mizutani/goerr/v2"

// Error taxonomy of the generation pipeline. Each category propagates
// differently: validation and auth errors reach the user verbatim,
// generation failures are translated to a user-facing category, and a
// storage failure during bookkeeping is downgraded to a warning on an
// otherwise successful result.
var (
	ErrValidation = goerr.New("invalid request")
	ErrGeneration = goerr.New("generation service failure")
	ErrPackaging  = goerr.New("bundle packaging failure")
	ErrStorage    = goerr.New("storage failure")
	ErrAuth       = goerr.New("authentication failure")
)
