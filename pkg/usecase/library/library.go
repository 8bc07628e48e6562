// Package library exposes a user's persisted games: listing them for the
// dashboard and deleting on request. Ownership checks stay inside the
// gateway; this layer only passes the caller's identity through.
package library

import (
	"github.com/silaspuma/rogen/pkg/repository"
)

// UseCase provides operations over persisted game records.
type UseCase struct {
	gateway repository.Gateway
}

// New creates a new library UseCase instance
func New(gateway repository.Gateway) *UseCase {
	return &UseCase{gateway: gateway}
}
