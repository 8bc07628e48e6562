package repository

import (
	"context"

	"github.com/silaspuma/rogen/pkg/model"
)

// Gateway is the contract with the persistence service: identity,
// durable bundle storage and the structured game records. Every mutating
// operation takes the owner explicitly; the gateway is the enforcement
// point for the "record owner equals caller" rule, regardless of what
// the caller believes its ambient session to be.
type Gateway interface {
	// CurrentUser returns the authenticated user, or nil for anonymous.
	// It never fails; an unreachable identity service reads as anonymous.
	CurrentUser(ctx context.Context) *model.User

	// SignUp registers a new user.
	SignUp(ctx context.Context, email, password string) error

	// SignIn authenticates and returns the signed-in user.
	SignIn(ctx context.Context, email, password string) (*model.User, error)

	// SignOut ends the current session.
	SignOut(ctx context.Context) error

	// UploadBundle stores a bundle under the owner's prefix and returns
	// its publicly readable URL.
	UploadBundle(ctx context.Context, ownerID, name string, data []byte) (string, error)

	// CreateRecord writes a game record. The record's UserID is required.
	CreateRecord(ctx context.Context, rec *model.GameRecord) (*model.GameRecord, error)

	// ListRecords returns the owner's records, newest first.
	ListRecords(ctx context.Context, ownerID string) ([]*model.GameRecord, error)

	// DeleteRecord removes a record owned by ownerID. Deleting a record
	// owned by someone else fails and leaves the record unchanged.
	DeleteRecord(ctx context.Context, id, ownerID string) error
}
