package library

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/silaspuma/rogen/pkg/model"
)

// Delete removes one of the owner's games. The gateway verifies ownership
// and reports a failure for records owned by someone else.
func (u *UseCase) Delete(ctx context.Context, id, ownerID string) error {
	if ownerID == "" {
		return goerr.Wrap(model.ErrAuth, "sign in to delete saved games")
	}
	if id == "" {
		return goerr.Wrap(model.ErrValidation, "game id is required",
			goerr.V("field", "id"), goerr.V("reason", "required"))
	}

	return u.gateway.DeleteRecord(ctx, id, ownerID)
}
