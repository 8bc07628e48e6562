package library

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/silaspuma/rogen/pkg/model"
)

// List returns the owner's games, newest first, in the artifact shape
// consumed by presentation.
func (u *UseCase) List(ctx context.Context, ownerID string) ([]*model.Game, error) {
	if ownerID == "" {
		return nil, goerr.Wrap(model.ErrAuth, "sign in to list saved games")
	}

	records, err := u.gateway.ListRecords(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	games := make([]*model.Game, 0, len(records))
	for _, rec := range records {
		games = append(games, rec.Game())
	}

	return games, nil
}
