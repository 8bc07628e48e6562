package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/silaspuma/rogen/pkg/model"
	"github.com/silaspuma/rogen/pkg/repository"
)

func TestMemoryAuth(t *testing.T) {
	ctx := context.Background()
	gw := repository.NewMemory()

	gt.Nil(t, gw.CurrentUser(ctx))

	gt.NoError(t, gw.SignUp(ctx, "dev@example.com", "hunter22"))
	gt.Error(t, gw.SignUp(ctx, "dev@example.com", "hunter22"))

	_, err := gw.SignIn(ctx, "dev@example.com", "wrong-password")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrAuth))

	user, err := gw.SignIn(ctx, "dev@example.com", "hunter22")
	gt.NoError(t, err)
	gt.V(t, user.Email).Equal("dev@example.com")
	gt.NotNil(t, gw.CurrentUser(ctx))

	gt.NoError(t, gw.SignOut(ctx))
	gt.Nil(t, gw.CurrentUser(ctx))
}

func TestMemoryRecords(t *testing.T) {
	ctx := context.Background()
	gw := repository.NewMemory()

	older, err := gw.CreateRecord(ctx, &model.GameRecord{
		UserID:    "owner-1",
		GameName:  "First Game",
		CreatedAt: time.Now().Add(-time.Hour),
	})
	gt.NoError(t, err)
	gt.True(t, older.ID != "")

	newer, err := gw.CreateRecord(ctx, &model.GameRecord{
		UserID:   "owner-1",
		GameName: "Second Game",
	})
	gt.NoError(t, err)

	_, err = gw.CreateRecord(ctx, &model.GameRecord{
		UserID:   "owner-2",
		GameName: "Someone Else's Game",
	})
	gt.NoError(t, err)

	// Newest first, scoped to the owner.
	records, err := gw.ListRecords(ctx, "owner-1")
	gt.NoError(t, err)
	gt.V(t, len(records)).Equal(2)
	gt.V(t, records[0].ID).Equal(newer.ID)
	gt.V(t, records[1].ID).Equal(older.ID)
}

func TestMemoryRecordOwnerRequired(t *testing.T) {
	ctx := context.Background()
	gw := repository.NewMemory()

	_, err := gw.CreateRecord(ctx, &model.GameRecord{GameName: "Orphan"})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrStorage))
}

func TestMemoryDeleteOwnership(t *testing.T) {
	ctx := context.Background()
	gw := repository.NewMemory()

	rec, err := gw.CreateRecord(ctx, &model.GameRecord{UserID: "owner-1", GameName: "Keep Me"})
	gt.NoError(t, err)

	// Wrong owner: reported failure, record unchanged.
	err = gw.DeleteRecord(ctx, rec.ID, "intruder")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrStorage))

	records, err := gw.ListRecords(ctx, "owner-1")
	gt.NoError(t, err)
	gt.V(t, len(records)).Equal(1)

	gt.NoError(t, gw.DeleteRecord(ctx, rec.ID, "owner-1"))

	records, err = gw.ListRecords(ctx, "owner-1")
	gt.NoError(t, err)
	gt.V(t, len(records)).Equal(0)
}

func TestMemoryUploadBundle(t *testing.T) {
	ctx := context.Background()
	gw := repository.NewMemory()

	_, err := gw.UploadBundle(ctx, "", "game.zip", []byte("zip"))
	gt.Error(t, err)

	url, err := gw.UploadBundle(ctx, "owner-1", "game.zip", []byte("zip"))
	gt.NoError(t, err)
	gt.S(t, url).Contains("users/owner-1/games/")
	gt.S(t, url).Contains("game.zip")
}
