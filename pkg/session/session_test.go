package session_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/silaspuma/rogen/pkg/model"
	"github.com/silaspuma/rogen/pkg/repository"
	"github.com/silaspuma/rogen/pkg/session"
)

// slowGateway holds the identity lookup until released so the resolving
// phase can be observed.
type slowGateway struct {
	repository.Gateway
	release chan struct{}
}

func (g *slowGateway) CurrentUser(ctx context.Context) *model.User {
	<-g.release
	return g.Gateway.CurrentUser(ctx)
}

func TestResolveOnCreate(t *testing.T) {
	ctx := context.Background()
	gw := repository.NewMemory()

	anon := session.New(ctx, gw)
	<-anon.Resolved()
	gt.Nil(t, anon.Current())
	gt.False(t, anon.Resolving())

	gt.NoError(t, gw.SignUp(ctx, "dev@example.com", "hunter22"))
	_, err := gw.SignIn(ctx, "dev@example.com", "hunter22")
	gt.NoError(t, err)

	signed := session.New(ctx, gw)
	<-signed.Resolved()
	gt.NotNil(t, signed.Current())
	gt.V(t, signed.Current().Email).Equal("dev@example.com")
}

func TestResolvingObservable(t *testing.T) {
	ctx := context.Background()
	gw := &slowGateway{Gateway: repository.NewMemory(), release: make(chan struct{})}

	sess := session.New(ctx, gw)

	// While the lookup is pending the session is anonymous and resolving.
	gt.True(t, sess.Resolving())
	gt.Nil(t, sess.Current())

	notified := make(chan *model.User, 1)
	sess.Subscribe(func(u *model.User) {
		notified <- u
	})

	close(gw.release)
	<-sess.Resolved()
	gt.False(t, sess.Resolving())
	gt.Nil(t, <-notified)
}

func TestSubscribe(t *testing.T) {
	ctx := context.Background()
	sess := session.New(ctx, repository.NewMemory())
	<-sess.Resolved()

	var seen []*model.User
	unsubscribe := sess.Subscribe(func(u *model.User) {
		seen = append(seen, u)
	})

	user := &model.User{ID: "u-1", Email: "dev@example.com"}
	sess.Set(user)
	gt.V(t, len(seen)).Equal(1)
	gt.V(t, sess.Current()).Equal(user)

	sess.Set(nil)
	gt.V(t, len(seen)).Equal(2)
	gt.Nil(t, seen[1])

	// After release the callback stops firing; release is idempotent.
	unsubscribe()
	unsubscribe()
	sess.Set(user)
	gt.V(t, len(seen)).Equal(2)
}
