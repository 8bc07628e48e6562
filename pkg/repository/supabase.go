package repository

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/silaspuma/rogen/pkg/model"
	"github.com/silaspuma/rogen/pkg/utils/logging"
	"github.com/supabase-community/gotrue-go/types"
	postgrest "github.com/supabase-community/postgrest-go"
	storage_go "github.com/supabase-community/storage-go"
	supa "github.com/supabase-community/supabase-go"
)

const gamesTable = "generated_games"

// supabaseGateway implements Gateway on top of Supabase: GoTrue for
// identity, the generated_games table for records, and a public storage
// bucket for bundles. Row-level security on the table is the second line
// of defense behind the explicit owner checks here.
type supabaseGateway struct {
	client *supa.Client
	bucket string
}

// NewSupabase creates a gateway against a Supabase project.
func NewSupabase(url, key, bucket string) (Gateway, error) {
	client, err := supa.NewClient(url, key, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create supabase client")
	}

	return &supabaseGateway{client: client, bucket: bucket}, nil
}

func (s *supabaseGateway) CurrentUser(ctx context.Context) *model.User {
	resp, err := s.client.Auth.GetUser()
	if err != nil {
		// Anonymous by contract; the reason still goes to the log.
		logging.From(ctx).Debug("identity lookup failed, treating as anonymous", "error", err)
		return nil
	}

	return &model.User{
		ID:    resp.User.ID.String(),
		Email: resp.User.Email,
	}
}

func (s *supabaseGateway) SignUp(ctx context.Context, email, password string) error {
	if _, err := s.client.Auth.Signup(types.SignupRequest{
		Email:    email,
		Password: password,
	}); err != nil {
		return goerr.Wrap(model.ErrAuth, "sign up failed", goerr.V("email", email), goerr.V("cause", err.Error()))
	}
	return nil
}

func (s *supabaseGateway) SignIn(ctx context.Context, email, password string) (*model.User, error) {
	session, err := s.client.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, goerr.Wrap(model.ErrAuth, "sign in failed", goerr.V("email", email), goerr.V("cause", err.Error()))
	}

	// Subsequent storage and table calls act as this user.
	s.client.UpdateAuthSession(session)

	return &model.User{
		ID:    session.User.ID.String(),
		Email: session.User.Email,
	}, nil
}

func (s *supabaseGateway) SignOut(ctx context.Context) error {
	if err := s.client.Auth.Logout(); err != nil {
		return goerr.Wrap(model.ErrAuth, "sign out failed", goerr.V("cause", err.Error()))
	}
	return nil
}

func (s *supabaseGateway) UploadBundle(ctx context.Context, ownerID, name string, data []byte) (string, error) {
	if ownerID == "" {
		return "", goerr.Wrap(model.ErrStorage, "owner is required for upload")
	}

	// Bucket policy only allows writes under the uploader's own prefix.
	path := fmt.Sprintf("users/%s/games/%d_%s", ownerID, time.Now().UnixMilli(), name)

	contentType := "application/zip"
	if _, err := s.client.Storage.UploadFile(s.bucket, path, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
	}); err != nil {
		return "", goerr.Wrap(model.ErrStorage, "failed to upload bundle",
			goerr.V("path", path), goerr.V("cause", err.Error()))
	}

	return s.client.Storage.GetPublicUrl(s.bucket, path).SignedURL, nil
}

func (s *supabaseGateway) CreateRecord(ctx context.Context, rec *model.GameRecord) (*model.GameRecord, error) {
	if rec.UserID == "" {
		return nil, goerr.Wrap(model.ErrStorage, "record owner is required")
	}

	var inserted []model.GameRecord
	if _, err := s.client.From(gamesTable).
		Insert(rec, false, "", "representation", "exact").
		ExecuteTo(&inserted); err != nil {
		return nil, goerr.Wrap(model.ErrStorage, "failed to create game record", goerr.V("cause", err.Error()))
	}
	if len(inserted) == 0 {
		return nil, goerr.Wrap(model.ErrStorage, "game record was not created")
	}

	return &inserted[0], nil
}

func (s *supabaseGateway) ListRecords(ctx context.Context, ownerID string) ([]*model.GameRecord, error) {
	var rows []model.GameRecord
	if _, err := s.client.From(gamesTable).
		Select("*", "exact", false).
		Eq("user_id", ownerID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&rows); err != nil {
		return nil, goerr.Wrap(model.ErrStorage, "failed to list game records", goerr.V("cause", err.Error()))
	}

	records := make([]*model.GameRecord, len(rows))
	for i := range rows {
		records[i] = &rows[i]
	}
	return records, nil
}

func (s *supabaseGateway) DeleteRecord(ctx context.Context, id, ownerID string) error {
	var deleted []model.GameRecord
	if _, err := s.client.From(gamesTable).
		Delete("representation", "exact").
		Eq("id", id).
		Eq("user_id", ownerID).
		ExecuteTo(&deleted); err != nil {
		return goerr.Wrap(model.ErrStorage, "failed to delete game record",
			goerr.V("id", id), goerr.V("cause", err.Error()))
	}
	if len(deleted) == 0 {
		return goerr.Wrap(model.ErrStorage, "record not found or not owned by caller",
			goerr.V("id", id), goerr.V("owner_id", ownerID))
	}

	return nil
}
