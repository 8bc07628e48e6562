package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/silaspuma/rogen/pkg/model"
)

// Memory is an in-process Gateway used by tests and by `serve --backend
// memory` during development. It enforces the same ownership semantics
// as the remote gateway.
type Memory struct {
	mu      sync.Mutex
	users   map[string]string // email -> password
	current *model.User
	records map[string]*model.GameRecord
	bundles map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{
		users:   make(map[string]string),
		records: make(map[string]*model.GameRecord),
		bundles: make(map[string][]byte),
	}
}

func (m *Memory) CurrentUser(ctx context.Context) *model.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

func (m *Memory) SignUp(ctx context.Context, email, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[email]; ok {
		return goerr.Wrap(model.ErrAuth, "user already registered", goerr.V("email", email))
	}
	m.users[email] = password
	return nil
}

func (m *Memory) SignIn(ctx context.Context, email, password string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.users[email]
	if !ok || stored != password {
		return nil, goerr.Wrap(model.ErrAuth, "invalid credentials", goerr.V("email", email))
	}

	m.current = &model.User{ID: uuid.NewSHA1(uuid.NameSpaceOID, []byte(email)).String(), Email: email}
	return m.current, nil
}

func (m *Memory) SignOut(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
	return nil
}

func (m *Memory) UploadBundle(ctx context.Context, ownerID, name string, data []byte) (string, error) {
	if ownerID == "" {
		return "", goerr.Wrap(model.ErrStorage, "owner is required for upload")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	path := fmt.Sprintf("users/%s/games/%d_%s", ownerID, time.Now().UnixMilli(), name)
	m.bundles[path] = data
	return "memory://" + path, nil
}

func (m *Memory) CreateRecord(ctx context.Context, rec *model.GameRecord) (*model.GameRecord, error) {
	if rec.UserID == "" {
		return nil, goerr.Wrap(model.ErrStorage, "record owner is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *rec
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	stored.UpdatedAt = stored.CreatedAt

	m.records[stored.ID] = &stored
	return &stored, nil
}

func (m *Memory) ListRecords(ctx context.Context, ownerID string) ([]*model.GameRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var records []*model.GameRecord
	for _, rec := range m.records {
		if rec.UserID == ownerID {
			records = append(records, rec)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

func (m *Memory) DeleteRecord(ctx context.Context, id, ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[id]
	if !ok || rec.UserID != ownerID {
		// Ownership mismatch is a reported failure, not a silent no-op.
		return goerr.Wrap(model.ErrStorage, "record not found or not owned by caller",
			goerr.V("id", id), goerr.V("owner_id", ownerID))
	}

	delete(m.records, id)
	return nil
}
