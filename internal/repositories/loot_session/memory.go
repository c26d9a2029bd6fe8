package lootsession

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/KirkDiggler/rpg-loot/internal/errors"
	"github.com/KirkDiggler/rpg-loot/internal/pkg/clock"
)

type memoryRepository struct {
	mu       sync.Mutex
	clock    clock.Clock
	sessions map[string][]byte
}

// NewMemoryRepository creates a process local repository. Sessions are
// stored serialized so callers never share result pointers with the store.
func NewMemoryRepository(clk clock.Clock) Repository {
	if clk == nil {
		clk = clock.New()
	}
	return &memoryRepository{
		clock:    clk,
		sessions: make(map[string][]byte),
	}
}

var _ Repository = (*memoryRepository)(nil)

func (m *memoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	session := newSession(input, m.clock.Now(), ttl)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.put(session); err != nil {
		return nil, err
	}

	return &CreateOutput{Session: session}, nil
}

func (m *memoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	session, err := m.get(input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Session: session}, nil
}

func (m *memoryRepository) Update(_ context.Context, session *PreviewSession) error {
	if session == nil {
		return errors.InvalidArgument(errSessionNil)
	}
	if session.ID == "" {
		return errors.InvalidArgument(errIDEmpty)
	}
	if !m.clock.Now().Before(session.ExpiresAt) {
		return errors.FailedPrecondition(errSessionExpired)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.put(session)
}

func (m *memoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	deleted := 0
	if session, err := m.get(input.ID); err == nil {
		deleted = len(session.Results)
	}
	delete(m.sessions, input.ID)

	return &DeleteOutput{ResultsDeleted: deleted}, nil
}

func (m *memoryRepository) put(session *PreviewSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to marshal loot session")
	}
	m.sessions[session.ID] = raw
	return nil
}

func (m *memoryRepository) get(id string) (*PreviewSession, error) {
	raw, ok := m.sessions[id]
	if !ok {
		return nil, errors.NotFoundf("loot session %s not found", id)
	}

	var session PreviewSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal loot session")
	}

	if m.clock.Now().After(session.ExpiresAt) {
		delete(m.sessions, id)
		return nil, errors.NotFoundf("loot session %s has expired", id)
	}
	return &session, nil
}
