package lootsettings

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
	"github.com/KirkDiggler/rpg-loot/internal/errors"
	"github.com/KirkDiggler/rpg-loot/internal/pkg/clock"
)

type memoryRepository struct {
	mu     sync.RWMutex
	clock  clock.Clock
	worlds map[string][]byte
}

// NewMemoryRepository creates a process local settings repository
func NewMemoryRepository(clk clock.Clock) Repository {
	if clk == nil {
		clk = clock.New()
	}
	return &memoryRepository{
		clock:  clk,
		worlds: make(map[string][]byte),
	}
}

var _ Repository = (*memoryRepository)(nil)

func (m *memoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.WorldID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	m.mu.RLock()
	raw, ok := m.worlds[input.WorldID]
	m.mu.RUnlock()
	if !ok {
		return nil, errors.NotFoundf("loot settings for world %s not found", input.WorldID)
	}

	settings, err := decode(raw)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Settings: settings}, nil
}

func (m *memoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.WorldID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}
	if input.Settings == nil {
		return nil, errors.InvalidArgument(errSettingsNil)
	}

	stored := *input.Settings
	stored.UpdatedAt = m.clock.Now()

	raw, err := json.Marshal(&stored)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal loot settings")
	}

	m.mu.Lock()
	m.worlds[input.WorldID] = raw
	m.mu.Unlock()

	return &SaveOutput{Settings: &stored}, nil
}

func (m *memoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.WorldID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	m.mu.Lock()
	delete(m.worlds, input.WorldID)
	m.mu.Unlock()

	return &DeleteOutput{}, nil
}

func decode(raw []byte) (*loot.WorldSettings, error) {
	var settings loot.WorldSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal loot settings")
	}
	if settings.CreatureTypes == nil {
		settings.CreatureTypes = make(map[string]*loot.CreatureTypeOverride)
	}
	return &settings, nil
}
