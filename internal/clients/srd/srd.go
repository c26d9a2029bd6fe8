// Package srd mounts the 5e SRD equipment list from dnd5eapi.co as a
// read-only loot pack.
package srd

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/rpg-loot/internal/clients/host"
	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
	"github.com/KirkDiggler/rpg-loot/internal/errors"
)

const (
	// DefaultPackID is the pack id the SRD equipment is served under
	DefaultPackID = "srd.equipment"
	// DefaultBaseURL is the public dnd5eapi endpoint
	DefaultBaseURL = "https://www.dnd5eapi.co/api/2014/"
)

// EquipmentAPI is the part of the dnd5e-api client the pack reads
type EquipmentAPI interface {
	ListEquipment() ([]*entities.ReferenceItem, error)
	GetEquipment(key string) (dnd5e.EquipmentInterface, error)
}

// Config configures the SRD pack
type Config struct {
	// Client overrides the HTTP backed client
	Client EquipmentAPI
	// PackID defaults to DefaultPackID
	PackID string
	// BaseURL defaults to DefaultBaseURL
	BaseURL string
	// HTTPTimeout defaults to 30 seconds
	HTTPTimeout time.Duration
	// CacheTTL for the cached client, defaults to 24 hours
	CacheTTL time.Duration
}

// Validate sets defaults
func (cfg *Config) Validate() error {
	if cfg.PackID == "" {
		cfg.PackID = DefaultPackID
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return nil
}

type pack struct {
	client EquipmentAPI
	packID string

	mu    sync.Mutex
	index []host.IndexEntry
}

// New creates the SRD pack backend
func New(cfg *Config) (host.PackBackend, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	client := cfg.Client
	if client == nil {
		base, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
			Client:  &http.Client{Timeout: cfg.HTTPTimeout},
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create dnd5e api client")
		}
		client = dnd5e.NewCachedClient(base, cfg.CacheTTL)
	}

	return &pack{client: client, packID: cfg.PackID}, nil
}

func (p *pack) PackID() string {
	return p.packID
}

func (p *pack) GetPack(_ context.Context) (*host.PackInfo, error) {
	return &host.PackInfo{
		ID:           p.packID,
		Label:        "SRD Equipment",
		DocumentType: host.DocumentTypeItem,
	}, nil
}

func (p *pack) GetPackIndex(_ context.Context) ([]host.IndexEntry, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.index != nil {
		return p.index, nil
	}

	refs, err := p.client.ListEquipment()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list srd equipment")
	}

	index := make([]host.IndexEntry, 0, len(refs))
	for _, ref := range refs {
		if ref == nil || ref.Key == "" {
			continue
		}
		index = append(index, host.IndexEntry{ID: ref.Key, Name: ref.Name})
	}

	slog.Debug("srd equipment index loaded", "pack_id", p.packID, "count", len(index))
	p.index = index
	return index, nil
}

func (p *pack) GetDocument(_ context.Context, id string) (*host.Document, error) {
	equipment, err := p.client.GetEquipment(id)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeNotFound, "srd equipment not found").
			WithMeta("equipment_id", id)
	}
	if equipment == nil {
		return nil, errors.NotFoundf("srd equipment %s not found", id)
	}

	doc := toDocument(equipment)
	if doc.ID == "" {
		doc.ID = id
	}
	doc.Pack = p.packID
	return doc, nil
}

// toDocument flattens weapons, armor and gear into an item document.
// SRD equipment carries no rarity so everything is Common.
func toDocument(equipment dnd5e.EquipmentInterface) *host.Document {
	doc := &host.Document{
		Type:   equipment.GetType(),
		Rarity: string(loot.RarityCommon),
		System: map[string]any{"equipment_type": equipment.GetType()},
	}

	switch eq := equipment.(type) {
	case *entities.Weapon:
		doc.ID = eq.Key
		doc.Name = eq.Name
		doc.System["weight"] = eq.Weight
		doc.System["weapon_category"] = eq.WeaponCategory
		if eq.EquipmentCategory != nil {
			doc.System["category"] = eq.EquipmentCategory.Key
		}
		if eq.Cost != nil {
			doc.System["cost"] = map[string]any{"quantity": eq.Cost.Quantity, "unit": eq.Cost.Unit}
		}
	case *entities.Armor:
		doc.ID = eq.Key
		doc.Name = eq.Name
		doc.System["weight"] = eq.Weight
		doc.System["armor_category"] = eq.ArmorCategory
		if eq.EquipmentCategory != nil {
			doc.System["category"] = eq.EquipmentCategory.Key
		}
		if eq.Cost != nil {
			doc.System["cost"] = map[string]any{"quantity": eq.Cost.Quantity, "unit": eq.Cost.Unit}
		}
	case *entities.Equipment:
		doc.ID = eq.Key
		doc.Name = eq.Name
		doc.System["weight"] = eq.Weight
		if eq.EquipmentCategory != nil {
			doc.System["category"] = eq.EquipmentCategory.Key
		}
		if eq.Cost != nil {
			doc.System["cost"] = map[string]any{"quantity": eq.Cost.Quantity, "unit": eq.Cost.Unit}
		}
	}

	return doc
}
