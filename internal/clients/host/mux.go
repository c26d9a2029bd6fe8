package host

import (
	"context"
	"log/slog"
)

// PackBackend serves a single read-only pack, such as a remote SRD
type PackBackend interface {
	PackID() string
	GetPack(ctx context.Context) (*PackInfo, error)
	GetPackIndex(ctx context.Context) ([]IndexEntry, error)
	GetDocument(ctx context.Context, id string) (*Document, error)
}

type mux struct {
	base     DocumentStore
	backends map[string]PackBackend
}

// NewMux routes pack reads for the given backends' pack ids to those
// backends and everything else to base.
func NewMux(base DocumentStore, backends ...PackBackend) DocumentStore {
	m := &mux{
		base:     base,
		backends: make(map[string]PackBackend, len(backends)),
	}
	for _, b := range backends {
		if _, exists := m.backends[b.PackID()]; exists {
			slog.Warn("duplicate pack backend ignored", "pack_id", b.PackID())
			continue
		}
		m.backends[b.PackID()] = b
	}
	return m
}

func (m *mux) GetPack(ctx context.Context, packID string) (*PackInfo, error) {
	if b, ok := m.backends[packID]; ok {
		return b.GetPack(ctx)
	}
	return m.base.GetPack(ctx, packID)
}

func (m *mux) GetPackIndex(ctx context.Context, packID string) ([]IndexEntry, error) {
	if b, ok := m.backends[packID]; ok {
		return b.GetPackIndex(ctx)
	}
	return m.base.GetPackIndex(ctx, packID)
}

func (m *mux) GetDocument(ctx context.Context, collection, id string) (*Document, error) {
	if b, ok := m.backends[collection]; ok {
		return b.GetDocument(ctx, id)
	}
	return m.base.GetDocument(ctx, collection, id)
}

func (m *mux) GetFolder(ctx context.Context, folderID string) (*Folder, error) {
	return m.base.GetFolder(ctx, folderID)
}

func (m *mux) GetTable(ctx context.Context, tableID string) (*Table, error) {
	return m.base.GetTable(ctx, tableID)
}

func (m *mux) RollTable(ctx context.Context, tableID string) (*TableRollResult, error) {
	return m.base.RollTable(ctx, tableID)
}
