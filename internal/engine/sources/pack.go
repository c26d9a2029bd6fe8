package sources

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-loot/internal/clients/host"
	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
)

// PackSource draws from a compendium pack
type PackSource struct {
	session *Session
	ref     loot.SourceRef
}

// Ref returns the source reference
func (p *PackSource) Ref() loot.SourceRef { return p.ref }

// Count is 0 unless the pack holds items, else the size of its index
func (p *PackSource) Count(ctx context.Context) int {
	info, err := p.session.store.GetPack(ctx, p.ref.ID)
	if err != nil {
		slog.Warn("failed to read pack", "pack_id", p.ref.ID, "error", err)
		return 0
	}
	if info == nil {
		slog.Warn("pack missing", "pack_id", p.ref.ID)
		return 0
	}
	if info.DocumentType != host.DocumentTypeItem {
		slog.Debug("pack does not hold items", "pack_id", p.ref.ID, "document_type", info.DocumentType)
		return 0
	}

	index, err := p.session.packIndex(ctx, p.ref.ID)
	if err != nil {
		slog.Warn("failed to read pack index", "pack_id", p.ref.ID, "error", err)
		return 0
	}
	return len(index)
}

// DrawOne picks random index entries until one resolves to an allowed item
func (p *PackSource) DrawOne(ctx context.Context, allow AllowFunc) *loot.ItemDraft {
	index, err := p.session.packIndex(ctx, p.ref.ID)
	if err != nil {
		slog.Warn("failed to read pack index", "pack_id", p.ref.ID, "error", err)
		return nil
	}
	if len(index) == 0 {
		return nil
	}

	for attempt := 1; attempt <= DrawAttempts; attempt++ {
		entry := index[p.session.random.Intn(len(index))]

		doc, err := p.session.store.GetDocument(ctx, p.ref.ID, entry.ID)
		if err != nil {
			slog.Warn("failed to resolve pack document",
				"pack_id", p.ref.ID,
				"document_id", entry.ID,
				"attempt", attempt,
				"error", err)
			continue
		}
		if doc == nil {
			slog.Warn("pack document missing",
				"pack_id", p.ref.ID,
				"document_id", entry.ID,
				"attempt", attempt)
			continue
		}
		if !allow(doc.Rarity) {
			slog.Debug("pack item rejected by rarity",
				"pack_id", p.ref.ID,
				"document_id", doc.ID,
				"rarity", loot.NormalizeRarity(doc.Rarity),
				"attempt", attempt)
			continue
		}

		return draftFromDocument(doc, p.ref.ID, p.ref)
	}

	return nil
}
