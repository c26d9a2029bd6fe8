package sources

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-loot/internal/clients/host"
	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
)

// FolderSource draws from a world item folder and all its subfolders
type FolderSource struct {
	session *Session
	ref     loot.SourceRef
}

// Ref returns the source reference
func (f *FolderSource) Ref() loot.SourceRef { return f.ref }

// Count is the number of items in the subtree
func (f *FolderSource) Count(ctx context.Context) int {
	items, err := f.session.folderTree(ctx, f.ref.ID)
	if err != nil {
		slog.Warn("failed to read folder", "folder_id", f.ref.ID, "error", err)
		return 0
	}
	return len(items)
}

// DrawOne picks uniformly among the allowed items of the subtree
func (f *FolderSource) DrawOne(ctx context.Context, allow AllowFunc) *loot.ItemDraft {
	items, err := f.session.folderTree(ctx, f.ref.ID)
	if err != nil {
		slog.Warn("failed to read folder", "folder_id", f.ref.ID, "error", err)
		return nil
	}

	allowed := make([]*host.Document, 0, len(items))
	for _, item := range items {
		if allow(item.Rarity) {
			allowed = append(allowed, item)
		}
	}
	if len(allowed) == 0 {
		slog.Debug("no folder items pass rarity filter", "folder_id", f.ref.ID, "items", len(items))
		return nil
	}

	for attempt := 1; attempt <= DrawAttempts; attempt++ {
		pick := allowed[f.session.random.Intn(len(allowed))]
		if pick.ID == "" {
			continue
		}
		return draftFromDocument(pick, host.WorldItemCollection, f.ref)
	}

	return nil
}
