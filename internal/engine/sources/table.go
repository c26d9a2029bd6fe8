package sources

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-loot/internal/clients/host"
	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
)

// TableSource draws by rolling a roll table
type TableSource struct {
	session *Session
	ref     loot.SourceRef
}

// Ref returns the source reference
func (t *TableSource) Ref() loot.SourceRef { return t.ref }

// Count is the number of rows that point at a document. Text rows are
// still drawable but do not make a table count as having items.
func (t *TableSource) Count(ctx context.Context) int {
	table, err := t.session.store.GetTable(ctx, t.ref.ID)
	if err != nil {
		slog.Warn("failed to read table", "table_id", t.ref.ID, "error", err)
		return 0
	}
	if table == nil {
		return 0
	}

	n := 0
	for _, row := range table.Rows {
		if row.Resolvable() {
			n++
		}
	}
	return n
}

// DrawOne rolls the table up to DrawAttempts times and takes the first
// acceptable row of a roll.
func (t *TableSource) DrawOne(ctx context.Context, allow AllowFunc) *loot.ItemDraft {
	for attempt := 1; attempt <= DrawAttempts; attempt++ {
		result, err := t.session.store.RollTable(ctx, t.ref.ID)
		if err != nil {
			slog.Warn("failed to roll table", "table_id", t.ref.ID, "attempt", attempt, "error", err)
			continue
		}
		if result == nil {
			continue
		}

		for _, row := range result.Rows {
			if draft := t.acceptRow(ctx, row, allow); draft != nil {
				return draft
			}
		}
	}

	return nil
}

func (t *TableSource) acceptRow(ctx context.Context, row host.TableRow, allow AllowFunc) *loot.ItemDraft {
	if row.Resolvable() {
		doc, err := t.session.store.GetDocument(ctx, row.DocumentCollection, row.DocumentID)
		if err != nil {
			slog.Warn("failed to resolve table row",
				"table_id", t.ref.ID,
				"collection", row.DocumentCollection,
				"document_id", row.DocumentID,
				"error", err)
			return nil
		}
		if doc == nil {
			slog.Warn("table row document missing",
				"table_id", t.ref.ID,
				"collection", row.DocumentCollection,
				"document_id", row.DocumentID)
			return nil
		}
		if !allow(doc.Rarity) {
			slog.Debug("table row rejected by rarity",
				"table_id", t.ref.ID,
				"document_id", doc.ID,
				"rarity", loot.NormalizeRarity(doc.Rarity))
			return nil
		}
		return draftFromDocument(doc, row.DocumentCollection, t.ref)
	}

	if t.session.textRows == TextRowsSkip || strings.TrimSpace(row.Text) == "" {
		return nil
	}
	if !allow(string(loot.RarityCommon)) {
		return nil
	}
	return draftFromText(row, t.ref)
}
