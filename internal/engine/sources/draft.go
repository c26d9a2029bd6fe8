package sources

import (
	"github.com/KirkDiggler/rpg-loot/internal/clients/host"
	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
)

// originCollection maps a document collection to the draft's origin. World
// items have no origin.
func originCollection(collection string) string {
	if collection == host.WorldItemCollection {
		return ""
	}
	return collection
}

func draftFromDocument(doc *host.Document, collection string, ref loot.SourceRef) *loot.ItemDraft {
	data := map[string]any{
		"name":   doc.Name,
		"type":   doc.Type,
		"img":    doc.Image,
		"rarity": doc.Rarity,
	}
	if len(doc.System) > 0 {
		system := make(map[string]any, len(doc.System))
		for k, v := range doc.System {
			system[k] = v
		}
		data["system"] = system
	}

	return &loot.ItemDraft{
		ID:               doc.ID,
		Name:             doc.Name,
		Image:            doc.Image,
		Type:             doc.Type,
		RarityRaw:        doc.Rarity,
		OriginCollection: originCollection(collection),
		SourceKey:        ref.Key(),
		Data:             data,
	}
}

func draftFromText(row host.TableRow, ref loot.SourceRef) *loot.ItemDraft {
	return &loot.ItemDraft{
		ID:        row.ID,
		Name:      row.Text,
		Image:     row.Image,
		Type:      "loot",
		RarityRaw: string(loot.RarityCommon),
		SourceKey: ref.Key(),
		Data: map[string]any{
			"name":   row.Text,
			"type":   "loot",
			"img":    row.Image,
			"rarity": string(loot.RarityCommon),
			"text":   true,
		},
	}
}
