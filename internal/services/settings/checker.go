package settings

import (
	"context"

	"github.com/KirkDiggler/rpg-loot/internal/clients/host"
	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
	"github.com/KirkDiggler/rpg-loot/internal/errors"
)

// SourceChecker reports whether the host knows a source
type SourceChecker interface {
	Exists(ctx context.Context, ref loot.SourceRef) (bool, error)
}

type storeChecker struct {
	store host.DocumentStore
}

// NewStoreChecker checks sources against a document store. Only NOT_FOUND
// counts as missing; other errors are returned.
func NewStoreChecker(store host.DocumentStore) SourceChecker {
	return &storeChecker{store: store}
}

func (c *storeChecker) Exists(ctx context.Context, ref loot.SourceRef) (bool, error) {
	var err error
	switch ref.Kind {
	case loot.SourceKindPack:
		_, err = c.store.GetPack(ctx, ref.ID)
	case loot.SourceKindFolder:
		_, err = c.store.GetFolder(ctx, ref.ID)
	case loot.SourceKindTable:
		_, err = c.store.GetTable(ctx, ref.ID)
	default:
		return false, nil
	}

	if err != nil {
		if errors.IsNotFound(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "failed to check source %s", ref.Key())
	}
	return true, nil
}
