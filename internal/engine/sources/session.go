// Package sources resolves loot sources (packs, folders and roll tables)
// into item drafts. A Session caches lookups for one generation call.
package sources

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-loot/internal/clients/host"
	"github.com/KirkDiggler/rpg-loot/internal/dice"
	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
	"github.com/KirkDiggler/rpg-loot/internal/errors"
)

// DrawAttempts bounds the retries a provider makes for one draw
const DrawAttempts = 5

// AllowFunc decides whether an item with the given raw rarity may be drawn
type AllowFunc func(rarityRaw string) bool

// ItemSource is one prefiltered source able to produce a random item
type ItemSource interface {
	Ref() loot.SourceRef
	// Count is the number of items the source can produce, 0 when it is
	// missing or unreadable.
	Count(ctx context.Context) int
	// DrawOne returns a random allowed item or nil. It never fails.
	DrawOne(ctx context.Context, allow AllowFunc) *loot.ItemDraft
}

// TextRowPolicy controls how literal text rows of a roll table are drafted
type TextRowPolicy string

// Text row policies
const (
	// TextRowsAsCommon drafts text rows as Common items, still subject to
	// the rarity ceiling.
	TextRowsAsCommon TextRowPolicy = "common"
	// TextRowsSkip never drafts text rows
	TextRowsSkip TextRowPolicy = "skip"
)

// Config holds the dependencies for a session
type Config struct {
	Store    host.DocumentStore
	Random   *dice.Random
	TextRows TextRowPolicy
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Store == nil {
		vb.RequiredField("Store")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	switch c.TextRows {
	case "", TextRowsAsCommon, TextRowsSkip:
	default:
		vb.Fieldf("TextRows", "unknown policy %q", c.TextRows)
	}

	return vb.Build()
}

// Session memoizes source lookups for a single generation call. It is safe
// for concurrent use by the token runs of that call. Every cache is
// write-once per key; concurrent writers compute the same value so the last
// one wins.
type Session struct {
	store    host.DocumentStore
	random   *dice.Random
	textRows TextRowPolicy

	mu          sync.RWMutex
	counts      map[string]int
	packIndexes map[string][]host.IndexEntry
	folderItems map[string][]*host.Document
}

// NewSession starts a session with empty caches
func NewSession(cfg *Config) (*Session, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	textRows := cfg.TextRows
	if textRows == "" {
		textRows = TextRowsAsCommon
	}

	return &Session{
		store:       cfg.Store,
		random:      cfg.Random,
		textRows:    textRows,
		counts:      make(map[string]int),
		packIndexes: make(map[string][]host.IndexEntry),
		folderItems: make(map[string][]*host.Document),
	}, nil
}

// Source returns the provider for ref, or nil for an unknown kind
func (s *Session) Source(ref loot.SourceRef) ItemSource {
	switch ref.Kind {
	case loot.SourceKindPack:
		return &PackSource{session: s, ref: ref}
	case loot.SourceKindFolder:
		return &FolderSource{session: s, ref: ref}
	case loot.SourceKindTable:
		return &TableSource{session: s, ref: ref}
	default:
		return nil
	}
}

// Sources returns providers for refs, skipping unknown kinds
func (s *Session) Sources(refs []loot.SourceRef) []ItemSource {
	out := make([]ItemSource, 0, len(refs))
	for _, ref := range refs {
		if src := s.Source(ref); src != nil {
			out = append(out, src)
		}
	}
	return out
}

// Count returns the memoized item count of ref. Lookup failures count as 0.
func (s *Session) Count(ctx context.Context, ref loot.SourceRef) int {
	key := ref.Key()

	s.mu.RLock()
	n, ok := s.counts[key]
	s.mu.RUnlock()
	if ok {
		return n
	}

	src := s.Source(ref)
	if src == nil {
		slog.Warn("unknown loot source kind", "source", key)
		n = 0
	} else {
		n = src.Count(ctx)
	}

	s.mu.Lock()
	s.counts[key] = n
	s.mu.Unlock()

	return n
}

// Prefilter keeps the refs with at least one item, dropping duplicates and
// preserving order.
func (s *Session) Prefilter(ctx context.Context, refs []loot.SourceRef) []loot.SourceRef {
	seen := make(map[string]struct{}, len(refs))
	kept := make([]loot.SourceRef, 0, len(refs))

	for _, ref := range refs {
		key := ref.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if s.Count(ctx, ref) > 0 {
			kept = append(kept, ref)
			continue
		}
		slog.Debug("loot source dropped", "source", key)
	}

	return kept
}

func (s *Session) packIndex(ctx context.Context, packID string) ([]host.IndexEntry, error) {
	s.mu.RLock()
	index, ok := s.packIndexes[packID]
	s.mu.RUnlock()
	if ok {
		return index, nil
	}

	index, err := s.store.GetPackIndex(ctx, packID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.packIndexes[packID] = index
	s.mu.Unlock()

	return index, nil
}

func (s *Session) folderTree(ctx context.Context, folderID string) ([]*host.Document, error) {
	s.mu.RLock()
	items, ok := s.folderItems[folderID]
	s.mu.RUnlock()
	if ok {
		return items, nil
	}

	root, err := s.store.GetFolder(ctx, folderID)
	if err != nil {
		return nil, err
	}

	visited := map[string]bool{folderID: true}
	items = s.collectFolder(ctx, root, visited, nil)

	s.mu.Lock()
	s.folderItems[folderID] = items
	s.mu.Unlock()

	return items, nil
}

// collectFolder walks the subtree depth first. A folder already visited is
// not entered again, so malformed trees with cycles terminate.
func (s *Session) collectFolder(ctx context.Context, folder *host.Folder, visited map[string]bool, out []*host.Document) []*host.Document {
	if folder == nil {
		return out
	}
	for _, item := range folder.Items {
		if item != nil {
			out = append(out, item)
		}
	}

	for _, childID := range folder.ChildIDs {
		if visited[childID] {
			slog.Warn("folder cycle detected", "folder_id", folder.ID, "child_id", childID)
			continue
		}
		visited[childID] = true

		child, err := s.store.GetFolder(ctx, childID)
		if err != nil {
			slog.Warn("failed to read child folder", "folder_id", childID, "error", err)
			continue
		}
		out = s.collectFolder(ctx, child, visited, out)
	}

	return out
}
