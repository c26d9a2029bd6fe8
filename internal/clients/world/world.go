// Package world is an in-memory host world: packs, world items, folders,
// roll tables and actors, loadable from YAML. It backs the CLI and tests.
package world

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-loot/internal/clients/host"
	lootdice "github.com/KirkDiggler/rpg-loot/internal/dice"
	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
	"github.com/KirkDiggler/rpg-loot/internal/errors"
)

type pack struct {
	info  host.PackInfo
	order []string
	docs  map[string]*host.Document
}

type table struct {
	table host.Table
	draws int
}

// Actor holds what has been applied to a creature
type Actor struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Items    []*loot.ItemDraft   `json:"items"`
	Currency loot.CurrencyBundle `json:"currency"`
}

// World implements host.DocumentStore and the loot inventory
type World struct {
	mu      sync.RWMutex
	random  *lootdice.Random
	packs   map[string]*pack
	items   map[string]*host.Document
	folders map[string]*host.Folder
	tables  map[string]*table
	actors  map[string]*Actor
	tokens  []*loot.Token
}

var _ host.DocumentStore = (*World)(nil)

// New creates an empty world. Table rolls use roller; nil uses the toolkit
// default.
func New(roller dice.Roller) *World {
	return &World{
		random:  lootdice.NewRandom(roller),
		packs:   make(map[string]*pack),
		items:   make(map[string]*host.Document),
		folders: make(map[string]*host.Folder),
		tables:  make(map[string]*table),
		actors:  make(map[string]*Actor),
	}
}

// AddPack registers a pack and its documents
func (w *World) AddPack(info host.PackInfo, docs ...*host.Document) *World {
	w.mu.Lock()
	defer w.mu.Unlock()

	p, ok := w.packs[info.ID]
	if !ok {
		p = &pack{docs: make(map[string]*host.Document)}
		w.packs[info.ID] = p
	}
	p.info = info
	for _, doc := range docs {
		doc.Pack = info.ID
		if _, exists := p.docs[doc.ID]; !exists {
			p.order = append(p.order, doc.ID)
		}
		p.docs[doc.ID] = doc
	}
	return w
}

// AddFolder registers a folder under parentID ("" for a root folder)
func (w *World) AddFolder(id, name, parentID string) *World {
	w.mu.Lock()
	defer w.mu.Unlock()

	f := w.folderLocked(id)
	f.Name = name
	f.ParentID = parentID
	if parentID != "" {
		parent := w.folderLocked(parentID)
		parent.ChildIDs = appendUnique(parent.ChildIDs, id)
	}
	return w
}

// LinkFolder adds childID to parentID's children without reparenting.
// Used to build malformed trees in tests.
func (w *World) LinkFolder(parentID, childID string) *World {
	w.mu.Lock()
	defer w.mu.Unlock()

	parent := w.folderLocked(parentID)
	parent.ChildIDs = appendUnique(parent.ChildIDs, childID)
	return w
}

// AddItem registers a world item, optionally inside folderID
func (w *World) AddItem(folderID string, doc *host.Document) *World {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.items[doc.ID] = doc
	if folderID != "" {
		f := w.folderLocked(folderID)
		f.Items = append(f.Items, doc)
	}
	return w
}

// AddTable registers a roll table. Each roll draws draws rows (minimum 1).
func (w *World) AddTable(t host.Table, draws int) *World {
	w.mu.Lock()
	defer w.mu.Unlock()

	if draws < 1 {
		draws = 1
	}
	w.tables[t.ID] = &table{table: t, draws: draws}
	return w
}

// AddActor registers an actor
func (w *World) AddActor(id, name string) *World {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.actors[id]; !ok {
		w.actors[id] = &Actor{ID: id, Name: name}
	}
	return w
}

// AddToken registers a token placed in the scene
func (w *World) AddToken(token *loot.Token) *World {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.tokens = append(w.tokens, token)
	return w
}

// Tokens returns the scene tokens in load order
func (w *World) Tokens() []*loot.Token {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]*loot.Token, len(w.tokens))
	copy(out, w.tokens)
	return out
}

// Actor returns a snapshot of an actor
func (w *World) Actor(id string) (*Actor, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	a, ok := w.actors[id]
	if !ok {
		return nil, false
	}
	snapshot := *a
	snapshot.Items = append([]*loot.ItemDraft(nil), a.Items...)
	return &snapshot, true
}

// PackIDs returns every registered pack id
func (w *World) PackIDs() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	ids := make([]string, 0, len(w.packs))
	for id := range w.packs {
		ids = append(ids, id)
	}
	return ids
}

// HasSource reports whether ref points at something registered
func (w *World) HasSource(ref loot.SourceRef) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	switch ref.Kind {
	case loot.SourceKindPack:
		_, ok := w.packs[ref.ID]
		return ok
	case loot.SourceKindFolder:
		_, ok := w.folders[ref.ID]
		return ok
	case loot.SourceKindTable:
		_, ok := w.tables[ref.ID]
		return ok
	default:
		return false
	}
}

// GetPack returns pack metadata
func (w *World) GetPack(_ context.Context, packID string) (*host.PackInfo, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	p, ok := w.packs[packID]
	if !ok {
		return nil, errors.NotFoundf("pack %s not found", packID)
	}
	info := p.info
	return &info, nil
}

// GetPackIndex returns the pack index in insertion order
func (w *World) GetPackIndex(_ context.Context, packID string) ([]host.IndexEntry, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	p, ok := w.packs[packID]
	if !ok {
		return nil, errors.NotFoundf("pack %s not found", packID)
	}

	index := make([]host.IndexEntry, 0, len(p.order))
	for _, id := range p.order {
		doc := p.docs[id]
		index = append(index, host.IndexEntry{ID: doc.ID, Name: doc.Name, Type: doc.Type})
	}
	return index, nil
}

// GetDocument resolves a world item or pack document
func (w *World) GetDocument(_ context.Context, collection, id string) (*host.Document, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if collection == host.WorldItemCollection {
		doc, ok := w.items[id]
		if !ok {
			return nil, errors.NotFoundf("item %s not found", id)
		}
		return cloneDocument(doc), nil
	}

	p, ok := w.packs[collection]
	if !ok {
		return nil, errors.NotFoundf("pack %s not found", collection)
	}
	doc, ok := p.docs[id]
	if !ok {
		return nil, errors.NotFoundf("document %s not found in pack %s", id, collection)
	}
	return cloneDocument(doc), nil
}

// GetFolder returns a folder with its direct items
func (w *World) GetFolder(_ context.Context, folderID string) (*host.Folder, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	f, ok := w.folders[folderID]
	if !ok {
		return nil, errors.NotFoundf("folder %s not found", folderID)
	}

	out := *f
	out.ChildIDs = append([]string(nil), f.ChildIDs...)
	out.Items = make([]*host.Document, len(f.Items))
	for i, doc := range f.Items {
		out.Items[i] = cloneDocument(doc)
	}
	return &out, nil
}

// GetTable returns a roll table
func (w *World) GetTable(_ context.Context, tableID string) (*host.Table, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	t, ok := w.tables[tableID]
	if !ok {
		return nil, errors.NotFoundf("table %s not found", tableID)
	}
	out := t.table
	out.Rows = append([]host.TableRow(nil), t.table.Rows...)
	return &out, nil
}

// RollTable draws rows by weight. Rows without a weight count as 1.
func (w *World) RollTable(_ context.Context, tableID string) (*host.TableRollResult, error) {
	w.mu.RLock()
	t, ok := w.tables[tableID]
	w.mu.RUnlock()
	if !ok {
		return nil, errors.NotFoundf("table %s not found", tableID)
	}
	if len(t.table.Rows) == 0 {
		return &host.TableRollResult{}, nil
	}

	weights := make([]int, len(t.table.Rows))
	for i, row := range t.table.Rows {
		weights[i] = row.Weight
		if weights[i] <= 0 {
			weights[i] = 1
		}
	}

	result := &host.TableRollResult{}
	for range t.draws {
		idx := w.random.WeightedIndex(weights)
		result.Total += idx + 1
		result.Rows = append(result.Rows, t.table.Rows[idx])
	}

	slog.Debug("table rolled", "table_id", tableID, "rows", len(result.Rows))
	return result, nil
}

// CreateItems adds drafts to an actor's inventory
func (w *World) CreateItems(_ context.Context, actorID string, items []*loot.ItemDraft) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	a, ok := w.actors[actorID]
	if !ok {
		return errors.NotFoundf("actor %s not found", actorID)
	}
	a.Items = append(a.Items, items...)
	return nil
}

// GetCurrency returns an actor's coins
func (w *World) GetCurrency(_ context.Context, actorID string) (loot.CurrencyBundle, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	a, ok := w.actors[actorID]
	if !ok {
		return loot.CurrencyBundle{}, errors.NotFoundf("actor %s not found", actorID)
	}
	return a.Currency, nil
}

// SetCurrency replaces an actor's coins
func (w *World) SetCurrency(_ context.Context, actorID string, bundle loot.CurrencyBundle) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	a, ok := w.actors[actorID]
	if !ok {
		return errors.NotFoundf("actor %s not found", actorID)
	}
	a.Currency = bundle
	return nil
}

func (w *World) folderLocked(id string) *host.Folder {
	f, ok := w.folders[id]
	if !ok {
		f = &host.Folder{ID: id}
		w.folders[id] = f
	}
	return f
}

func cloneDocument(doc *host.Document) *host.Document {
	out := *doc
	if doc.System != nil {
		out.System = make(map[string]any, len(doc.System))
		for k, v := range doc.System {
			out.System[k] = v
		}
	}
	return &out
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
