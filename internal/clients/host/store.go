// Package host defines the document store contract the loot engines read
// packs, folders and roll tables through.
package host

//go:generate mockgen -destination=mock/mock_store.go -package=hostmock github.com/KirkDiggler/rpg-loot/internal/clients/host DocumentStore

import (
	"context"
)

const (
	// WorldItemCollection is the collection id for items that live in the
	// world rather than in a pack.
	WorldItemCollection = "Item"
	// DocumentTypeItem is the pack document type that can hold loot
	DocumentTypeItem = "Item"
)

// PackInfo describes a compendium pack
type PackInfo struct {
	ID           string `json:"id" yaml:"id"`
	Label        string `json:"label" yaml:"label"`
	DocumentType string `json:"document_type" yaml:"document_type"`
}

// IndexEntry is one row of a pack index
type IndexEntry struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Document is a fully resolved item document
type Document struct {
	ID     string         `json:"id" yaml:"id"`
	Name   string         `json:"name" yaml:"name"`
	Type   string         `json:"type,omitempty" yaml:"type,omitempty"`
	Image  string         `json:"img,omitempty" yaml:"img,omitempty"`
	Rarity string         `json:"rarity,omitempty" yaml:"rarity,omitempty"`
	Pack   string         `json:"pack,omitempty" yaml:"-"`
	System map[string]any `json:"system,omitempty" yaml:"system,omitempty"`
}

// Folder is one node of the world item folder tree. Items holds only the
// folder's direct contents.
type Folder struct {
	ID       string      `json:"id" yaml:"id"`
	Name     string      `json:"name" yaml:"name"`
	ParentID string      `json:"parent_id,omitempty" yaml:"parent,omitempty"`
	ChildIDs []string    `json:"child_ids,omitempty" yaml:"children,omitempty"`
	Items    []*Document `json:"items,omitempty" yaml:"-"`
}

// TableRowType distinguishes literal text rows from document rows
type TableRowType string

// Table row types
const (
	TableRowText     TableRowType = "text"
	TableRowDocument TableRowType = "document"
)

// TableRow is one weighted result of a roll table
type TableRow struct {
	ID                 string       `json:"id" yaml:"id"`
	Type               TableRowType `json:"type" yaml:"type"`
	Text               string       `json:"text,omitempty" yaml:"text,omitempty"`
	DocumentCollection string       `json:"document_collection,omitempty" yaml:"collection,omitempty"`
	DocumentID         string       `json:"document_id,omitempty" yaml:"document,omitempty"`
	Image              string       `json:"img,omitempty" yaml:"img,omitempty"`
	Weight             int          `json:"weight" yaml:"weight"`
}

// Resolvable reports whether the row points at a document
func (r TableRow) Resolvable() bool {
	return r.DocumentCollection != "" && r.DocumentID != ""
}

// Table is a roll table
type Table struct {
	ID   string     `json:"id" yaml:"id"`
	Name string     `json:"name" yaml:"name"`
	Rows []TableRow `json:"rows" yaml:"rows"`
}

// TableRollResult is what one host roll produced. A roll may yield several
// rows.
type TableRollResult struct {
	Total int        `json:"total"`
	Rows  []TableRow `json:"rows"`
}

// DocumentStore reads loot sources from the host. Missing documents fail
// with a NOT_FOUND error.
type DocumentStore interface {
	GetPack(ctx context.Context, packID string) (*PackInfo, error)
	GetPackIndex(ctx context.Context, packID string) ([]IndexEntry, error)
	// GetDocument resolves id in collection. WorldItemCollection reads world
	// items; any other collection is a pack id.
	GetDocument(ctx context.Context, collection, id string) (*Document, error)
	GetFolder(ctx context.Context, folderID string) (*Folder, error)
	GetTable(ctx context.Context, tableID string) (*Table, error)
	// RollTable draws from the table using the host's own weighting
	RollTable(ctx context.Context, tableID string) (*TableRollResult, error)
}
