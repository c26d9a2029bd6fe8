package world

import (
	"context"
	"io"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-loot/internal/clients/host"
	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
	"github.com/KirkDiggler/rpg-loot/internal/errors"
)

type worldFile struct {
	Packs   []packFile   `yaml:"packs"`
	Folders []folderFile `yaml:"folders"`
	Items   []itemFile   `yaml:"items"`
	Tables  []tableFile  `yaml:"tables"`
	Actors  []actorFile  `yaml:"actors"`
	Tokens  []tokenFile  `yaml:"tokens"`
}

type packFile struct {
	ID           string          `yaml:"id"`
	Label        string          `yaml:"label"`
	DocumentType string          `yaml:"document_type"`
	Items        []host.Document `yaml:"items"`
}

type folderFile struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Parent string `yaml:"parent"`
}

type itemFile struct {
	host.Document `yaml:",inline"`
	Folder        string `yaml:"folder"`
}

type tableFile struct {
	host.Table `yaml:",inline"`
	Draws      int `yaml:"draws"`
}

type actorFile struct {
	ID       string              `yaml:"id"`
	Name     string              `yaml:"name"`
	Currency loot.CurrencyBundle `yaml:"currency"`
}

type tokenFile struct {
	ID              string   `yaml:"id"`
	Name            string   `yaml:"name"`
	ActorID         string   `yaml:"actor"`
	ActorType       string   `yaml:"actor_type"`
	CreatureType    string   `yaml:"creature_type"`
	ChallengeRating *float64 `yaml:"cr"`
}

// LoadFile reads a YAML world from path
func LoadFile(path string, roller dice.Roller) (*World, error) {
	f, err := os.Open(path) // #nosec G304 -- path is supplied by the operator
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open world file %s", path)
	}
	defer func() { _ = f.Close() }()

	return Load(f, roller)
}

// Load decodes a YAML world
func Load(r io.Reader, roller dice.Roller) (*World, error) {
	var file worldFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && err != io.EOF {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode world")
	}

	w := New(roller)

	for _, p := range file.Packs {
		if p.ID == "" {
			return nil, errors.InvalidArgument("pack id is required")
		}
		docType := p.DocumentType
		if docType == "" {
			docType = host.DocumentTypeItem
		}
		docs := make([]*host.Document, len(p.Items))
		for i := range p.Items {
			docs[i] = &p.Items[i]
		}
		w.AddPack(host.PackInfo{ID: p.ID, Label: p.Label, DocumentType: docType}, docs...)
	}

	for _, f := range file.Folders {
		if f.ID == "" {
			return nil, errors.InvalidArgument("folder id is required")
		}
		w.AddFolder(f.ID, f.Name, f.Parent)
	}

	for i := range file.Items {
		item := file.Items[i]
		if item.ID == "" {
			return nil, errors.InvalidArgument("item id is required")
		}
		doc := item.Document
		w.AddItem(item.Folder, &doc)
	}

	for _, t := range file.Tables {
		if t.ID == "" {
			return nil, errors.InvalidArgument("table id is required")
		}
		for i := range t.Rows {
			if t.Rows[i].Type == "" {
				if t.Rows[i].Resolvable() {
					t.Rows[i].Type = host.TableRowDocument
				} else {
					t.Rows[i].Type = host.TableRowText
				}
			}
		}
		w.AddTable(t.Table, t.Draws)
	}

	for _, a := range file.Actors {
		if a.ID == "" {
			return nil, errors.InvalidArgument("actor id is required")
		}
		w.AddActor(a.ID, a.Name)
		if err := w.SetCurrency(context.Background(), a.ID, a.Currency); err != nil {
			return nil, err
		}
	}

	for _, t := range file.Tokens {
		if t.ActorID != "" {
			w.AddActor(t.ActorID, t.Name)
		}
		w.AddToken(&loot.Token{
			ID:              t.ID,
			Name:            t.Name,
			ActorID:         t.ActorID,
			ActorType:       t.ActorType,
			CreatureType:    t.CreatureType,
			ChallengeRating: t.ChallengeRating,
		})
	}

	return w, nil
}
