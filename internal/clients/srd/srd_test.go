package srd_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-loot/internal/clients/host"
	"github.com/KirkDiggler/rpg-loot/internal/clients/srd"
	"github.com/KirkDiggler/rpg-loot/internal/clients/world"
	"github.com/KirkDiggler/rpg-loot/internal/errors"
)

type fakeEquipmentAPI struct {
	refs      []*entities.ReferenceItem
	items     map[string]dnd5e.EquipmentInterface
	listCalls int
	listErr   error
}

func (f *fakeEquipmentAPI) ListEquipment() ([]*entities.ReferenceItem, error) {
	f.listCalls++
	return f.refs, f.listErr
}

func (f *fakeEquipmentAPI) GetEquipment(key string) (dnd5e.EquipmentInterface, error) {
	item, ok := f.items[key]
	if !ok {
		return nil, fmt.Errorf("equipment %s: 404", key)
	}
	return item, nil
}

type SRDTestSuite struct {
	suite.Suite
	ctx  context.Context
	api  *fakeEquipmentAPI
	pack host.PackBackend
}

func TestSRDSuite(t *testing.T) {
	suite.Run(t, new(SRDTestSuite))
}

func (s *SRDTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.api = &fakeEquipmentAPI{
		refs: []*entities.ReferenceItem{
			{Key: "longsword", Name: "Longsword"},
			{Key: "chain-mail", Name: "Chain Mail"},
			{Key: "rope-hempen-50-feet", Name: "Rope, hempen (50 feet)"},
		},
		items: map[string]dnd5e.EquipmentInterface{
			"longsword":           &entities.Weapon{Key: "longsword", Name: "Longsword"},
			"chain-mail":          &entities.Armor{Key: "chain-mail", Name: "Chain Mail"},
			"rope-hempen-50-feet": &entities.Equipment{Key: "rope-hempen-50-feet", Name: "Rope, hempen (50 feet)"},
		},
	}

	pack, err := srd.New(&srd.Config{Client: s.api})
	s.Require().NoError(err)
	s.pack = pack
}

func (s *SRDTestSuite) TestPackInfo() {
	s.Equal(srd.DefaultPackID, s.pack.PackID())

	info, err := s.pack.GetPack(s.ctx)
	s.Require().NoError(err)
	s.Equal(host.DocumentTypeItem, info.DocumentType)
}

func (s *SRDTestSuite) TestIndexIsCached() {
	index, err := s.pack.GetPackIndex(s.ctx)
	s.Require().NoError(err)
	s.Len(index, 3)
	s.Equal("longsword", index[0].ID)

	_, err = s.pack.GetPackIndex(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, s.api.listCalls)
}

func (s *SRDTestSuite) TestIndexError() {
	s.api.listErr = fmt.Errorf("connection refused")

	_, err := s.pack.GetPackIndex(s.ctx)
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *SRDTestSuite) TestGetDocument() {
	testCases := []struct {
		id   string
		name string
	}{
		{id: "longsword", name: "Longsword"},
		{id: "chain-mail", name: "Chain Mail"},
		{id: "rope-hempen-50-feet", name: "Rope, hempen (50 feet)"},
	}

	for _, tc := range testCases {
		s.Run(tc.id, func() {
			doc, err := s.pack.GetDocument(s.ctx, tc.id)
			s.Require().NoError(err)
			s.Equal(tc.id, doc.ID)
			s.Equal(tc.name, doc.Name)
			s.Equal("Common", doc.Rarity)
			s.Equal(srd.DefaultPackID, doc.Pack)
		})
	}

	_, err := s.pack.GetDocument(s.ctx, "vorpal-sword")
	s.True(errors.IsNotFound(err))
}

func (s *SRDTestSuite) TestMountedOnMux() {
	store := host.NewMux(world.New(nil), s.pack)

	index, err := store.GetPackIndex(s.ctx, srd.DefaultPackID)
	s.Require().NoError(err)
	s.Len(index, 3)

	doc, err := store.GetDocument(s.ctx, srd.DefaultPackID, "longsword")
	s.Require().NoError(err)
	s.Equal("Longsword", doc.Name)

	_, err = store.GetPack(s.ctx, "other.pack")
	s.True(errors.IsNotFound(err))
}
