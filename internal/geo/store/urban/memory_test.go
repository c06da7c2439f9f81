package urban

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"georef/internal/geo/models"
	id "georef/pkg/domain"
	"georef/pkg/platform/sentinel"
)

type UrbanStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *UrbanStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func TestUrbanStoreSuite(t *testing.T) {
	suite.Run(t, new(UrbanStoreSuite))
}

func (s *UrbanStoreSuite) newUrban(kind models.UrbanKind, urbanID id.UrbanID, divisionID id.DivisionID, iso string) *models.Urban {
	u, err := models.NewUrban(kind, urbanID, divisionID, iso, "Bangkok", "กรุงเทพมหานคร")
	s.Require().NoError(err)
	return u
}

// TestCreationAndLookups verifies creation and id lookup.
func (s *UrbanStoreSuite) TestCreationAndLookups() {
	s.Run("creates and finds by id", func() {
		u := s.newUrban(models.UrbanCity, 1, 1, "BKK")
		s.Require().NoError(s.store.Create(s.ctx, u))

		found, err := s.store.FindByID(s.ctx, 1)
		s.Require().NoError(err)
		s.Equal(models.UrbanCity, found.Kind)
	})

	s.Run("returns ErrNotFound for unknown id", func() {
		_, err := s.store.FindByID(s.ctx, 999)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("rejects duplicate id", func() {
		dup := s.newUrban(models.UrbanTown, 1, 2, "TYO")
		s.Require().ErrorIs(s.store.Create(s.ctx, dup), sentinel.ErrConflict)
	})

	s.Run("rejects transient record", func() {
		u := s.newUrban(models.UrbanCity, 0, 1, "BKK")
		s.Require().ErrorIs(s.store.Create(s.ctx, u), sentinel.ErrInvalidState)
	})
}

// TestFilters verifies division and kind filtered listings.
func (s *UrbanStoreSuite) TestFilters() {
	s.Require().NoError(s.store.Create(s.ctx, s.newUrban(models.UrbanCity, 1, 1, "BKK")))
	s.Require().NoError(s.store.Create(s.ctx, s.newUrban(models.UrbanWard, 2, 1, "PTW")))
	s.Require().NoError(s.store.Create(s.ctx, s.newUrban(models.UrbanCity, 3, 3, "TYO")))

	s.Run("by division", func() {
		got, err := s.store.ListByDivision(s.ctx, 1)
		s.Require().NoError(err)
		s.Require().Len(got, 2)
		s.Equal(id.UrbanID(1), got[0].ID)
		s.Equal(id.UrbanID(2), got[1].ID)
	})

	s.Run("by kind", func() {
		cities, err := s.store.ListByKind(s.ctx, models.UrbanCity)
		s.Require().NoError(err)
		s.Len(cities, 2)

		hamlets, err := s.store.ListByKind(s.ctx, models.UrbanHamlet)
		s.Require().NoError(err)
		s.Empty(hamlets)
	})

	s.Run("full list preserves insertion order", func() {
		got, err := s.store.List(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(got, 3)
		s.Equal(id.UrbanID(1), got[0].ID)
		s.Equal(id.UrbanID(3), got[2].ID)
	})
}
