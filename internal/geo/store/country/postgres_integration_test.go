//go:build integration

package country_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	"georef/internal/geo/models"
	"georef/internal/geo/store/country"
	id "georef/pkg/domain"
	"georef/pkg/platform/sentinel"
	"georef/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *country.Postgres
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = country.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	ctx := context.Background()
	err := s.postgres.TruncateTables(ctx, "urbans", "divisions", "countries")
	s.Require().NoError(err)
}

func newThailand(s *PostgresStoreSuite) *models.Country {
	c, err := models.NewCountry(764, "TH", 66, "Thailand", "ไทย", 69950850)
	s.Require().NoError(err)
	return c
}

// TestRoundTrip verifies every attribute survives the insert/scan cycle,
// including the non-Latin native name.
func (s *PostgresStoreSuite) TestRoundTrip() {
	ctx := context.Background()
	s.Require().NoError(s.store.Create(ctx, newThailand(s)))

	found, err := s.store.FindByID(ctx, 764)
	s.Require().NoError(err)
	s.Equal(id.CountryID(764), found.ID)
	s.Equal("TH", found.ISO)
	s.Equal(66, found.CallingCode)
	s.Equal("Thailand", found.Name)
	s.Equal("ไทย", found.Native)
	s.Equal(int64(69950850), found.Population)
	s.False(found.IsTransient())

	byISO, err := s.store.FindByISO(ctx, "th")
	s.Require().NoError(err)
	s.True(models.Equal(found, byISO))
}

// TestUniqueISO verifies the database-level ISO uniqueness constraint maps to
// sentinel.ErrConflict.
func (s *PostgresStoreSuite) TestUniqueISO() {
	ctx := context.Background()
	s.Require().NoError(s.store.Create(ctx, newThailand(s)))

	dup, err := models.NewCountry(999, "TH", 1, "Thailand Copy", "ไทย", 1)
	s.Require().NoError(err)
	s.Require().ErrorIs(s.store.Create(ctx, dup), sentinel.ErrConflict)
}

// TestConcurrentDuplicateInsert verifies that concurrent creation attempts of
// the same country result in exactly one success.
func (s *PostgresStoreSuite) TestConcurrentDuplicateInsert() {
	ctx := context.Background()
	const goroutines = 20

	var wg sync.WaitGroup
	var successCount, conflictCount atomic.Int32

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.store.Create(ctx, newThailand(s))
			if err == nil {
				successCount.Add(1)
			} else if errors.Is(err, sentinel.ErrConflict) {
				conflictCount.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), successCount.Load(), "exactly one create should succeed")
	s.Equal(int32(goroutines-1), conflictCount.Load(), "all others should get conflict error")
}

// TestNotFound verifies missing rows surface as sentinel.ErrNotFound.
func (s *PostgresStoreSuite) TestNotFound() {
	ctx := context.Background()
	_, err := s.store.FindByID(ctx, 1)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.store.FindByISO(ctx, "ZZ")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}
