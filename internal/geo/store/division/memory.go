package division

import (
	"context"
	"strings"
	"sync"

	"georef/internal/geo/models"
	id "georef/pkg/domain"
	"georef/pkg/platform/sentinel"
)

// isoKey is the (country, iso) uniqueness key. ISO codes are only unique
// within a country; "13" may name a division in more than one country.
type isoKey struct {
	countryID id.CountryID
	iso       string
}

// InMemory keeps divisions of every kind in one collection, distinguished by
// their kind tag, matching the single-table layout of the Postgres store.
type InMemory struct {
	mu    sync.RWMutex
	byID  map[id.DivisionID]*models.Division
	byISO map[isoKey]*models.Division
	order []*models.Division
}

func NewInMemory() *InMemory {
	return &InMemory{
		byID:  make(map[id.DivisionID]*models.Division),
		byISO: make(map[isoKey]*models.Division),
	}
}

// Create stores a division. Returns sentinel.ErrInvalidState for transient
// input and sentinel.ErrConflict when the identifier or the (country, iso)
// pair is taken. The country reference is not resolved here; referential
// integrity across families is the loader's concern.
func (s *InMemory) Create(_ context.Context, d *models.Division) error {
	if d.IsTransient() {
		return sentinel.ErrInvalidState
	}
	key := isoKey{countryID: d.CountryID, iso: strings.ToUpper(d.ISO)}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[d.ID]; exists {
		return sentinel.ErrConflict
	}
	if _, exists := s.byISO[key]; exists {
		return sentinel.ErrConflict
	}
	s.byID[d.ID] = d
	s.byISO[key] = d
	s.order = append(s.order, d)
	return nil
}

func (s *InMemory) FindByID(_ context.Context, divisionID id.DivisionID) (*models.Division, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if d, exists := s.byID[divisionID]; exists {
		return d, nil
	}
	return nil, sentinel.ErrNotFound
}

// FindByCountryAndISO looks a division up by its country-scoped code,
// case-insensitively.
func (s *InMemory) FindByCountryAndISO(_ context.Context, countryID id.CountryID, iso string) (*models.Division, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if d, exists := s.byISO[isoKey{countryID: countryID, iso: strings.ToUpper(iso)}]; exists {
		return d, nil
	}
	return nil, sentinel.ErrNotFound
}

// ListByCountry returns the divisions of one country in insertion order.
func (s *InMemory) ListByCountry(_ context.Context, countryID id.CountryID) ([]*models.Division, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Division
	for _, d := range s.order {
		if d.CountryID == countryID {
			out = append(out, d)
		}
	}
	return out, nil
}

// ListByKind returns the divisions carrying the given tag in insertion order.
func (s *InMemory) ListByKind(_ context.Context, kind models.DivisionKind) ([]*models.Division, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Division
	for _, d := range s.order {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out, nil
}

// List returns every stored division in insertion order.
func (s *InMemory) List(_ context.Context) ([]*models.Division, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Division, len(s.order))
	copy(out, s.order)
	return out, nil
}
