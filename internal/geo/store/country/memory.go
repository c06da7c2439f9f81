package country

import (
	"context"
	"strings"
	"sync"

	"georef/internal/geo/models"
	id "georef/pkg/domain"
	"georef/pkg/platform/sentinel"
)

// InMemory keeps countries in process memory. Reads hand out the stored
// pointers; records are immutable by convention after creation.
type InMemory struct {
	mu    sync.RWMutex
	byID  map[id.CountryID]*models.Country
	byISO map[string]*models.Country
	order []*models.Country
}

func NewInMemory() *InMemory {
	return &InMemory{
		byID:  make(map[id.CountryID]*models.Country),
		byISO: make(map[string]*models.Country),
	}
}

// Create stores a country. The record must already carry an identifier; this
// store does not assign them. Returns sentinel.ErrInvalidState for transient
// input and sentinel.ErrConflict when the identifier or ISO code is taken.
func (s *InMemory) Create(_ context.Context, c *models.Country) error {
	if c.IsTransient() {
		return sentinel.ErrInvalidState
	}
	iso := strings.ToUpper(c.ISO)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[c.ID]; exists {
		return sentinel.ErrConflict
	}
	if _, exists := s.byISO[iso]; exists {
		return sentinel.ErrConflict
	}
	s.byID[c.ID] = c
	s.byISO[iso] = c
	s.order = append(s.order, c)
	return nil
}

func (s *InMemory) FindByID(_ context.Context, countryID id.CountryID) (*models.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, exists := s.byID[countryID]; exists {
		return c, nil
	}
	return nil, sentinel.ErrNotFound
}

// FindByISO looks a country up by its alpha-2 code, case-insensitively.
func (s *InMemory) FindByISO(_ context.Context, iso string) (*models.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, exists := s.byISO[strings.ToUpper(iso)]; exists {
		return c, nil
	}
	return nil, sentinel.ErrNotFound
}

// List returns every stored country in insertion order.
func (s *InMemory) List(_ context.Context) ([]*models.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Country, len(s.order))
	copy(out, s.order)
	return out, nil
}
