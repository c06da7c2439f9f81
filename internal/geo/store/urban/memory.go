package urban

import (
	"context"
	"sync"

	"georef/internal/geo/models"
	id "georef/pkg/domain"
	"georef/pkg/platform/sentinel"
)

// InMemory keeps urban areas of every kind in one collection, distinguished
// by their kind tag. Urban ISO codes carry no uniqueness guarantee, so the
// only index is the identifier.
type InMemory struct {
	mu    sync.RWMutex
	byID  map[id.UrbanID]*models.Urban
	order []*models.Urban
}

func NewInMemory() *InMemory {
	return &InMemory{
		byID: make(map[id.UrbanID]*models.Urban),
	}
}

// Create stores an urban area. Returns sentinel.ErrInvalidState for transient
// input and sentinel.ErrConflict when the identifier is taken.
func (s *InMemory) Create(_ context.Context, u *models.Urban) error {
	if u.IsTransient() {
		return sentinel.ErrInvalidState
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[u.ID]; exists {
		return sentinel.ErrConflict
	}
	s.byID[u.ID] = u
	s.order = append(s.order, u)
	return nil
}

func (s *InMemory) FindByID(_ context.Context, urbanID id.UrbanID) (*models.Urban, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u, exists := s.byID[urbanID]; exists {
		return u, nil
	}
	return nil, sentinel.ErrNotFound
}

// ListByDivision returns the urban areas of one division in insertion order.
func (s *InMemory) ListByDivision(_ context.Context, divisionID id.DivisionID) ([]*models.Urban, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Urban
	for _, u := range s.order {
		if u.DivisionID == divisionID {
			out = append(out, u)
		}
	}
	return out, nil
}

// ListByKind returns the urban areas carrying the given tag in insertion order.
func (s *InMemory) ListByKind(_ context.Context, kind models.UrbanKind) ([]*models.Urban, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Urban
	for _, u := range s.order {
		if u.Kind == kind {
			out = append(out, u)
		}
	}
	return out, nil
}

// List returns every stored urban area in insertion order.
func (s *InMemory) List(_ context.Context) ([]*models.Urban, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Urban, len(s.order))
	copy(out, s.order)
	return out, nil
}
