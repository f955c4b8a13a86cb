package itinerary

import (
	"sync"

	"enjoypark/models"
	"enjoypark/utils"
)

// Store keeps planner sessions in memory. Nothing survives a restart;
// the planner is scratch space for a single visit.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Itinerary
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Itinerary)}
}

func (s *Store) Create(name, visitDate string) Itinerary {
	if name == "" {
		name = DefaultName
	}
	it := &Itinerary{
		ID:        utils.GetUUID(),
		Name:      name,
		VisitDate: visitDate,
		Items:     []models.PlannerItem{},
	}
	s.mu.Lock()
	s.sessions[it.ID] = it
	s.mu.Unlock()
	return snapshot(it)
}

// Get returns a snapshot of the session; mutations go through Update.
func (s *Store) Get(id string) (Itinerary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.sessions[id]
	if !ok {
		return Itinerary{}, false
	}
	return snapshot(it), true
}

// Update runs fn on the session under the store lock and returns the
// resulting snapshot.
func (s *Store) Update(id string, fn func(*Itinerary)) (Itinerary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.sessions[id]
	if !ok {
		return Itinerary{}, false
	}
	fn(it)
	return snapshot(it), true
}

func snapshot(it *Itinerary) Itinerary {
	out := *it
	out.Items = make([]models.PlannerItem, len(it.Items))
	copy(out.Items, it.Items)
	return out
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
