package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/dtroode/usersync/internal/model"
)

var _ model.PetStore = (*PetStore)(nil)

// PetStore is a map-backed model.PetStore used in tests and anywhere a real
// database is not available.
type PetStore struct {
	mu   sync.RWMutex
	pets map[string]model.Pet
}

func NewPetStore() *PetStore {
	return &PetStore{
		pets: make(map[string]model.Pet),
	}
}

func (s *PetStore) StreamAll(ctx context.Context, fn func(model.Pet) error) error {
	s.mu.RLock()
	ordered := make([]model.Pet, 0, len(s.pets))
	for _, id := range slices.Sorted(maps.Keys(s.pets)) {
		ordered = append(ordered, s.pets[id])
	}
	s.mu.RUnlock()

	for _, pet := range ordered {
		if err := fn(pet); err != nil {
			return err
		}
	}
	return nil
}

func (s *PetStore) Update(ctx context.Context, pet model.Pet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pets[pet.ID]; !ok {
		return model.ErrNotFound
	}
	s.pets[pet.ID] = pet
	return nil
}

func (s *PetStore) Insert(ctx context.Context, pet model.Pet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pets[pet.ID]; ok {
		return fmt.Errorf("pet %q already exists: %w", pet.ID, model.ErrDataIntegrity)
	}
	s.pets[pet.ID] = pet
	return nil
}

func (s *PetStore) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for id, pet := range s.pets {
		if pet.UserID == userID {
			delete(s.pets, id)
			deleted++
		}
	}
	return deleted, nil
}

// Len reports the number of stored pets.
func (s *PetStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pets)
}
