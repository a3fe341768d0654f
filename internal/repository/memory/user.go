package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/dtroode/usersync/internal/model"
)

var _ model.UserStore = (*UserStore)(nil)

// UserStore is a map-backed model.UserStore used in tests and anywhere a
// real database is not available.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func NewUserStore() *UserStore {
	return &UserStore{
		users: make(map[string]model.User),
	}
}

func (s *UserStore) StreamAll(ctx context.Context, fn func(model.User) error) error {
	s.mu.RLock()
	ordered := make([]model.User, 0, len(s.users))
	for _, id := range slices.Sorted(maps.Keys(s.users)) {
		ordered = append(ordered, s.users[id])
	}
	s.mu.RUnlock()

	for _, user := range ordered {
		if err := fn(user); err != nil {
			return err
		}
	}
	return nil
}

func (s *UserStore) Update(ctx context.Context, user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return model.ErrNotFound
	}
	s.users[user.ID] = user
	return nil
}

func (s *UserStore) Insert(ctx context.Context, user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; ok {
		return fmt.Errorf("user %q already exists: %w", user.ID, model.ErrDataIntegrity)
	}
	s.users[user.ID] = user
	return nil
}

func (s *UserStore) DeleteVersioned(ctx context.Context, id string, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok || !user.UpdatedAt.Equal(updatedAt) {
		return model.ErrStaleRecord
	}
	delete(s.users, id)
	return nil
}

// Len reports the number of stored users.
func (s *UserStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
