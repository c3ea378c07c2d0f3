package customrole

import (
	"context"
	"sync"
)

// MemoryStore keeps roles in process memory. Values are copied in and out.
type MemoryStore struct {
	mu    sync.RWMutex
	roles map[string]CustomRole
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{roles: make(map[string]CustomRole)}
}

// Create stores a copy of role, or fails with ErrDuplicateID.
func (s *MemoryStore) Create(_ context.Context, role CustomRole) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.roles[role.ID]; ok {
		return ErrDuplicateID
	}
	s.roles[role.ID] = role.clone()
	return nil
}

// Get returns a copy of the role with id, or ErrNotFound.
func (s *MemoryStore) Get(_ context.Context, id string) (CustomRole, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	role, ok := s.roles[id]
	if !ok {
		return CustomRole{}, ErrNotFound
	}
	return role.clone(), nil
}

// List returns copies of every role, oldest first.
func (s *MemoryStore) List(_ context.Context) ([]CustomRole, error) {
	s.mu.RLock()
	out := make([]CustomRole, 0, len(s.roles))
	for _, role := range s.roles {
		out = append(out, role.clone())
	}
	s.mu.RUnlock()
	sortRoles(out)
	return out, nil
}

// Update replaces an existing role, or fails with ErrNotFound.
func (s *MemoryStore) Update(_ context.Context, role CustomRole) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.roles[role.ID]; !ok {
		return ErrNotFound
	}
	s.roles[role.ID] = role.clone()
	return nil
}

// Delete removes the role with id, or fails with ErrNotFound.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.roles[id]; !ok {
		return ErrNotFound
	}
	delete(s.roles, id)
	return nil
}
