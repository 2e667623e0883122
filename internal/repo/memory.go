package repo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hmdeck/cruise-packing/internal/domain"
)

// memListRepo is the in-memory implementation of ListRepo: a mutex-guarded
// map keyed by list id. Records live for the process lifetime. The server
// falls back to it when no DATABASE_URL is configured, and tests use it for
// a real store without a database — construct a fresh instance per test.
type memListRepo struct {
	mu    sync.RWMutex
	lists map[string]domain.PackingList
}

// NewMemoryListRepo constructs an empty in-memory ListRepo.
func NewMemoryListRepo() ListRepo {
	return &memListRepo{lists: make(map[string]domain.PackingList)}
}

// Create assigns a fresh UUID and equal created_at/updated_at timestamps.
func (r *memListRepo) Create(_ context.Context, list domain.PackingList) (domain.PackingList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	list.ID = uuid.NewString()
	list.CreatedAt = now
	list.UpdatedAt = now
	if list.Items == nil {
		list.Items = map[string]domain.PackingItem{}
	}

	r.lists[list.ID] = copyList(list)
	return list, nil
}

// GetByID returns a copy of the stored record so callers can never mutate
// the store through a returned aggregate.
func (r *memListRepo) GetByID(_ context.Context, id string) (domain.PackingList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list, ok := r.lists[id]
	if !ok {
		return domain.PackingList{}, fmt.Errorf("repo.ListRepo.GetByID: %w", domain.ErrNotFound)
	}
	return copyList(list), nil
}

// List returns all stored records in unspecified order.
func (r *memListRepo) List(_ context.Context) ([]domain.PackingList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lists := make([]domain.PackingList, 0, len(r.lists))
	for _, l := range r.lists {
		lists = append(lists, copyList(l))
	}
	return lists, nil
}

// Update merges the patch under the write lock, so two updates to the same
// id apply one after the other and no partial merge is ever observable.
func (r *memListRepo) Update(_ context.Context, id string, patch domain.ListPatch) (domain.PackingList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.lists[id]
	if !ok {
		return domain.PackingList{}, fmt.Errorf("repo.ListRepo.Update: %w", domain.ErrNotFound)
	}

	updated := copyList(existing)
	patch.Apply(&updated)

	// updated_at must be strictly later than the previous value even on
	// clocks with coarse resolution.
	now := time.Now().UTC()
	if !now.After(existing.UpdatedAt) {
		now = existing.UpdatedAt.Add(time.Nanosecond)
	}
	updated.UpdatedAt = now

	r.lists[id] = copyList(updated)
	return updated, nil
}

// Delete removes a list by id.
func (r *memListRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lists[id]; !ok {
		return fmt.Errorf("repo.ListRepo.Delete: %w", domain.ErrNotFound)
	}
	delete(r.lists, id)
	return nil
}

// copyList returns a deep enough copy for isolation: the items map is the
// only mutable reference inside a PackingList.
func copyList(l domain.PackingList) domain.PackingList {
	items := make(map[string]domain.PackingItem, len(l.Items))
	for k, v := range l.Items {
		items[k] = v
	}
	l.Items = items
	return l
}
