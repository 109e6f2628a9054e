package stats

import (
	"context"
	"sync"
)

// MemoryRepository keeps user stats in process memory. Suitable for
// single-instance deployments and tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*UserStats
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]*UserStats)}
}

func (r *MemoryRepository) Get(_ context.Context, userID string) (*UserStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	if !ok {
		return nil, ErrNotFound
	}

	// Copy so callers cannot mutate the stored history.
	out := *u
	out.History = append([]Summary(nil), u.History...)
	return &out, nil
}

func (r *MemoryRepository) Record(_ context.Context, userID string, s Summary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		u = &UserStats{UserID: userID}
		r.users[userID] = u
	}
	u.Append(s)
	return nil
}
