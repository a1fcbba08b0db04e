package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"deeplinkr/internal/app/model"
)

// MemoryLinkRepository is a mutex-guarded in-process implementation of
// LinkRepository. It satisfies the same contract as the Postgres-backed
// repository (put-if-absent create, atomic increment) and is the store used
// in tests.
type MemoryLinkRepository struct {
	mu    sync.RWMutex
	links map[string]*model.Link
}

// NewMemoryLinkRepository returns an empty in-memory repository.
func NewMemoryLinkRepository() *MemoryLinkRepository {
	return &MemoryLinkRepository{links: make(map[string]*model.Link)}
}

func (r *MemoryLinkRepository) Create(_ context.Context, link *model.Link) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.links[link.Code]; exists {
		return ErrCodeTaken
	}
	stored := *link
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.links[link.Code] = &stored
	return nil
}

func (r *MemoryLinkRepository) GetByCode(_ context.Context, code string) (*model.Link, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	link, ok := r.links[code]
	if !ok {
		return nil, ErrLinkNotFound
	}
	copied := *link
	return &copied, nil
}

func (r *MemoryLinkRepository) IncrementClicks(_ context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	link, ok := r.links[code]
	if !ok {
		return ErrLinkNotFound
	}
	link.ClickCount++
	return nil
}

func (r *MemoryLinkRepository) List(_ context.Context, limit, offset int) ([]model.Link, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]model.Link, 0, len(r.links))
	for _, link := range r.links {
		all = append(all, *link)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}
