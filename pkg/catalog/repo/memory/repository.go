package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/cineverse/catalog/pkg/catalog"
)

// Repository implements catalog.Repository using in-memory storage.
// Intended for tests and single-process development servers.
type Repository struct {
	mu       sync.RWMutex
	contents map[string]*catalog.Content
	seq      map[string]uint64 // insertion order, tie-break for equal timestamps
	nextSeq  uint64
}

// New creates a new in-memory repository
func New() catalog.Repository {
	return &Repository{
		contents: make(map[string]*catalog.Content),
		seq:      make(map[string]uint64),
	}
}

func (r *Repository) CreateContent(ctx context.Context, content *catalog.Content) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if content.ID == "" {
		content.ID = uuid.NewString()
	}

	// Store a copy to avoid external modifications
	r.contents[content.ID] = content.Clone()
	r.nextSeq++
	r.seq[content.ID] = r.nextSeq

	return nil
}

func (r *Repository) GetContent(ctx context.Context, id string) (*catalog.Content, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	content, exists := r.contents[id]
	if !exists {
		return nil, catalog.ErrContentNotFound
	}
	return content.Clone(), nil
}

func (r *Repository) ListContent(ctx context.Context) ([]*catalog.Content, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*catalog.Content, 0, len(r.contents))
	for _, content := range r.contents {
		result = append(result, content.Clone())
	}

	// Sort by created_at descending, newest insertion first on ties
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return r.seq[a.ID] > r.seq[b.ID]
	})

	return result, nil
}

func (r *Repository) UpdateContent(ctx context.Context, content *catalog.Content) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.contents[content.ID]; !exists {
		return catalog.ErrContentNotFound
	}

	r.contents[content.ID] = content.Clone()

	return nil
}

func (r *Repository) DeleteContent(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.contents[id]; !exists {
		return catalog.ErrContentNotFound
	}

	delete(r.contents, id)
	delete(r.seq, id)
	return nil
}
