package snapshots

import (
	"context"
	"sync"

	"github.com/vadim010975/retro-tactics/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage. It
// keeps the encoded form so callers never share state with the store.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string][]byte
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string][]byte),
	}
}

// Save stores a snapshot
func (r *InMemoryRepository) Save(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}
	data, err := encode(input.Snapshot)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[input.GameID] = data

	return &SaveOutput{Success: true}, nil
}

// Get retrieves a snapshot by game ID
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if err := validateGameID(input.GameID); err != nil {
		return nil, err
	}

	r.mu.RLock()
	data, exists := r.store[input.GameID]
	r.mu.RUnlock()
	if !exists {
		return nil, notFound(input.GameID)
	}

	snap, err := decode(input.GameID, data)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Snapshot: snap}, nil
}

// Delete removes a snapshot
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if err := validateGameID(input.GameID); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.store[input.GameID]; !exists {
		return nil, notFound(input.GameID)
	}
	delete(r.store, input.GameID)

	return &DeleteOutput{Success: true}, nil
}
