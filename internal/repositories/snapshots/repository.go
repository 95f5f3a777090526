// Package snapshots stores saved games keyed by game ID
package snapshots

//go:generate mockgen -destination=mock/mock_repository.go -package=snapshotsmock github.com/vadim010975/retro-tactics/internal/repositories/snapshots Repository

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/vadim010975/retro-tactics/internal/entities"
	"github.com/vadim010975/retro-tactics/internal/errors"
)

const (
	errGameIDEmpty   = "game ID cannot be empty"
	errSnapshotNil   = "snapshot cannot be nil"
	errInputNil      = "input is required"
	errNotFound      = "no saved game"
	errCorruptRecord = "saved game is corrupt"
)

// Repository defines the storage interface for saved games
type Repository interface {
	// Save stores the snapshot of a game, replacing any earlier one
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get returns the snapshot of a game
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Delete removes the snapshot of a game
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the request for saving a snapshot
type SaveInput struct {
	GameID   string
	Snapshot *entities.Snapshot
}

// SaveOutput defines the response for saving a snapshot
type SaveOutput struct {
	Success bool
}

// GetInput defines the request for loading a snapshot
type GetInput struct {
	GameID string
}

// GetOutput defines the response for loading a snapshot
type GetOutput struct {
	Snapshot *entities.Snapshot
}

// DeleteInput defines the request for deleting a snapshot
type DeleteInput struct {
	GameID string
}

// DeleteOutput defines the response for deleting a snapshot
type DeleteOutput struct {
	Success bool
}

func validateSave(input *SaveInput) error {
	if input == nil {
		return errors.InvalidArgument(errInputNil)
	}
	if strings.TrimSpace(input.GameID) == "" {
		return errors.InvalidArgument(errGameIDEmpty)
	}
	if input.Snapshot == nil {
		return errors.InvalidArgument(errSnapshotNil)
	}
	return nil
}

func validateGameID(gameID string) error {
	if strings.TrimSpace(gameID) == "" {
		return errors.InvalidArgument(errGameIDEmpty)
	}
	return nil
}

// encode and decode are shared by every store so all of them hold the same
// JSON document
func encode(snap *entities.Snapshot) ([]byte, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal snapshot")
	}
	return data, nil
}

func decode(gameID string, data []byte) (*entities.Snapshot, error) {
	var snap entities.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, errCorruptRecord).
			WithMeta("game_id", gameID)
	}
	return &snap, nil
}

func notFound(gameID string) error {
	return errors.NotFound(errNotFound).WithMeta("game_id", gameID)
}
