package i

import (
	"context"
	"errors"

	dmn "github.com/beka-birhanu/mazegen-api/domain"
	"github.com/google/uuid"
)

// ErrMazeNotFound is returned when no record exists for the requested maze,
// or when the record has expired.
var ErrMazeNotFound = errors.New("maze not found")

// MazeRepo defines the interface for maze record storage. Records are
// ephemeral: implementations may expire them after a TTL.
type MazeRepo interface {
	// Save stores a maze record under its ID.
	Save(ctx context.Context, record *dmn.Maze) error

	// ByID retrieves a maze record by its unique ID.
	// Returns ErrMazeNotFound if the record is absent or expired.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error)

	// GetOrSet retrieves the record stored under a shared key, building
	// and storing it atomically when absent. Concurrent callers for the
	// same key must observe a single build.
	GetOrSet(ctx context.Context, key string, build func() (*dmn.Maze, error)) (*dmn.Maze, error)
}
