package i

import (
	"context"

	dmn "github.com/beka-birhanu/mazegen-api/domain"
	"github.com/google/uuid"
)

// BuildRequest carries the parameters of a maze build.
type BuildRequest struct {
	Width  int           // Number of columns, at least 1
	Height int           // Number of rows, at least 1
	Start  *dmn.Position // Entry cell; nil defaults to the top-left corner
	End    *dmn.Position // Exit cell; nil defaults to the bottom-right corner
	Seed   int64         // Random seed; 0 picks a time-based seed

	// FarthestEnd makes the exit the deepest cell of the carved maze
	// instead of the configured End.
	FarthestEnd bool
}

// MazeCrafter defines the maze-building operations exposed to transports.
type MazeCrafter interface {
	// Create builds a maze from the request, stores it, and returns the
	// stored record.
	Create(ctx context.Context, req BuildRequest) (*dmn.Maze, error)

	// ByID retrieves a previously built maze.
	// Returns ErrMazeNotFound if the record is absent or expired.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error)

	// Daily returns the shared maze of the current UTC date, building it
	// on first access.
	Daily(ctx context.Context) (*dmn.Maze, error)
}
