// Package mazeapi provides structures and utilities for building and
// retrieving mazes over HTTP.
package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/mazegen-api/domain"
	"github.com/google/uuid"
)

// PositionDTO identifies a cell by row and column.
type PositionDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// BuildMazeRequest represents a request to build a new maze.
type BuildMazeRequest struct {
	Width  int          `json:"width" binding:"required"`
	Height int          `json:"height" binding:"required"`
	Start  *PositionDTO `json:"start"`
	End    *PositionDTO `json:"end"`
	Seed   int64        `json:"seed"`

	// FarthestEnd places the exit at the deepest cell of the maze
	// instead of a fixed coordinate.
	FarthestEnd bool `json:"farthest_end"`
}

// CellWallsDTO reports the wall state of one cell.
type CellWallsDTO struct {
	North bool `json:"north"`
	South bool `json:"south"`
	East  bool `json:"east"`
	West  bool `json:"west"`
}

// MazeResponse represents a built maze: dimensions, endpoints, per-cell
// wall state, the solution path, and an ASCII rendering.
type MazeResponse struct {
	ID        uuid.UUID        `json:"id"`
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	Start     PositionDTO      `json:"start"`
	End       PositionDTO      `json:"end"`
	Cells     [][]CellWallsDTO `json:"cells"`
	Path      []PositionDTO    `json:"path"`
	Rendered  string           `json:"rendered"`
	CreatedAt time.Time        `json:"created_at"`
}

// newMazeResponse maps a stored maze record to its response form.
func newMazeResponse(record *dmn.Maze) *MazeResponse {
	cells := make([][]CellWallsDTO, len(record.Cells))
	for row := range record.Cells {
		cells[row] = make([]CellWallsDTO, len(record.Cells[row]))
		for col, walls := range record.Cells[row] {
			cells[row][col] = CellWallsDTO{
				North: walls.North,
				South: walls.South,
				East:  walls.East,
				West:  walls.West,
			}
		}
	}

	path := make([]PositionDTO, 0, len(record.Path))
	for _, pos := range record.Path {
		path = append(path, PositionDTO{Row: pos.Row, Col: pos.Col})
	}

	return &MazeResponse{
		ID:        record.ID,
		Width:     record.Width,
		Height:    record.Height,
		Start:     PositionDTO{Row: record.Start.Row, Col: record.Start.Col},
		End:       PositionDTO{Row: record.End.Row, Col: record.End.Col},
		Cells:     cells,
		Path:      path,
		Rendered:  record.Rendered,
		CreatedAt: record.CreatedAt,
	}
}
