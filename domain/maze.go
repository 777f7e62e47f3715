// Package domain holds the records the service stores and serves.
package domain

import (
	"time"

	"github.com/beka-birhanu/mazegen-api/maze"
	"github.com/google/uuid"
)

// Position identifies a cell by its row and column.
type Position struct {
	Row int `json:"row"` // Row index of the cell
	Col int `json:"col"` // Column index of the cell
}

// CellWalls captures the wall state of one finished cell.
type CellWalls struct {
	North bool `json:"north"` // North indicates a wall on the north side.
	South bool `json:"south"` // South indicates a wall on the south side.
	East  bool `json:"east"`  // East indicates a wall on the east side.
	West  bool `json:"west"`  // West indicates a wall on the west side.
}

// Maze is the stored form of a built maze: grid dimensions, per-cell wall
// state, the endpoints, the solution path, and an ASCII rendering.
type Maze struct {
	ID        uuid.UUID     `json:"id"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Start     Position      `json:"start"`
	End       Position      `json:"end"`
	Cells     [][]CellWalls `json:"cells"` // Indexed [row][col]
	Path      []Position    `json:"path"`
	Rendered  string        `json:"rendered"`
	CreatedAt time.Time     `json:"created_at"`
}

// NewMaze snapshots a built maze into a storable record.
func NewMaze(id uuid.UUID, m *maze.Maze) *Maze {
	cells := make([][]CellWalls, m.Height())
	for row := range cells {
		cells[row] = make([]CellWalls, m.Width())
		for col := range cells[row] {
			pos := maze.CellPosition{Row: row, Col: col}
			cells[row][col] = CellWalls{
				North: !m.IsOpen(pos, "North"),
				South: !m.IsOpen(pos, "South"),
				East:  !m.IsOpen(pos, "East"),
				West:  !m.IsOpen(pos, "West"),
			}
		}
	}

	path := make([]Position, 0, len(m.Path()))
	for _, pos := range m.Path() {
		path = append(path, Position{Row: pos.Row, Col: pos.Col})
	}

	return &Maze{
		ID:        id,
		Width:     m.Width(),
		Height:    m.Height(),
		Start:     Position{Row: m.Start().Row, Col: m.Start().Col},
		End:       Position{Row: m.End().Row, Col: m.End().Col},
		Cells:     cells,
		Path:      path,
		Rendered:  m.Solution(),
		CreatedAt: time.Now().UTC(),
	}
}
