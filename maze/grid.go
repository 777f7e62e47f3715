package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a grid is requested with a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("maze dimensions must be at least 1x1")

	// ErrOutOfBounds is returned when a move or position refers to a cell
	// outside the grid.
	ErrOutOfBounds = errors.New("cell position out of grid bounds")
)

// Grid is a rectangular arrangement of cells. A fresh grid has every wall
// in place and every cell unvisited; the generator carves passages into it.
type Grid struct {
	Width  int       // Width of the grid (number of columns)
	Height int       // Height of the grid (number of rows)
	Cells  [][]*Cell // 2D grid of cells, indexed [row][col]
}

// NewGrid allocates a width x height grid with all walls closed.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	cells := make([][]*Cell, height)
	for i := range cells {
		cells[i] = make([]*Cell, width)
	}

	g := &Grid{
		Width:  width,
		Height: height,
		Cells:  cells,
	}
	g.Reset()
	return g, nil
}

// Reset restores the grid to its initial state: every wall closed and
// every cell unvisited.
func (g *Grid) Reset() {
	for i := range g.Cells {
		for j := range g.Cells[i] {
			g.Cells[i][j] = &Cell{
				NorthWall: true,
				SouthWall: true,
				EastWall:  true,
				WestWall:  true,
			}
		}
	}
}

// InBound reports whether the given row and column fall inside the grid.
func (g *Grid) InBound(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// Neighbors finds all valid moves from a given cell position. Cells on an
// edge or corner yield fewer than four moves.
func (g *Grid) Neighbors(pos CellPosition) []Move {
	var result []Move
	for dir, delta := range Directions {
		neighbor := CellPosition{Row: pos.Row + delta.Row, Col: pos.Col + delta.Col}
		if g.InBound(neighbor.Row, neighbor.Col) {
			result = append(result, Move{From: pos, To: neighbor, Direction: dir})
		}
	}
	return result
}

// OpenWall removes the wall between two adjacent cells in the direction of
// the move, on both sides. Both endpoints must be inside the grid.
func (g *Grid) OpenWall(move Move) error {
	if !g.InBound(move.From.Row, move.From.Col) || !g.InBound(move.To.Row, move.To.Col) {
		return fmt.Errorf("%w: %v -> %v", ErrOutOfBounds, move.From, move.To)
	}

	switch move.Direction {
	case "North":
		g.Cells[move.From.Row][move.From.Col].NorthWall = false
		g.Cells[move.To.Row][move.To.Col].SouthWall = false
	case "South":
		g.Cells[move.From.Row][move.From.Col].SouthWall = false
		g.Cells[move.To.Row][move.To.Col].NorthWall = false
	case "East":
		g.Cells[move.From.Row][move.From.Col].EastWall = false
		g.Cells[move.To.Row][move.To.Col].WestWall = false
	case "West":
		g.Cells[move.From.Row][move.From.Col].WestWall = false
		g.Cells[move.To.Row][move.To.Col].EastWall = false
	default:
		return fmt.Errorf("unknown direction %q", move.Direction)
	}

	return nil
}

// IsOpen reports whether the wall of the cell at pos in the given direction
// has been removed. Out-of-bounds positions and unknown directions are
// treated as closed.
func (g *Grid) IsOpen(pos CellPosition, direction string) bool {
	if !g.InBound(pos.Row, pos.Col) {
		return false
	}

	cell := g.Cells[pos.Row][pos.Col]
	switch direction {
	case "North":
		return !cell.NorthWall
	case "South":
		return !cell.SouthWall
	case "East":
		return !cell.EastWall
	case "West":
		return !cell.WestWall
	default:
		return false
	}
}
