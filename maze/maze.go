/*
Package maze provides tools for generating and solving rectangular mazes.

A maze is carved into a Grid of Cells by a randomized depth-first
backtracker, producing a spanning tree over the cells: every cell is
reachable and exactly one simple path exists between any two of them.
The solver walks that tree to recover the unique path between the start
and end cells.

Build composes the pieces into one call and returns a frozen Maze that
exposes dimensions, per-cell wall state, the endpoints, the solution
path, and ASCII renderings for quick inspection.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSameStartEnd is returned when the start and end cells coincide.
	ErrSameStartEnd = errors.New("start and end cells must be distinct")
)

// Config describes a maze build request.
type Config struct {
	Width  int          // Number of columns, at least 1
	Height int          // Number of rows, at least 1
	Start  CellPosition // Entry cell, defaults to the top-left corner
	End    CellPosition // Exit cell, ignored when FarthestEnd is set
	Seed   int64        // Random seed; 0 picks a time-based seed

	// FarthestEnd replaces End with the deepest cell the generator
	// reaches, making the exit the hardest cell to get to from Start.
	FarthestEnd bool
}

// Maze is a finished, immutable maze: a carved grid plus the solved path
// between its endpoints. It is safe to share between readers.
type Maze struct {
	grid  *Grid
	start CellPosition
	end   CellPosition
	path  []CellPosition
}

// Build validates the configuration, carves a maze, and solves it.
// All validation failures surface before any generation work starts.
func Build(cfg Config) (*Maze, error) {
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cfg.Width, cfg.Height)
	}

	grid, err := NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	if !grid.InBound(cfg.Start.Row, cfg.Start.Col) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, cfg.Start)
	}

	end := cfg.End
	if !cfg.FarthestEnd {
		if !grid.InBound(end.Row, end.Col) {
			return nil, fmt.Errorf("%w: end %v", ErrOutOfBounds, end)
		}
		if end == cfg.Start {
			return nil, ErrSameStartEnd
		}
	}

	generator := NewGenerator(cfg.Seed)
	farthest, err := generator.Carve(grid, cfg.Start)
	if err != nil {
		return nil, err
	}

	if cfg.FarthestEnd {
		end = farthest
		if end == cfg.Start {
			return nil, ErrSameStartEnd
		}
	}

	path, err := Solve(grid, cfg.Start, end)
	if err != nil {
		return nil, err
	}

	return &Maze{
		grid:  grid,
		start: cfg.Start,
		end:   end,
		path:  path,
	}, nil
}

// Width returns the number of columns in the maze.
func (m *Maze) Width() int {
	return m.grid.Width
}

// Height returns the number of rows in the maze.
func (m *Maze) Height() int {
	return m.grid.Height
}

// Start returns the entry cell of the maze.
func (m *Maze) Start() CellPosition {
	return m.start
}

// End returns the exit cell of the maze.
func (m *Maze) End() CellPosition {
	return m.end
}

// IsOpen reports whether the wall of the cell at pos in the given
// direction has been removed.
func (m *Maze) IsOpen(pos CellPosition, direction string) bool {
	return m.grid.IsOpen(pos, direction)
}

// Path returns a copy of the solution path, from start to end inclusive.
func (m *Maze) Path() []CellPosition {
	path := make([]CellPosition, len(m.path))
	copy(path, m.path)
	return path
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	return m.render(false)
}

// Solution renders the maze with the solved path marked: the start cell
// as S, the end cell as E, and intermediate path cells as *.
func (m *Maze) Solution() string {
	return m.render(true)
}

func (m *Maze) render(withPath bool) string {
	onPath := make(map[CellPosition]struct{}, len(m.path))
	if withPath {
		for _, pos := range m.path {
			onPath[pos] = struct{}{}
		}
	}

	var output string

	// Top boundary
	output += "+" + strings.Repeat("---+", m.grid.Width) + "\n"

	for row := 0; row < m.grid.Height; row++ {
		// Cell rows
		cellRow := "|"
		for col := 0; col < m.grid.Width; col++ {
			pos := CellPosition{Row: row, Col: col}

			switch {
			case withPath && pos == m.start:
				cellRow += " S "
			case withPath && pos == m.end:
				cellRow += " E "
			default:
				if _, ok := onPath[pos]; ok {
					cellRow += " * "
				} else {
					cellRow += "   "
				}
			}

			// Add east wall or space
			if m.grid.Cells[row][col].EastWall {
				cellRow += "|"
			} else {
				cellRow += " "
			}
		}
		output += cellRow + "\n"

		// Wall rows
		wallRow := "+"
		for col := 0; col < m.grid.Width; col++ {
			if m.grid.Cells[row][col].SouthWall {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output += wallRow + "\n"
	}

	return output
}
