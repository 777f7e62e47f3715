package maze

import (
	"math/rand"
	"time"
)

// Generator carves a perfect maze into a grid using a randomized
// depth-first backtracker. Backtracking uses an explicit stack rather
// than recursion so large grids cannot exhaust the call stack.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator seeded with the given value.
// A zero seed falls back to the current time, so production mazes vary
// while tests can pin the stream.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Carve generates a spanning-tree maze over the grid, starting from the
// given cell. Every cell is visited exactly once and each carve step opens
// exactly one wall toward a previously unvisited cell, so the open-wall
// graph ends up connected and acyclic.
//
// Carve returns the deepest cell reached during the walk, measured by
// stack depth. Callers that want the "hardest" endpoint can use it as the
// maze exit.
func (g *Generator) Carve(grid *Grid, start CellPosition) (CellPosition, error) {
	if !grid.InBound(start.Row, start.Col) {
		return CellPosition{}, ErrOutOfBounds
	}

	farthest := start
	maxDepth := 0

	stack := []CellPosition{start}
	grid.Cells[start.Row][start.Col].Visited = true

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		if len(stack) > maxDepth {
			maxDepth = len(stack)
			farthest = current
		}

		moves := g.unvisitedNeighbors(grid, current)
		if len(moves) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		move := moves[g.rng.Intn(len(moves))]
		if err := grid.OpenWall(move); err != nil {
			return CellPosition{}, err
		}
		grid.Cells[move.To.Row][move.To.Col].Visited = true
		stack = append(stack, move.To)
	}

	return farthest, nil
}

// unvisitedNeighbors filters the grid's neighbor moves down to those whose
// destination has not been carved into yet. The candidates are ordered by
// direction name so that a fixed seed always produces the same maze.
func (g *Generator) unvisitedNeighbors(grid *Grid, pos CellPosition) []Move {
	byDirection := make(map[string]Move, 4)
	for _, move := range grid.Neighbors(pos) {
		if !grid.Cells[move.To.Row][move.To.Col].Visited {
			byDirection[move.Direction] = move
		}
	}

	var result []Move
	for _, dir := range []string{"North", "South", "East", "West"} {
		if move, ok := byDirection[dir]; ok {
			result = append(result, move)
		}
	}
	return result
}
