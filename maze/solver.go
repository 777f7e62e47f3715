package maze

import "errors"

// ErrNoPath is returned when the solver exhausts the grid without reaching
// the end cell. On a correctly carved maze every cell is reachable, so this
// signals an internal inconsistency rather than a recoverable condition.
var ErrNoPath = errors.New("no path between start and end")

// Solve finds the path from start to end over the carved grid, following
// only open walls. The carved grid is a spanning tree, so the path is
// unique and a depth-first walk that lands on the end cell holds the whole
// path on its stack.
//
// Traversal state is local to the call; the grid is never written to, so a
// finished maze stays read-only.
func Solve(grid *Grid, start, end CellPosition) ([]CellPosition, error) {
	if !grid.InBound(start.Row, start.Col) || !grid.InBound(end.Row, end.Col) {
		return nil, ErrOutOfBounds
	}

	visited := map[CellPosition]struct{}{start: {}}
	stack := []CellPosition{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		if current == end {
			path := make([]CellPosition, len(stack))
			copy(path, stack)
			return path, nil
		}

		next, ok := nextOpenUnvisited(grid, current, visited)
		if !ok {
			stack = stack[:len(stack)-1]
			continue
		}

		visited[next] = struct{}{}
		stack = append(stack, next)
	}

	return nil, ErrNoPath
}

// nextOpenUnvisited returns one neighbor of pos that is connected through
// an open wall and has not been walked yet. Directions are probed in a
// fixed order so repeated solves of the same grid take identical steps.
func nextOpenUnvisited(grid *Grid, pos CellPosition, visited map[CellPosition]struct{}) (CellPosition, bool) {
	for _, dir := range []string{"North", "South", "East", "West"} {
		if !grid.IsOpen(pos, dir) {
			continue
		}
		delta := Directions[dir]
		next := CellPosition{Row: pos.Row + delta.Row, Col: pos.Col + delta.Col}
		if _, seen := visited[next]; seen {
			continue
		}
		return next, true
	}
	return CellPosition{}, false
}
