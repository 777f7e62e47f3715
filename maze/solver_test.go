package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertValidPath checks that a path starts and ends where it should and
// that every consecutive pair of cells is adjacent with the shared wall
// open in both directions.
func assertValidPath(t *testing.T, grid *Grid, path []CellPosition, start, end CellPosition) {
	t.Helper()

	assert.NotEmpty(t, path)
	assert.Equal(t, start, path[0])
	assert.Equal(t, end, path[len(path)-1])

	for i := 1; i < len(path); i++ {
		prev, next := path[i-1], path[i]

		var direction string
		for dir, delta := range Directions {
			if prev.Row+delta.Row == next.Row && prev.Col+delta.Col == next.Col {
				direction = dir
				break
			}
		}

		assert.NotEmpty(t, direction, "cells %v and %v are not adjacent", prev, next)
		assert.True(t, grid.IsOpen(prev, direction))
		assert.True(t, grid.IsOpen(next, Opposite(direction)))
	}
}

func TestSolve(t *testing.T) {
	t.Run("path spans the carved maze", func(t *testing.T) {
		grid := carve(t, 9, 7, 11)
		start := CellPosition{Row: 0, Col: 0}
		end := CellPosition{Row: 6, Col: 8}

		path, err := Solve(grid, start, end)
		assert.NoError(t, err)
		assertValidPath(t, grid, path, start, end)
	})

	t.Run("single-cell path when start equals end", func(t *testing.T) {
		grid := carve(t, 3, 3, 11)
		pos := CellPosition{Row: 1, Col: 1}

		path, err := Solve(grid, pos, pos)
		assert.NoError(t, err)
		assert.Equal(t, []CellPosition{pos}, path)
	})

	t.Run("deterministic on a fixed grid", func(t *testing.T) {
		grid := carve(t, 8, 8, 5)
		start := CellPosition{Row: 0, Col: 0}
		end := CellPosition{Row: 7, Col: 7}

		first, err := Solve(grid, start, end)
		assert.NoError(t, err)

		for i := 0; i < 5; i++ {
			again, err := Solve(grid, start, end)
			assert.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})

	t.Run("forced corridor on a 2x1 grid", func(t *testing.T) {
		grid := carve(t, 2, 1, 77)

		path, err := Solve(grid, CellPosition{Row: 0, Col: 0}, CellPosition{Row: 0, Col: 1})
		assert.NoError(t, err)
		assert.Equal(t, []CellPosition{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, path)
	})

	t.Run("out-of-bounds endpoints rejected", func(t *testing.T) {
		grid := carve(t, 3, 3, 1)

		_, err := Solve(grid, CellPosition{Row: 0, Col: 0}, CellPosition{Row: 3, Col: 3})
		assert.ErrorIs(t, err, ErrOutOfBounds)

		_, err = Solve(grid, CellPosition{Row: -1, Col: 0}, CellPosition{Row: 0, Col: 0})
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("reports no path on a disconnected grid", func(t *testing.T) {
		// An uncarved grid violates the spanning-tree invariant on
		// purpose: nothing is reachable through closed walls.
		grid, err := NewGrid(3, 3)
		assert.NoError(t, err)

		_, err = Solve(grid, CellPosition{Row: 0, Col: 0}, CellPosition{Row: 2, Col: 2})
		assert.ErrorIs(t, err, ErrNoPath)
	})

	t.Run("does not loop between mutually open cells", func(t *testing.T) {
		// Two cells open toward each other form the smallest cycle a
		// naive walker could oscillate in.
		grid, err := NewGrid(2, 1)
		assert.NoError(t, err)
		assert.NoError(t, grid.OpenWall(Move{
			From:      CellPosition{Row: 0, Col: 0},
			To:        CellPosition{Row: 0, Col: 1},
			Direction: "East",
		}))

		path, err := Solve(grid, CellPosition{Row: 0, Col: 0}, CellPosition{Row: 0, Col: 1})
		assert.NoError(t, err)
		assert.Len(t, path, 2)
	})

	t.Run("grid untouched by solving", func(t *testing.T) {
		grid := carve(t, 4, 4, 21)

		before := make([]Cell, 0, 16)
		for row := range grid.Cells {
			for col := range grid.Cells[row] {
				before = append(before, *grid.Cells[row][col])
			}
		}

		_, err := Solve(grid, CellPosition{Row: 0, Col: 0}, CellPosition{Row: 3, Col: 3})
		assert.NoError(t, err)

		i := 0
		for row := range grid.Cells {
			for col := range grid.Cells[row] {
				assert.Equal(t, before[i], *grid.Cells[row][col])
				i++
			}
		}
	})
}
