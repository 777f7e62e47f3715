package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGrid(t *testing.T) {
	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 5}, {5, 0}, {0, 0}, {-1, 3}} {
			_, err := NewGrid(dims[0], dims[1])
			assert.ErrorIs(t, err, ErrInvalidDimensions)
		}
	})

	t.Run("starts with every wall closed", func(t *testing.T) {
		grid, err := NewGrid(3, 2)
		assert.NoError(t, err)

		for row := 0; row < grid.Height; row++ {
			for col := 0; col < grid.Width; col++ {
				cell := grid.Cells[row][col]
				assert.True(t, cell.NorthWall && cell.SouthWall && cell.EastWall && cell.WestWall)
				assert.False(t, cell.Visited)
			}
		}
	})
}

func TestNeighbors(t *testing.T) {
	grid, err := NewGrid(3, 3)
	assert.NoError(t, err)

	t.Run("interior cell has four neighbors", func(t *testing.T) {
		moves := grid.Neighbors(CellPosition{Row: 1, Col: 1})
		assert.Len(t, moves, 4)
	})

	t.Run("corner cell has two neighbors", func(t *testing.T) {
		moves := grid.Neighbors(CellPosition{Row: 0, Col: 0})
		assert.Len(t, moves, 2)
		for _, move := range moves {
			assert.True(t, grid.InBound(move.To.Row, move.To.Col))
		}
	})

	t.Run("edge cell has three neighbors", func(t *testing.T) {
		moves := grid.Neighbors(CellPosition{Row: 0, Col: 1})
		assert.Len(t, moves, 3)
	})
}

func TestOpenWall(t *testing.T) {
	t.Run("opens both sides", func(t *testing.T) {
		grid, err := NewGrid(2, 2)
		assert.NoError(t, err)

		move := Move{
			From:      CellPosition{Row: 0, Col: 0},
			To:        CellPosition{Row: 1, Col: 0},
			Direction: "South",
		}
		assert.NoError(t, grid.OpenWall(move))

		assert.True(t, grid.IsOpen(move.From, "South"))
		assert.True(t, grid.IsOpen(move.To, "North"))
		assert.False(t, grid.IsOpen(move.From, "East"))
	})

	t.Run("rejects out-of-bounds endpoints", func(t *testing.T) {
		grid, err := NewGrid(2, 2)
		assert.NoError(t, err)

		move := Move{
			From:      CellPosition{Row: 0, Col: 1},
			To:        CellPosition{Row: 0, Col: 2},
			Direction: "East",
		}
		assert.ErrorIs(t, grid.OpenWall(move), ErrOutOfBounds)
	})

	t.Run("rejects unknown direction", func(t *testing.T) {
		grid, err := NewGrid(2, 2)
		assert.NoError(t, err)

		move := Move{
			From:      CellPosition{Row: 0, Col: 0},
			To:        CellPosition{Row: 0, Col: 1},
			Direction: "Sideways",
		}
		assert.Error(t, grid.OpenWall(move))
	})
}

func TestIsOpen(t *testing.T) {
	grid, err := NewGrid(2, 1)
	assert.NoError(t, err)

	t.Run("closed out of bounds", func(t *testing.T) {
		assert.False(t, grid.IsOpen(CellPosition{Row: 5, Col: 5}, "North"))
	})

	t.Run("closed for unknown direction", func(t *testing.T) {
		assert.False(t, grid.IsOpen(CellPosition{Row: 0, Col: 0}, "Up"))
	})
}

func TestReset(t *testing.T) {
	grid, err := NewGrid(2, 2)
	assert.NoError(t, err)

	_ = grid.OpenWall(Move{
		From:      CellPosition{Row: 0, Col: 0},
		To:        CellPosition{Row: 0, Col: 1},
		Direction: "East",
	})
	grid.Cells[0][0].Visited = true

	grid.Reset()

	assert.False(t, grid.IsOpen(CellPosition{Row: 0, Col: 0}, "East"))
	assert.False(t, grid.Cells[0][0].Visited)
}

func TestOpposite(t *testing.T) {
	assert.Equal(t, "South", Opposite("North"))
	assert.Equal(t, "North", Opposite("South"))
	assert.Equal(t, "West", Opposite("East"))
	assert.Equal(t, "East", Opposite("West"))
	assert.Equal(t, "", Opposite("Diagonal"))
}
