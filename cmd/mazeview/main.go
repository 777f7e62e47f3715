// Command mazeview opens a window showing a freshly built maze with its
// solution highlighted: start in green, end in red, path in blue.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/beka-birhanu/mazegen-api/maze"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	maxWindowWidth  = 600
	maxWindowHeight = 600
	minCellPixels   = 3
	wallPixels      = 1
)

var (
	wallColor  = color.Black
	floorColor = color.White
	startColor = color.RGBA{G: 0xff, A: 0xff}
	endColor   = color.RGBA{R: 0xff, A: 0xff}
	pathColor  = color.RGBA{B: 0xff, A: 0xff}
)

// viewer shows a prerendered maze image. The maze never changes after
// startup, so all drawing happens once.
type viewer struct {
	canvas *ebiten.Image
}

func (v *viewer) Update() error {
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.DrawImage(v.canvas, nil)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	size := v.canvas.Bounds().Size()
	return size.X, size.Y
}

// drawRect draws a filled rectangle
func drawRect(dst *ebiten.Image, x, y, width, height int, clr color.Color) {
	for py := y; py < y+height; py++ {
		for px := x; px < x+width; px++ {
			if px >= 0 && px < dst.Bounds().Dx() && py >= 0 && py < dst.Bounds().Dy() {
				dst.Set(px, py, clr)
			}
		}
	}
}

// renderMaze paints the maze onto a fresh image: floor first, then the
// highlighted path and endpoints, then the walls on top.
func renderMaze(m *maze.Maze, cellSize int) *ebiten.Image {
	canvas := ebiten.NewImage(m.Width()*cellSize, m.Height()*cellSize)
	canvas.Fill(floorColor)

	for _, pos := range m.Path() {
		drawRect(canvas, pos.Col*cellSize, pos.Row*cellSize, cellSize, cellSize, pathColor)
	}
	drawRect(canvas, m.Start().Col*cellSize, m.Start().Row*cellSize, cellSize, cellSize, startColor)
	drawRect(canvas, m.End().Col*cellSize, m.End().Row*cellSize, cellSize, cellSize, endColor)

	for row := 0; row < m.Height(); row++ {
		for col := 0; col < m.Width(); col++ {
			pos := maze.CellPosition{Row: row, Col: col}
			x, y := col*cellSize, row*cellSize

			if !m.IsOpen(pos, "North") {
				drawRect(canvas, x, y, cellSize, wallPixels, wallColor)
			}
			if !m.IsOpen(pos, "South") {
				drawRect(canvas, x, y+cellSize-wallPixels, cellSize, wallPixels, wallColor)
			}
			if !m.IsOpen(pos, "West") {
				drawRect(canvas, x, y, wallPixels, cellSize, wallColor)
			}
			if !m.IsOpen(pos, "East") {
				drawRect(canvas, x+cellSize-wallPixels, y, wallPixels, cellSize, wallColor)
			}
		}
	}

	return canvas
}

func main() {
	var (
		width       = flag.Int("width", 20, "number of columns")
		height      = flag.Int("height", 20, "number of rows")
		seed        = flag.Int64("seed", 0, "random seed, 0 for time-based")
		farthestEnd = flag.Bool("farthest-end", true, "place the end at the deepest cell")
	)
	flag.Parse()

	cfg := maze.Config{
		Width:       *width,
		Height:      *height,
		Seed:        *seed,
		FarthestEnd: *farthestEnd,
	}
	if !cfg.FarthestEnd {
		cfg.End = maze.CellPosition{Row: *height - 1, Col: *width - 1}
	}

	m, err := maze.Build(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cellSize := min(maxWindowWidth / *width, maxWindowHeight / *height)
	if cellSize < minCellPixels {
		cellSize = minCellPixels
	}

	ebiten.SetWindowSize(m.Width()*cellSize, m.Height()*cellSize)
	ebiten.SetWindowTitle("Maze")

	if err := ebiten.RunGame(&viewer{canvas: renderMaze(m, cellSize)}); err != nil {
		log.Fatal(err)
	}
}
