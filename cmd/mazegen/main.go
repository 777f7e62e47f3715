// Command mazegen builds a maze on the terminal: it carves a random
// maze of the requested size, solves it, and prints the ASCII rendering.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/beka-birhanu/mazegen-api/maze"
)

func main() {
	var (
		width       = flag.Int("width", 20, "number of columns")
		height      = flag.Int("height", 20, "number of rows")
		seed        = flag.Int64("seed", 0, "random seed, 0 for time-based")
		start       = flag.String("start", "0,0", "start cell as row,col")
		end         = flag.String("end", "", "end cell as row,col, defaults to the bottom-right corner")
		farthestEnd = flag.Bool("farthest-end", false, "place the end at the deepest cell instead of -end")
		solution    = flag.Bool("solution", false, "mark the solved path in the output")
	)
	flag.Parse()

	cfg := maze.Config{
		Width:       *width,
		Height:      *height,
		Seed:        *seed,
		FarthestEnd: *farthestEnd,
	}

	startPos, err := parsePosition(*start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -start: %v\n", err)
		os.Exit(1)
	}
	cfg.Start = startPos

	if *end == "" {
		cfg.End = maze.CellPosition{Row: *height - 1, Col: *width - 1}
	} else {
		endPos, err := parsePosition(*end)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -end: %v\n", err)
			os.Exit(1)
		}
		cfg.End = endPos
	}

	m, err := maze.Build(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *solution {
		fmt.Print(m.Solution())
		fmt.Printf("path length: %d\n", len(m.Path()))
	} else {
		fmt.Print(m.String())
	}
}

// parsePosition parses a "row,col" pair.
func parsePosition(s string) (maze.CellPosition, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return maze.CellPosition{}, fmt.Errorf("expected row,col, got %q", s)
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return maze.CellPosition{}, fmt.Errorf("bad row in %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return maze.CellPosition{}, fmt.Errorf("bad col in %q: %w", s, err)
	}

	return maze.CellPosition{Row: row, Col: col}, nil
}
