package maze

// Cell represents a single cell in a maze grid.
// It includes properties for walls on each side and a visited marker
// that is only meaningful while the maze is being carved.
type Cell struct {
	// NorthWall indicates whether there is a wall on the north side of the cell.
	NorthWall bool
	// SouthWall indicates whether there is a wall on the south side of the cell.
	SouthWall bool
	// EastWall indicates whether there is a wall on the east side of the cell.
	EastWall bool
	// WestWall indicates whether there is a wall on the west side of the cell.
	WestWall bool
	// Visited marks the cell as reached during generation.
	Visited bool
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// Move represents a movement from one cell to another in a specific direction.
type Move struct {
	From      CellPosition // Starting cell
	To        CellPosition // Destination cell
	Direction string       // Direction of the move (North, South, East, West)
}

// Directions maps each compass direction to its row/column delta.
var Directions = map[string]CellPosition{
	"North": {Row: -1, Col: 0},
	"South": {Row: 1, Col: 0},
	"East":  {Row: 0, Col: 1},
	"West":  {Row: 0, Col: -1},
}

var opposites = map[string]string{
	"North": "South",
	"South": "North",
	"East":  "West",
	"West":  "East",
}

// Opposite returns the direction facing the given one, or an empty
// string for an unknown direction.
func Opposite(direction string) string {
	return opposites[direction]
}
