package game

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists the four canonical directions in a stable order.
var Directions = []Direction{Up, Down, Left, Right}

var directionDeltas = map[Direction]Position{
	Up:    {Row: -1, Col: 0},
	Down:  {Row: 1, Col: 0},
	Left:  {Row: 0, Col: -1},
	Right: {Row: 0, Col: 1},
}

var directionNames = map[Direction]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

func (d Direction) Delta() Position {
	return directionDeltas[d]
}

func (d Direction) String() string {
	return directionNames[d]
}

// DirectionFromName maps a canonical direction name back to its Direction.
func DirectionFromName(name string) (Direction, bool) {
	for dir, dirName := range directionNames {
		if dirName == name {
			return dir, true
		}
	}
	return Up, false
}

func (p Position) Step(d Direction) Position {
	delta := d.Delta()
	return Position{Row: p.Row + delta.Row, Col: p.Col + delta.Col}
}

func GetManhattanDistance(a, b Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
