package game

import "strings"

type Tile int

const (
	Background Tile = iota
	Hole
	Hat
	Visited
)

func (t Tile) Rune() rune {
	switch t {
	case Hole:
		return HoleRune
	case Hat:
		return HatRune
	case Visited:
		return VisitedRune
	default:
		return BackgroundRune
	}
}

func (t Tile) String() string {
	switch t {
	case Hole:
		return "hole"
	case Hat:
		return "hat"
	case Visited:
		return "visited"
	default:
		return "background"
	}
}

type Position struct {
	Row int
	Col int
}

// Grid is a fixed size field of tiles indexed by (row, col).
type Grid struct {
	Height int
	Width  int
	Tiles  [][]Tile
}

// NewGrid returns a grid filled with Background tiles and the start cell marked Visited.
func NewGrid(height int, width int) *Grid {
	tiles := make([][]Tile, height)
	for row := 0; row < height; row++ {
		tiles[row] = make([]Tile, width)
	}

	grid := &Grid{Height: height, Width: width, Tiles: tiles}
	grid.Tiles[0][0] = Visited
	return grid
}

// GridFromTiles wraps an existing tile matrix. Rows must share the same width.
func GridFromTiles(tiles [][]Tile) *Grid {
	width := 0
	if len(tiles) > 0 {
		width = len(tiles[0])
	}
	return &Grid{Height: len(tiles), Width: width, Tiles: tiles}
}

func (g *Grid) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Col >= 0 && pos.Row < g.Height && pos.Col < g.Width
}

func (g *Grid) At(pos Position) Tile {
	return g.Tiles[pos.Row][pos.Col]
}

func (g *Grid) Set(pos Position, tile Tile) {
	g.Tiles[pos.Row][pos.Col] = tile
}

// Count returns how many cells hold the given tile.
func (g *Grid) Count(tile Tile) int {
	count := 0
	for _, row := range g.Tiles {
		for _, t := range row {
			if t == tile {
				count++
			}
		}
	}
	return count
}

// HatPosition reports where the hat is, if there is one.
func (g *Grid) HatPosition() (Position, bool) {
	for row := range g.Tiles {
		for col, t := range g.Tiles[row] {
			if t == Hat {
				return Position{Row: row, Col: col}, true
			}
		}
	}
	return Position{}, false
}

func (g *Grid) String() string {
	var sb strings.Builder
	for _, row := range g.Tiles {
		for _, t := range row {
			sb.WriteRune(t.Rune())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
