package game

import (
	"math"
	"math/rand"
)

// GridConfig holds generation parameters after clamping.
type GridConfig struct {
	Height      int
	Width       int
	HolePercent float64
}

// NewGridConfig floors the dimensions to integers in [MinGridDimension, MaxGridDimension]
// and clamps the hole percentage to [0, MaxHolePercent].
func NewGridConfig(height, width, holePercent float64) GridConfig {
	return GridConfig{
		Height:      clampDimension(height),
		Width:       clampDimension(width),
		HolePercent: clampPercent(holePercent),
	}
}

func clampDimension(v float64) int {
	if math.IsNaN(v) || v < MinGridDimension {
		return MinGridDimension
	}
	if v > MaxGridDimension {
		return MaxGridDimension
	}
	return int(math.Floor(v))
}

func clampPercent(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	return math.Min(p, MaxHolePercent)
}

// HoleCount is floor(cells*percent/100), leaving room for the start and the hat.
func (c GridConfig) HoleCount() int {
	cells := c.Height * c.Width
	holes := int(math.Floor(float64(cells) * c.HolePercent / 100))
	return min(holes, cells-2)
}

type GenerationResult struct {
	Grid     *Grid
	Attempts int
	FellBack bool
}

// Generate builds random layouts until one is solvable. When the attempt budget
// runs out it returns the hole-free fallback layout with FellBack set.
func Generate(cfg GridConfig, rng *rand.Rand) GenerationResult {
	return generate(cfg, rng, MaxGenerationAttempts)
}

func generate(cfg GridConfig, rng *rand.Rand, maxAttempts int) GenerationResult {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		grid := randomLayout(cfg, rng)
		if IsSolvable(grid) {
			return GenerationResult{Grid: grid, Attempts: attempt}
		}
	}

	return GenerationResult{
		Grid:     FallbackLayout(cfg),
		Attempts: maxAttempts,
		FellBack: true,
	}
}

// FallbackLayout has no holes and the hat in the far corner.
func FallbackLayout(cfg GridConfig) *Grid {
	grid := NewGrid(cfg.Height, cfg.Width)
	grid.Set(Position{Row: cfg.Height - 1, Col: cfg.Width - 1}, Hat)
	return grid
}

func randomLayout(cfg GridConfig, rng *rand.Rand) *Grid {
	grid := NewGrid(cfg.Height, cfg.Width)
	cells := cfg.Height * cfg.Width
	holeCount := cfg.HoleCount()

	// cell 0 is the start, so the permutation covers 1..cells-1
	order := rng.Perm(cells - 1)
	for _, idx := range order[:holeCount] {
		grid.Set(cellPosition(idx+1, cfg.Width), Hole)
	}

	remaining := order[holeCount:]
	hatIdx := remaining[rng.Intn(len(remaining))]
	grid.Set(cellPosition(hatIdx+1, cfg.Width), Hat)

	return grid
}

func cellPosition(idx int, width int) Position {
	return Position{Row: idx / width, Col: idx % width}
}

// IsSolvable runs a breadth-first search from the start cell through
// non-hole tiles and reports whether the hat is reachable.
func IsSolvable(grid *Grid) bool {
	start := Position{Row: 0, Col: 0}
	seen := map[Position]bool{start: true}
	q := []Position{start}

	for len(q) > 0 {
		current := q[0]
		q = q[1:]

		if grid.At(current) == Hat {
			return true
		}

		for _, dir := range Directions {
			next := current.Step(dir)
			if !grid.InBounds(next) || seen[next] || grid.At(next) == Hole {
				continue
			}
			seen[next] = true
			q = append(q, next)
		}
	}

	return false
}
