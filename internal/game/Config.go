package game

const (
	MinGridDimension      = 2
	MaxGridDimension      = 100
	MaxHolePercent        = 80.0
	MaxGenerationAttempts = 500

	DefaultGridHeight  = 15
	DefaultGridWidth   = 10
	DefaultHolePercent = 35.0
)

// Display runes for every tile kind.
const (
	HatRune        = '^'
	HoleRune       = 'O'
	BackgroundRune = '░'
	VisitedRune    = '*'
)
