package game

type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeInvalidInput
	OutcomeOutOfBounds
	OutcomeFellInHole
	OutcomeFoundHat
	OutcomeSessionOver
)

func (o Outcome) IsTerminal() bool {
	return o == OutcomeOutOfBounds || o == OutcomeFellInHole || o == OutcomeFoundHat
}

func (o Outcome) Message() string {
	switch o {
	case OutcomeOutOfBounds:
		return "Sorry, out of bounds!"
	case OutcomeFellInHole:
		return "Sorry, you fell into a hole!"
	case OutcomeFoundHat:
		return "Congrats! You found your hat!"
	case OutcomeSessionOver:
		return "The game is over."
	default:
		return ""
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeInvalidInput:
		return "invalid_input"
	case OutcomeOutOfBounds:
		return "out_of_bounds"
	case OutcomeFellInHole:
		return "fell_in_hole"
	case OutcomeFoundHat:
		return "found_hat"
	default:
		return "session_over"
	}
}

type State int

const (
	StatePlaying State = iota
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "playing"
	}
}

// Session owns one grid and the cursor walking over it.
type Session struct {
	Grid   *Grid
	Cursor Position
	KeyMap *KeyMap

	state       State
	lastOutcome Outcome
	moves       int
}

func NewSession(grid *Grid, keyMap *KeyMap) *Session {
	return &Session{
		Grid:        grid,
		Cursor:      Position{Row: 0, Col: 0},
		KeyMap:      keyMap,
		state:       StatePlaying,
		lastOutcome: OutcomeContinue,
	}
}

func (s *Session) State() State { return s.state }
func (s *Session) LastOutcome() Outcome { return s.lastOutcome }
func (s *Session) Moves() int { return s.moves }
func (s *Session) IsOver() bool { return s.state != StatePlaying }

// Move resolves a single step. Once the session reached Won or Lost every
// further call returns OutcomeSessionOver and changes nothing.
func (s *Session) Move(dir Direction) Outcome {
	if s.IsOver() {
		return OutcomeSessionOver
	}

	next := s.Cursor.Step(dir)

	switch {
	case !s.Grid.InBounds(next):
		return s.finish(StateLost, OutcomeOutOfBounds)
	case s.Grid.At(next) == Hole:
		return s.finish(StateLost, OutcomeFellInHole)
	case s.Grid.At(next) == Hat:
		return s.finish(StateWon, OutcomeFoundHat)
	}

	s.Cursor = next
	s.Grid.Set(next, Visited)
	s.moves++
	s.lastOutcome = OutcomeContinue
	return OutcomeContinue
}

// MoveToken resolves a raw direction token through the session key map.
// Tokens that are not directions yield OutcomeInvalidInput without touching state.
func (s *Session) MoveToken(token string) Outcome {
	if s.IsOver() {
		return OutcomeSessionOver
	}

	command := s.KeyMap.Resolve(token)
	if command.Kind != CommandMove {
		return OutcomeInvalidInput
	}
	return s.Move(command.Direction)
}

func (s *Session) finish(state State, outcome Outcome) Outcome {
	s.state = state
	s.lastOutcome = outcome
	return outcome
}

// Neighbour describes what lies one step away from the cursor.
// InBounds is false when the step would leave the grid.
func (s *Session) Neighbour(dir Direction) (Tile, bool) {
	next := s.Cursor.Step(dir)
	if !s.Grid.InBounds(next) {
		return Background, false
	}
	return s.Grid.At(next), true
}
